package features

import (
    "errors"
    "fmt"
)

var ErrFieldCount = errors.New("quantidade de campos não confere com o preprocessor")

// Value is one named scalar of a prediction request. Exactly one of Number or Text is set.
type Value struct {
    Name   string   `json:"name"`
    Number *float64 `json:"number,omitempty"`
    Text   *string  `json:"text,omitempty"`
}

// Record is the single-row prediction request, ordered as the preprocessor lists its columns.
type Record struct {
    values []Value
    index  map[string]int
}

func NewRecord(numNames, catNames []string, nums []float64, cats []string) (Record, error) {
    if len(numNames) != len(nums) {
        return Record{}, fmt.Errorf("%w: %d numéricos esperados, %d recebidos", ErrFieldCount, len(numNames), len(nums))
    }
    if len(catNames) != len(cats) {
        return Record{}, fmt.Errorf("%w: %d categóricos esperados, %d recebidos", ErrFieldCount, len(catNames), len(cats))
    }
    r := Record{index: make(map[string]int, len(nums)+len(cats))}
    for i, n := range numNames {
        v := nums[i]
        if err := r.add(Value{Name: n, Number: &v}); err != nil { return Record{}, err }
    }
    for i, n := range catNames {
        s := cats[i]
        if err := r.add(Value{Name: n, Text: &s}); err != nil { return Record{}, err }
    }
    return r, nil
}

func (r *Record) add(v Value) error {
    if _, dup := r.index[v.Name]; dup {
        return fmt.Errorf("campo duplicado %q", v.Name)
    }
    r.index[v.Name] = len(r.values)
    r.values = append(r.values, v)
    return nil
}

func (r Record) Get(name string) (Value, bool) {
    i, ok := r.index[name]
    if !ok { return Value{}, false }
    return r.values[i], true
}

func (r Record) Names() []string {
    out := make([]string, len(r.values))
    for i, v := range r.values { out[i] = v.Name }
    return out
}

func (r Record) Values() []Value {
    return append([]Value(nil), r.values...)
}

func (r Record) Len() int { return len(r.values) }
