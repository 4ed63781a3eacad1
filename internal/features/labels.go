package features

import (
    "errors"
    "fmt"
)

var ErrUnknownClass = errors.New("classe desconhecida")

// LabelEncoder maps target category strings to class ids, as sorted at training time.
type LabelEncoder struct {
    Classes []string `json:"classes"`
}

func (le *LabelEncoder) Transform(label string) (int, error) {
    for i, c := range le.Classes {
        if c == label { return i, nil }
    }
    return 0, fmt.Errorf("%w: %q", ErrUnknownClass, label)
}

func (le *LabelEncoder) InverseTransform(ids []int) ([]string, error) {
    out := make([]string, len(ids))
    for i, id := range ids {
        if id < 0 || id >= len(le.Classes) {
            return nil, fmt.Errorf("%w: id %d fora de [0,%d)", ErrUnknownClass, id, len(le.Classes))
        }
        out[i] = le.Classes[id]
    }
    return out, nil
}
