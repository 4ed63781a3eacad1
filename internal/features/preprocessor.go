package features

import (
    "errors"
    "fmt"
)

const (
    KindNumeric     = "num"
    KindCategorical = "cat"

    UnknownIgnore = "ignore"
    UnknownError  = "error"
)

var ErrTransform = errors.New("falha ao transformar registro")

// Scaler standardises a numeric block: (x - Mean) / Scale, column by column.
type Scaler struct {
    Mean  []float64 `json:"mean"`
    Scale []float64 `json:"scale"`
}

// OneHot expands each categorical column into one indicator per known category.
type OneHot struct {
    Categories    [][]string `json:"categories"`
    HandleUnknown string     `json:"handle_unknown"`
}

type Transformer struct {
    Name    string   `json:"name"`
    Kind    string   `json:"kind"`
    Columns []string `json:"columns"`
    Scaler  *Scaler  `json:"scaler,omitempty"`
    OneHot  *OneHot  `json:"onehot,omitempty"`
}

// ColumnTransformer is the fitted preprocessor. The order of Transformers and of their Columns
// is the contract the form binds to by position.
type ColumnTransformer struct {
    Transformers []Transformer `json:"transformers"`
}

// Columns returns the column list of transformer i, or nil when it does not exist.
func (ct *ColumnTransformer) Columns(i int) []string {
    if i < 0 || i >= len(ct.Transformers) { return nil }
    return append([]string(nil), ct.Transformers[i].Columns...)
}

func (ct *ColumnTransformer) Validate() error {
    for _, t := range ct.Transformers {
        switch t.Kind {
        case KindNumeric:
            if t.Scaler == nil { continue }
            if len(t.Scaler.Mean) != len(t.Columns) || len(t.Scaler.Scale) != len(t.Columns) {
                return fmt.Errorf("transformer %q: scaler com %d/%d parâmetros para %d colunas",
                    t.Name, len(t.Scaler.Mean), len(t.Scaler.Scale), len(t.Columns))
            }
        case KindCategorical:
            if t.OneHot == nil || len(t.OneHot.Categories) != len(t.Columns) {
                return fmt.Errorf("transformer %q: categorias não conferem com %d colunas", t.Name, len(t.Columns))
            }
        default:
            return fmt.Errorf("transformer %q: tipo desconhecido %q", t.Name, t.Kind)
        }
    }
    return nil
}

// Width is the length of the encoded feature vector.
func (ct *ColumnTransformer) Width() int {
    n := 0
    for _, t := range ct.Transformers {
        if t.Kind == KindCategorical && t.OneHot != nil {
            for _, cats := range t.OneHot.Categories { n += len(cats) }
            continue
        }
        n += len(t.Columns)
    }
    return n
}

func (ct *ColumnTransformer) FeatureNamesOut() []string {
    names := make([]string, 0, ct.Width())
    for _, t := range ct.Transformers {
        if t.Kind == KindCategorical && t.OneHot != nil {
            for j, c := range t.Columns {
                for _, v := range t.OneHot.Categories[j] {
                    names = append(names, t.Name+"__"+c+"_"+v)
                }
            }
            continue
        }
        for _, c := range t.Columns { names = append(names, t.Name+"__"+c) }
    }
    return names
}

func (ct *ColumnTransformer) Transform(r Record) ([]float64, error) {
    vec := make([]float64, 0, ct.Width())
    for _, t := range ct.Transformers {
        var err error
        switch t.Kind {
        case KindNumeric:
            vec, err = t.transformNumeric(r, vec)
        case KindCategorical:
            vec, err = t.transformCategorical(r, vec)
        default:
            err = fmt.Errorf("tipo desconhecido %q", t.Kind)
        }
        if err != nil {
            return nil, fmt.Errorf("%w: transformer %q: %v", ErrTransform, t.Name, err)
        }
    }
    return vec, nil
}

func (t Transformer) transformNumeric(r Record, vec []float64) ([]float64, error) {
    for j, c := range t.Columns {
        v, ok := r.Get(c)
        if !ok { return nil, fmt.Errorf("coluna %q ausente", c) }
        if v.Number == nil { return nil, fmt.Errorf("coluna %q deveria ser numérica", c) }
        x := *v.Number
        if t.Scaler != nil && j < len(t.Scaler.Mean) && j < len(t.Scaler.Scale) {
            scale := t.Scaler.Scale[j]
            if scale == 0 { scale = 1 }
            x = (x - t.Scaler.Mean[j]) / scale
        }
        vec = append(vec, x)
    }
    return vec, nil
}

func (t Transformer) transformCategorical(r Record, vec []float64) ([]float64, error) {
    if t.OneHot == nil || len(t.OneHot.Categories) != len(t.Columns) {
        return nil, errors.New("encoder sem categorias")
    }
    for j, c := range t.Columns {
        v, ok := r.Get(c)
        if !ok { return nil, fmt.Errorf("coluna %q ausente", c) }
        if v.Text == nil { return nil, fmt.Errorf("coluna %q deveria ser categórica", c) }
        cats := t.OneHot.Categories[j]
        found := false
        for _, cat := range cats {
            if cat == *v.Text {
                vec = append(vec, 1)
                found = true
            } else {
                vec = append(vec, 0)
            }
        }
        if !found && t.OneHot.HandleUnknown == UnknownError {
            return nil, fmt.Errorf("categoria desconhecida %q na coluna %q", *v.Text, c)
        }
    }
    return vec, nil
}
