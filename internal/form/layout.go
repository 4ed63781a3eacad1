package form

import (
    "errors"
    "fmt"
)

var ErrLayout = errors.New("layout do formulário incompatível com o preprocessor")

type WidgetKind string

const (
    NumberInput WidgetKind = "number"
    Slider      WidgetKind = "slider"
    SelectBox   WidgetKind = "select"
)

// Widget describes one input. Max is ignored for number inputs, which are only bounded below.
type Widget struct {
    Key     string     `json:"key" yaml:"key"`
    Kind    WidgetKind `json:"kind" yaml:"kind"`
    Min     float64    `json:"min" yaml:"min"`
    Max     float64    `json:"max,omitempty" yaml:"max,omitempty"`
    Default float64    `json:"default,omitempty" yaml:"default,omitempty"`
    Step    float64    `json:"step" yaml:"step"`
    Table   string     `json:"table,omitempty" yaml:"table,omitempty"`
}

// NumericWidgets and CategoricalWidgets are bound by position to the preprocessor's first and
// second transformer columns.
var NumericWidgets = []Widget{
    {Key: "salary_input", Kind: NumberInput, Min: 0, Default: 50000, Step: 1000},
    {Key: "experience_input", Kind: NumberInput, Min: 0, Default: 5, Step: 1},
    {Key: "openings24_input", Kind: NumberInput, Min: 0, Default: 1000, Step: 1},
    {Key: "openings30_input", Kind: NumberInput, Min: 0, Default: 1200, Step: 1},
    {Key: "remote_input", Kind: Slider, Min: 0, Max: 100, Default: 20, Step: 0.1},
    {Key: "gender_input", Kind: Slider, Min: 0, Max: 100, Default: 40, Step: 0.1},
    {Key: "risk_input", Kind: Slider, Min: 0, Max: 100, Default: 50, Step: 0.1},
}

var CategoricalWidgets = []Widget{
    {Key: "industry_input", Kind: SelectBox, Table: "industry"},
    {Key: "status_input", Kind: SelectBox, Table: "jobstatus"},
    {Key: "education_input", Kind: SelectBox, Table: "education"},
    {Key: "location_input", Kind: SelectBox, Table: "location"},
}

// Field is a widget labelled with the feature name it feeds.
type Field struct {
    Widget  `yaml:",inline"`
    Label   string   `json:"feature" yaml:"feature"`
    Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

type Form struct {
    Numeric     []Field
    Categorical []Field
}

// Build labels every widget with the preprocessor feature name at the same position.
func Build(numNames, catNames []string) (*Form, error) {
    if len(numNames) != len(NumericWidgets) || len(catNames) != len(CategoricalWidgets) {
        return nil, fmt.Errorf("%w: %d+%d colunas, formulário tem %d+%d campos", ErrLayout,
            len(numNames), len(catNames), len(NumericWidgets), len(CategoricalWidgets))
    }
    f := &Form{
        Numeric:     make([]Field, len(NumericWidgets)),
        Categorical: make([]Field, len(CategoricalWidgets)),
    }
    for i, w := range NumericWidgets {
        f.Numeric[i] = Field{Widget: w, Label: numNames[i]}
    }
    for i, w := range CategoricalWidgets {
        f.Categorical[i] = Field{Widget: w, Label: catNames[i], Options: OptionTables[w.Table]}
    }
    return f, nil
}

func (f *Form) NumericNames() []string {
    out := make([]string, len(f.Numeric))
    for i, fl := range f.Numeric { out[i] = fl.Label }
    return out
}

func (f *Form) CategoricalNames() []string {
    out := make([]string, len(f.Categorical))
    for i, fl := range f.Categorical { out[i] = fl.Label }
    return out
}

// Schema is the explicit positional binding between widgets and preprocessor columns.
type Schema struct {
    Numeric     []Field `json:"numeric" yaml:"numeric"`
    Categorical []Field `json:"categorical" yaml:"categorical"`
}

func (f *Form) Schema() Schema {
    return Schema{
        Numeric:     append([]Field(nil), f.Numeric...),
        Categorical: append([]Field(nil), f.Categorical...),
    }
}
