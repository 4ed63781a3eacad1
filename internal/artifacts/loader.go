package artifacts

import (
    "errors"
    "fmt"
    "io/fs"

    "go.uber.org/multierr"

    "aiimpact/internal/features"
    "aiimpact/internal/models"
)

var (
    ErrNotFound = errors.New("arquivo de artefato não encontrado")
    ErrSchema   = errors.New("artefatos incompatíveis")
)

// Paths locates the three artifacts produced by the training notebook.
type Paths struct {
    Model        string
    Preprocessor string
    LabelEncoder string
}

func DefaultPaths() Paths {
    return Paths{
        Model:        "models/modelo_final.json",
        Preprocessor: "models/preprocessor.json",
        LabelEncoder: "models/label_encoder.json",
    }
}

func (p Paths) List() []string { return []string{p.Model, p.Preprocessor, p.LabelEncoder} }

// Layout is the number of columns the form binds to in the first two transformers.
type Layout struct {
    Numeric     int
    Categorical int
}

type Bundle struct {
    Model        *models.OneVsRest
    Preprocessor *features.ColumnTransformer
    LabelEncoder *features.LabelEncoder
    Paths        Paths
}

// Load decodes all three artifacts and reports every failure at once. Missing files match
// ErrNotFound; structural problems match ErrSchema.
func Load(p Paths, layout Layout) (*Bundle, error) {
    b := &Bundle{
        Model:        &models.OneVsRest{},
        Preprocessor: &features.ColumnTransformer{},
        LabelEncoder: &features.LabelEncoder{},
        Paths:        p,
    }
    var err error
    err = multierr.Append(err, load("modelo", p.Model, b.Model))
    err = multierr.Append(err, load("preprocessor", p.Preprocessor, b.Preprocessor))
    err = multierr.Append(err, load("label encoder", p.LabelEncoder, b.LabelEncoder))
    if err != nil { return nil, err }
    if err := b.Check(layout); err != nil { return nil, err }
    return b, nil
}

func load(what, path string, v any) error {
    if err := decode(path, v); err != nil {
        if errors.Is(err, fs.ErrNotExist) {
            return fmt.Errorf("%w: %s (%s): %w", ErrNotFound, what, path, err)
        }
        return fmt.Errorf("falha ao carregar %s (%s): %w", what, path, err)
    }
    return nil
}

// Check verifies the artifacts agree with each other and with the form layout.
func (b *Bundle) Check(layout Layout) error {
    ts := b.Preprocessor.Transformers
    if len(ts) < 2 {
        return fmt.Errorf("%w: preprocessor com %d transformers, esperado ao menos 2", ErrSchema, len(ts))
    }
    if n := len(ts[0].Columns); n != layout.Numeric {
        return fmt.Errorf("%w: %d colunas numéricas, esperado %d", ErrSchema, n, layout.Numeric)
    }
    if n := len(ts[1].Columns); n != layout.Categorical {
        return fmt.Errorf("%w: %d colunas categóricas, esperado %d", ErrSchema, n, layout.Categorical)
    }
    if err := b.Preprocessor.Validate(); err != nil {
        return fmt.Errorf("%w: %v", ErrSchema, err)
    }
    if len(b.LabelEncoder.Classes) == 0 {
        return fmt.Errorf("%w: label encoder sem classes", ErrSchema)
    }
    if b.Model.Classes() != len(b.LabelEncoder.Classes) {
        return fmt.Errorf("%w: modelo com %d classes, label encoder com %d",
            ErrSchema, b.Model.Classes(), len(b.LabelEncoder.Classes))
    }
    if err := b.Model.Validate(b.Preprocessor.Width()); err != nil {
        return fmt.Errorf("%w: %v", ErrSchema, err)
    }
    return nil
}

func (b *Bundle) NumericFeatures() []string     { return b.Preprocessor.Columns(0) }
func (b *Bundle) CategoricalFeatures() []string { return b.Preprocessor.Columns(1) }
