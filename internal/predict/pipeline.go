package predict

import (
    "context"
    "errors"
    "fmt"
    "time"

    "go.uber.org/zap"

    "aiimpact/internal/artifacts"
    "aiimpact/internal/features"
    "aiimpact/internal/models"
)

var ErrPredict = errors.New("falha na previsão")

// Result is one decoded prediction with its display treatment.
type Result struct {
    Label         string             `json:"label"`
    Style         Style              `json:"style"`
    Probabilities map[string]float64 `json:"probabilities"`
    Model         string             `json:"model"`
}

// Encoder is the fitted preprocessor seen by the pipeline.
type Encoder interface {
    Transform(r features.Record) ([]float64, error)
}

// Decoder turns class ids back into category strings.
type Decoder interface {
    InverseTransform(ids []int) ([]string, error)
}

// Pipeline runs transform, predict and inverse transform over one record.
type Pipeline struct {
    encoder    Encoder
    classifier models.Classifier
    decoder    Decoder
    classes    []string
    logger     *zap.Logger
}

func NewPipeline(b *artifacts.Bundle, logger *zap.Logger) *Pipeline {
    if logger == nil { logger = zap.NewNop() }
    return &Pipeline{
        encoder:    b.Preprocessor,
        classifier: b.Model,
        decoder:    b.LabelEncoder,
        classes:    append([]string(nil), b.LabelEncoder.Classes...),
        logger:     logger,
    }
}

func (p *Pipeline) Classes() []string { return append([]string(nil), p.classes...) }

func (p *Pipeline) Predict(ctx context.Context, r features.Record) (*Result, error) {
    if err := ctx.Err(); err != nil {
        return nil, fmt.Errorf("%w: %w", ErrPredict, err)
    }
    start := time.Now()
    defer func() { predictionDuration.Observe(time.Since(start).Seconds()) }()

    x, err := p.encoder.Transform(r)
    if err != nil { return nil, p.fail("transform", err) }

    // uma única passada pelo ensemble; o rótulo é o argmax das probabilidades
    proba := p.classifier.PredictProba([][]float64{x})
    if len(proba) != 1 {
        return nil, p.fail("predict", fmt.Errorf("modelo retornou %d previsões para 1 linha", len(proba)))
    }
    ids := []int{models.Argmax(proba[0])}

    labels, err := p.decoder.InverseTransform(ids)
    if err != nil { return nil, p.fail("inverse_transform", err) }

    res := &Result{
        Label:         labels[0],
        Style:         StyleFor(labels[0]),
        Probabilities: make(map[string]float64, len(p.classes)),
        Model:         p.classifier.Name(),
    }
    for i, c := range p.classes {
        if i < len(proba[0]) { res.Probabilities[c] = proba[0][i] }
    }
    predictionsTotal.WithLabelValues(res.Label).Inc()
    p.logger.Debug("Previsão concluída", zap.String("label", res.Label), zap.String("model", res.Model))
    return res, nil
}

// PredictBatch predicts each record on its own; a failing record does not stop the others.
func (p *Pipeline) PredictBatch(ctx context.Context, rs []features.Record) ([]*Result, []error) {
    out := make([]*Result, len(rs))
    errs := make([]error, len(rs))
    for i, r := range rs {
        out[i], errs[i] = p.Predict(ctx, r)
    }
    return out, errs
}

func (p *Pipeline) fail(stage string, err error) error {
    predictionFailures.WithLabelValues(stage).Inc()
    p.logger.Warn("Falha no pipeline", zap.String("stage", stage), zap.Error(err))
    return fmt.Errorf("%w (%s): %w", ErrPredict, stage, err)
}
