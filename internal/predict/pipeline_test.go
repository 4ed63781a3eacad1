package predict

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "aiimpact/internal/features"
    "aiimpact/internal/form"
    "aiimpact/internal/models"
    "aiimpact/internal/testhelpers"
)

func recordWithRisk(t *testing.T, risk float64) features.Record {
    t.Helper()
    f, err := form.Build(testhelpers.NumericFeatures, testhelpers.CategoricalFeatures)
    require.NoError(t, err)
    p := form.DefaultProfile()
    p.AutomationRisk = risk
    r, err := p.Record(f)
    require.NoError(t, err)
    return r
}

func TestPipelinePredict(t *testing.T) {
    p := NewPipeline(testhelpers.Bundle(), nil)
    cases := []struct {
        risk  float64
        label string
        style Style
    }{
        {90, "High", StyleError},
        {50, "Moderate", StyleWarning},
        {10, "Low", StyleSuccess},
    }
    for _, tc := range cases {
        res, err := p.Predict(context.Background(), recordWithRisk(t, tc.risk))
        require.NoError(t, err)
        assert.Equal(t, tc.label, res.Label)
        assert.Equal(t, tc.style, res.Style)
        assert.Equal(t, "OneVsRest(DecisionTree)", res.Model)

        sum := 0.0
        for _, v := range res.Probabilities { sum += v }
        assert.InDelta(t, 1.0, sum, 1e-9)
        assert.Len(t, res.Probabilities, 3)
    }
}

func TestPipelineTransformFailure(t *testing.T) {
    p := NewPipeline(testhelpers.Bundle(), nil)
    r, err := features.NewRecord([]string{"x"}, nil, []float64{1}, nil)
    require.NoError(t, err)
    _, err = p.Predict(context.Background(), r)
    assert.ErrorIs(t, err, ErrPredict)
    assert.ErrorIs(t, err, features.ErrTransform)
}

type badDecoder struct{}

func (badDecoder) InverseTransform([]int) ([]string, error) { return nil, features.ErrUnknownClass }

func TestPipelineDecodeFailure(t *testing.T) {
    p := NewPipeline(testhelpers.Bundle(), nil)
    p.decoder = badDecoder{}
    _, err := p.Predict(context.Background(), recordWithRisk(t, 50))
    assert.ErrorIs(t, err, ErrPredict)
    assert.ErrorIs(t, err, features.ErrUnknownClass)
}

func TestPipelineCanceledContext(t *testing.T) {
    p := NewPipeline(testhelpers.Bundle(), nil)
    ctx, cancel := context.WithCancel(context.Background())
    cancel()
    _, err := p.Predict(ctx, recordWithRisk(t, 50))
    assert.ErrorIs(t, err, ErrPredict)
    assert.ErrorIs(t, err, context.Canceled)
}

func TestPredictBatch(t *testing.T) {
    p := NewPipeline(testhelpers.Bundle(), nil)
    bad, err := features.NewRecord(nil, nil, nil, nil)
    require.NoError(t, err)
    res, errs := p.PredictBatch(context.Background(), []features.Record{recordWithRisk(t, 95), bad, recordWithRisk(t, 5)})
    require.Len(t, res, 3)
    assert.Equal(t, "High", res[0].Label)
    assert.Nil(t, res[1])
    assert.Error(t, errs[1])
    assert.Equal(t, "Low", res[2].Label)
    assert.NoError(t, errs[2])
}

type countingClassifier struct {
    models.Classifier
    predictCalls, probaCalls int
}

func (c *countingClassifier) Predict(X [][]float64) []int {
    c.predictCalls++
    return c.Classifier.Predict(X)
}

func (c *countingClassifier) PredictProba(X [][]float64) [][]float64 {
    c.probaCalls++
    return c.Classifier.PredictProba(X)
}

func TestPipelineScoresEnsembleOnce(t *testing.T) {
    p := NewPipeline(testhelpers.Bundle(), nil)
    cc := &countingClassifier{Classifier: p.classifier}
    p.classifier = cc

    res, err := p.Predict(context.Background(), recordWithRisk(t, 90))
    require.NoError(t, err)
    assert.Equal(t, "High", res.Label)
    assert.Equal(t, 1, cc.probaCalls)
    assert.Equal(t, 0, cc.predictCalls)
}
