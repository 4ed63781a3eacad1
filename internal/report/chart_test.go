package report

import (
    "bytes"
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestProbabilityChart(t *testing.T) {
    b, err := ProbabilityChart([]string{"High", "Low", "Moderate"}, map[string]float64{"High": 0.1, "Low": 0.1, "Moderate": 0.8})
    require.NoError(t, err)
    assert.True(t, bytes.HasPrefix(b, pngMagic))
}

func TestProbabilityChartNoClasses(t *testing.T) {
    _, err := ProbabilityChart(nil, nil)
    assert.Error(t, err)
}

func TestSaveProbabilityChart(t *testing.T) {
    path := filepath.Join(t.TempDir(), "out", "chart.png")
    require.NoError(t, SaveProbabilityChart(path, []string{"Low"}, map[string]float64{"Low": 1}))
    b, err := os.ReadFile(path)
    require.NoError(t, err)
    assert.True(t, bytes.HasPrefix(b, pngMagic))
}
