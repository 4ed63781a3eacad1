package report

import (
    "bytes"
    "errors"
    "io"
    "os"
    "path/filepath"

    "gonum.org/v1/plot"
    "gonum.org/v1/plot/plotter"
    "gonum.org/v1/plot/plotutil"
    "gonum.org/v1/plot/vg"
)

// WriteProbabilityChart renders a PNG bar chart with one bar per class, in class order.
func WriteProbabilityChart(w io.Writer, classes []string, probs map[string]float64) error {
    if len(classes) == 0 { return errors.New("nenhuma classe para o gráfico") }
    p := plot.New()
    p.Title.Text = "Probabilidade por Classe"
    p.Y.Label.Text = "Probabilidade"
    p.Y.Min = 0
    p.Y.Max = 1

    vals := make(plotter.Values, len(classes))
    for i, c := range classes { vals[i] = probs[c] }
    bars, err := plotter.NewBarChart(vals, vg.Points(36))
    if err != nil { return err }
    bars.LineStyle.Width = vg.Length(0)
    bars.Color = plotutil.Color(0)
    p.Add(bars)
    p.NominalX(classes...)

    wt, err := p.WriterTo(4*vg.Inch, 3*vg.Inch, "png")
    if err != nil { return err }
    _, err = wt.WriteTo(w)
    return err
}

func ProbabilityChart(classes []string, probs map[string]float64) ([]byte, error) {
    var buf bytes.Buffer
    if err := WriteProbabilityChart(&buf, classes, probs); err != nil { return nil, err }
    return buf.Bytes(), nil
}

func SaveProbabilityChart(path string, classes []string, probs map[string]float64) error {
    if dir := filepath.Dir(path); dir != "" {
        if err := os.MkdirAll(dir, 0o755); err != nil { return err }
    }
    f, err := os.Create(path)
    if err != nil { return err }
    if err := WriteProbabilityChart(f, classes, probs); err != nil {
        f.Close()
        return err
    }
    return f.Close()
}
