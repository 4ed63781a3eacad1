package web

import (
    "embed"
    "encoding/base64"
    "errors"
    "html/template"
    "math"
    "strconv"

    "aiimpact/internal/artifacts"
    "aiimpact/internal/form"
    "aiimpact/internal/predict"
    "aiimpact/internal/report"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

const pageTitle = "🤖 Previsor de Impacto da IA nas Profissões"

type indexView struct {
    Title     string
    Form      *form.Form
    Profile   form.Profile
    Errors    map[string]string
    InputErr  string
    Result    *predict.Result
    ResultErr string
    Chart     template.URL
    Caveat    string
}

type haltView struct {
    Title   string
    Missing bool
    Message string
    Paths   []string
}

func (s *server) funcs() template.FuncMap {
    return template.FuncMap{
        // raw is the machine-readable value for input attributes.
        "raw": func(v any) string {
            switch x := v.(type) {
            case float64:
                return strconv.FormatFloat(x, 'f', -1, 64)
            case string:
                return x
            default:
                return ""
            }
        },
        // num formats a value for reading in the configured locale.
        "num": func(v float64) string {
            if v == math.Trunc(v) && math.Abs(v) < 1e15 {
                return s.printer.Sprintf("%d", int64(v))
            }
            return s.printer.Sprintf("%.1f", v)
        },
        "pct": func(v float64) string { return s.printer.Sprintf("%.1f%%", v*100) },
        "value": func(p form.Profile, key string) any { return p.Value(key) },
        "isSlider": func(k form.WidgetKind) bool { return k == form.Slider },
    }
}

func (s *server) newIndexView(p form.Profile) indexView {
    return indexView{Title: pageTitle, Form: s.form, Profile: p, Caveat: predict.Caveat}
}

func (s *server) haltView() haltView {
    v := haltView{Title: pageTitle, Message: s.loadErr.Error()}
    if errors.Is(s.loadErr, artifacts.ErrNotFound) {
        v.Missing = true
        v.Paths = s.paths.List()
    }
    return v
}

// chartURL renders the probability chart as a data URI. Failures only drop the chart.
func (s *server) chartURL(res *predict.Result) template.URL {
    png, err := report.ProbabilityChart(s.predictor.Classes(), res.Probabilities)
    if err != nil {
        s.logger.Sugar().Warnf("Falha ao gerar gráfico: %v", err)
        return ""
    }
    return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}
