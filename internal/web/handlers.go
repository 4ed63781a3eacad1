package web

import (
    "encoding/json"
    "net/http"

    "github.com/gin-gonic/gin"
    "github.com/gin-gonic/gin/binding"
    gojson "github.com/goccy/go-json"
    "go.uber.org/zap"

    "aiimpact/internal/features"
    "aiimpact/internal/form"
    "aiimpact/internal/predict"
)

type apiResult struct {
    Label         string             `json:"label"`
    Style         predict.Style      `json:"style"`
    Icon          string             `json:"icon"`
    Probabilities map[string]float64 `json:"probabilities"`
    Model         string             `json:"model"`
    Caveat        string             `json:"caveat"`
}

func toAPIResult(res *predict.Result) apiResult {
    return apiResult{
        Label:         res.Label,
        Style:         res.Style,
        Icon:          res.Style.Icon(),
        Probabilities: res.Probabilities,
        Model:         res.Model,
        Caveat:        predict.Caveat,
    }
}

func (s *server) halted(c *gin.Context) bool {
    if s.loadErr == nil { return false }
    c.HTML(http.StatusServiceUnavailable, "halt.tmpl", s.haltView())
    return true
}

func (s *server) haltedJSON(c *gin.Context) bool {
    if s.loadErr == nil { return false }
    c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Erro ao carregar os arquivos: " + s.loadErr.Error()})
    return true
}

func (s *server) handleIndex(c *gin.Context) {
    if s.halted(c) { return }
    c.HTML(http.StatusOK, "index.tmpl", s.newIndexView(form.DefaultProfile()))
}

func (s *server) handleSubmit(c *gin.Context) {
    if s.halted(c) { return }
    var p form.Profile
    if err := c.ShouldBind(&p); err != nil {
        v := s.newIndexView(p)
        v.Errors = s.form.Errors(err, s.trans)
        if v.Errors == nil { v.InputErr = "Entrada inválida: " + err.Error() }
        c.HTML(http.StatusUnprocessableEntity, "index.tmpl", v)
        return
    }
    v := s.newIndexView(p)
    res, err := s.predict(c, p)
    if err != nil {
        v.ResultErr = "Ocorreu um erro durante o processamento: " + err.Error()
        c.HTML(http.StatusInternalServerError, "index.tmpl", v)
        return
    }
    v.Result = res
    v.Chart = s.chartURL(res)
    c.HTML(http.StatusOK, "index.tmpl", v)
}

func (s *server) predict(c *gin.Context, p form.Profile) (*predict.Result, error) {
    r, err := p.Record(s.form)
    if err != nil { return nil, err }
    res, err := s.predictor.Predict(c.Request.Context(), r)
    if err != nil {
        s.logger.Error("Falha ao prever", zap.Error(err))
        return nil, err
    }
    return res, nil
}

func (s *server) handlePredict(c *gin.Context) {
    if s.haltedJSON(c) { return }
    var p form.Profile
    if err := c.ShouldBindJSON(&p); err != nil {
        c.JSON(http.StatusBadRequest, s.inputError(err))
        return
    }
    res, err := s.predict(c, p)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, toAPIResult(res))
}

// inputError tells a malformed body apart from a profile that failed validation.
func (s *server) inputError(err error) gin.H {
    if fields := s.form.Errors(err, s.trans); fields != nil {
        return gin.H{"error": "entrada inválida", "fields": fields}
    }
    return gin.H{"error": "json inválido: " + err.Error()}
}

// handleBatch decodes and validates every item on its own, so one bad profile only fills its
// own slot. Valid records go through the predictor in a single batch call.
func (s *server) handleBatch(c *gin.Context) {
    if s.haltedJSON(c) { return }
    var items []json.RawMessage
    if err := c.ShouldBindJSON(&items); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "json inválido: " + err.Error()})
        return
    }
    out := make([]gin.H, len(items))
    records := make([]features.Record, 0, len(items))
    slots := make([]int, 0, len(items))
    for i, raw := range items {
        var p form.Profile
        if err := gojson.Unmarshal(raw, &p); err != nil {
            out[i] = gin.H{"error": "json inválido: " + err.Error()}
            continue
        }
        if err := binding.Validator.ValidateStruct(&p); err != nil {
            out[i] = s.inputError(err)
            continue
        }
        r, err := p.Record(s.form)
        if err != nil {
            out[i] = gin.H{"error": err.Error()}
            continue
        }
        records = append(records, r)
        slots = append(slots, i)
    }
    if len(records) > 0 {
        results, errs := s.predictor.PredictBatch(c.Request.Context(), records)
        for j, i := range slots {
            if j < len(errs) && errs[j] != nil {
                s.logger.Error("Falha ao prever item do lote", zap.Int("item", i), zap.Error(errs[j]))
                out[i] = gin.H{"error": errs[j].Error()}
                continue
            }
            if j >= len(results) || results[j] == nil {
                out[i] = gin.H{"error": "sem resultado"}
                continue
            }
            res := results[j]
            out[i] = gin.H{"label": res.Label, "style": res.Style, "probabilities": res.Probabilities}
        }
    }
    c.JSON(http.StatusOK, out)
}

func (s *server) handleSchema(c *gin.Context) {
    if s.haltedJSON(c) { return }
    c.JSON(http.StatusOK, gin.H{
        "schema":  s.form.Schema(),
        "classes": s.predictor.Classes(),
    })
}

func (s *server) handleHealth(c *gin.Context) {
    if s.loadErr != nil {
        c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": s.loadErr.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
