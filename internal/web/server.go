package web

import (
    "context"
    "errors"
    "html/template"
    "io/fs"
    "net/http"

    "github.com/gin-gonic/gin"
    "github.com/gin-gonic/gin/binding"
    ut "github.com/go-playground/universal-translator"
    "github.com/go-playground/validator/v10"
    "github.com/prometheus/client_golang/prometheus/promhttp"
    "go.uber.org/zap"
    "golang.org/x/text/language"
    "golang.org/x/text/message"

    "aiimpact/internal/artifacts"
    "aiimpact/internal/features"
    "aiimpact/internal/form"
    "aiimpact/internal/predict"
)

// Predictor is the opaque pipeline as the handlers see it.
type Predictor interface {
    Predict(ctx context.Context, r features.Record) (*predict.Result, error)
    PredictBatch(ctx context.Context, rs []features.Record) ([]*predict.Result, []error)
    Classes() []string
}

type Options struct {
    // Bundle is nil when loading failed; LoadErr then says why.
    Bundle    *artifacts.Bundle
    LoadErr   error
    Paths     artifacts.Paths
    Predictor Predictor
    APIKey    string
    Language  language.Tag
    Logger    *zap.Logger
}

type server struct {
    form      *form.Form
    predictor Predictor
    loadErr   error
    paths     artifacts.Paths
    trans     ut.Translator
    printer   *message.Printer
    logger    *zap.Logger
}

func NewRouter(o Options) (*gin.Engine, error) {
    s := &server{
        predictor: o.Predictor,
        loadErr:   o.LoadErr,
        paths:     o.Paths,
        printer:   message.NewPrinter(o.Language),
        logger:    o.Logger,
    }
    if s.logger == nil { s.logger = zap.NewNop() }
    if s.loadErr == nil && o.Bundle == nil {
        s.loadErr = errors.New("nenhum artefato carregado")
    }
    if s.loadErr == nil {
        f, err := form.Build(o.Bundle.NumericFeatures(), o.Bundle.CategoricalFeatures())
        if err != nil {
            s.loadErr = err
        } else {
            s.form = f
        }
        if s.predictor == nil {
            s.predictor = predict.NewPipeline(o.Bundle, s.logger)
        }
    }

    if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
        if err := form.RegisterValidations(v); err != nil { return nil, err }
        trans, err := form.NewTranslator(v)
        if err != nil { return nil, err }
        s.trans = trans
    }

    tmpl, err := template.New("").Funcs(s.funcs()).ParseFS(assets, "templates/*.tmpl")
    if err != nil { return nil, err }
    static, err := fs.Sub(assets, "static")
    if err != nil { return nil, err }

    r := gin.New()
    r.Use(gin.Recovery(), requestLogger(s.logger))
    r.SetHTMLTemplate(tmpl)
    r.StaticFS("/static", http.FS(static))

    r.GET("/", s.handleIndex)
    r.POST("/", s.handleSubmit)
    r.GET("/healthz", s.handleHealth)
    r.GET("/metrics", gin.WrapH(promhttp.Handler()))

    api := r.Group("/api")
    api.Use(apiKeyMiddleware(o.APIKey))
    api.GET("/schema", s.handleSchema)
    api.POST("/predict", s.handlePredict)
    api.POST("/batch", s.handleBatch)

    return r, nil
}
