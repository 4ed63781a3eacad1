package main

import (
    "errors"

    "github.com/gin-gonic/gin"
    "go.uber.org/multierr"
    "go.uber.org/zap"

    "aiimpact/internal/artifacts"
    "aiimpact/internal/config"
    "aiimpact/internal/form"
    "aiimpact/internal/web"
    "aiimpact/pkg/utils"
)

func main() {
    cfg, err := config.Load()
    if err != nil {
        utils.Logger().Fatal("Falha ao carregar configuração", zap.Error(err))
    }
    logger := utils.NewLogger(cfg.LogLevel, cfg.LogFile)
    utils.SetLogger(logger)
    defer logger.Sync()

    gin.SetMode(cfg.GinMode)

    paths := cfg.ArtifactPaths()
    layout := artifacts.Layout{Numeric: len(form.NumericWidgets), Categorical: len(form.CategoricalWidgets)}
    bundle, loadErr := artifacts.Load(paths, layout)
    if loadErr != nil {
        // The server still starts so the page can show the failure instead of a crash.
        fields := []zap.Field{zap.Strings("paths", paths.List())}
        for _, e := range multierr.Errors(loadErr) {
            fields = append(fields, zap.NamedError("cause", e))
        }
        if errors.Is(loadErr, artifacts.ErrNotFound) {
            logger.Error("Erro Crítico: arquivos de artefato não encontrados", fields...)
        } else {
            logger.Error("Erro ao carregar os arquivos", fields...)
        }
    } else {
        logger.Info("Artefatos carregados",
            zap.String("model", bundle.Model.Name()),
            zap.Strings("numerical_features", bundle.NumericFeatures()),
            zap.Strings("categorical_features", bundle.CategoricalFeatures()),
            zap.Strings("classes", bundle.LabelEncoder.Classes),
        )
    }

    r, err := web.NewRouter(web.Options{
        Bundle:   bundle,
        LoadErr:  loadErr,
        Paths:    paths,
        APIKey:   cfg.APIKey,
        Language: cfg.Language(),
        Logger:   logger,
    })
    if err != nil {
        logger.Fatal("Falha ao montar rotas", zap.Error(err))
    }

    logger.Info("Servidor iniciado", zap.String("port", cfg.Port))
    if err := r.Run(":" + cfg.Port); err != nil {
        logger.Fatal("Servidor encerrado", zap.Error(err))
    }
}
