package main

import (
    "context"
    "flag"
    "fmt"
    "math/rand"
    "os"
    "path/filepath"
    "sort"
    "strings"

    "github.com/goccy/go-yaml"
    "go.uber.org/zap"

    "aiimpact/internal/artifacts"
    "aiimpact/internal/config"
    "aiimpact/internal/data"
    "aiimpact/internal/form"
    "aiimpact/internal/predict"
    "aiimpact/internal/report"
    "aiimpact/pkg/utils"
)

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    cfg, err := config.Load()
    if err != nil { logger.Fatal("Falha ao carregar configuração", zap.Error(err)) }
    d := cfg.ArtifactPaths()

    modelPath := flag.String("model", d.Model, "Artefato do modelo (.gob|.json)")
    prePath := flag.String("preprocessor", d.Preprocessor, "Artefato do preprocessor (.gob|.json)")
    lePath := flag.String("label_encoder", d.LabelEncoder, "Artefato do label encoder (.gob|.json)")
    schemaOut := flag.String("schema_out", "", "YAML com o vínculo posicional campo -> coluna")
    samples := flag.Int("samples", 500, "Perfis sintéticos para conferir a distribuição das previsões")
    seed := flag.Int64("seed", 42, "Semente dos perfis sintéticos")
    chartOut := flag.String("chart_out", "", "PNG com as probabilidades do perfil padrão")
    flag.Parse()

    paths := artifacts.Paths{Model: *modelPath, Preprocessor: *prePath, LabelEncoder: *lePath}
    layout := artifacts.Layout{Numeric: len(form.NumericWidgets), Categorical: len(form.CategoricalWidgets)}
    bundle, err := artifacts.Load(paths, layout)
    if err != nil { logger.Fatal("Falha ao carregar artefatos", zap.Error(err)) }

    f, err := form.Build(bundle.NumericFeatures(), bundle.CategoricalFeatures())
    if err != nil { logger.Fatal("Layout incompatível", zap.Error(err)) }

    fmt.Println("Modelo:", bundle.Model.Name())
    fmt.Println("Classes:", strings.Join(bundle.LabelEncoder.Classes, ", "))
    fmt.Println("Features numéricas:")
    for _, fl := range f.Numeric { fmt.Printf("  %-20s -> %s\n", fl.Key, fl.Label) }
    fmt.Println("Features categóricas:")
    for _, fl := range f.Categorical { fmt.Printf("  %-20s -> %s\n", fl.Key, fl.Label) }
    fmt.Println("Largura codificada:", bundle.Preprocessor.Width())

    if *schemaOut != "" {
        if err := writeSchema(*schemaOut, f.Schema()); err != nil {
            logger.Warn("Falha ao salvar schema", zap.Error(err))
        } else {
            fmt.Println("Schema salvo em:", *schemaOut)
        }
    }

    pipe := predict.NewPipeline(bundle, logger)
    ctx := context.Background()

    if *samples > 0 {
        counts := map[string]int{}
        failed := 0
        for _, p := range data.SampleProfiles(*samples, rand.New(rand.NewSource(*seed))) {
            r, err := p.Record(f)
            if err != nil { failed++; continue }
            res, err := pipe.Predict(ctx, r)
            if err != nil { failed++; continue }
            counts[res.Label]++
        }
        labels := make([]string, 0, len(counts))
        for l := range counts { labels = append(labels, l) }
        sort.Strings(labels)
        fmt.Printf("Distribuição em %d perfis sintéticos:\n", *samples)
        for _, l := range labels {
            fmt.Printf("  %-10s %5d (%.1f%%)\n", l, counts[l], 100*float64(counts[l])/float64(*samples))
        }
        if failed > 0 { fmt.Println("  falhas:", failed) }
    }

    if *chartOut != "" {
        r, err := form.DefaultProfile().Record(f)
        if err != nil { logger.Fatal("Perfil padrão inválido", zap.Error(err)) }
        res, err := pipe.Predict(ctx, r)
        if err != nil { logger.Fatal("Falha ao prever perfil padrão", zap.Error(err)) }
        if err := report.SaveProbabilityChart(*chartOut, pipe.Classes(), res.Probabilities); err != nil {
            logger.Warn("Falha ao salvar PNG", zap.Error(err))
        } else {
            fmt.Printf("Perfil padrão: %s. Gráfico salvo em: %s\n", res.Label, *chartOut)
        }
    }
}

func writeSchema(path string, s form.Schema) error {
    b, err := yaml.Marshal(s)
    if err != nil { return err }
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    return os.WriteFile(path, b, 0o644)
}
