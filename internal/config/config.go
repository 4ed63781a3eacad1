package config

import (
    "errors"
    "fmt"
    "io/fs"
    "path/filepath"
    "strings"

    "github.com/joho/godotenv"
    "github.com/spf13/viper"
    "golang.org/x/text/language"

    "aiimpact/internal/artifacts"
)

type Config struct {
    Port             string `mapstructure:"port"`
    APIKey           string `mapstructure:"api_key"`
    LogFile          string `mapstructure:"log_file"`
    LogLevel         string `mapstructure:"log_level"`
    GinMode          string `mapstructure:"gin_mode"`
    Locale           string `mapstructure:"locale"`
    ModelPath        string `mapstructure:"model_path"`
    PreprocessorPath string `mapstructure:"preprocessor_path"`
    LabelEncoderPath string `mapstructure:"label_encoder_path"`
}

// Load reads an optional .env and config.yaml from the search paths (default "." and
// "./configs"), then lets environment variables such as PORT or MODEL_PATH override.
func Load(searchPaths ...string) (*Config, error) {
    if len(searchPaths) == 0 {
        searchPaths = []string{".", "./configs"}
    }
    loadEnvFile(searchPaths)

    v := viper.New()
    setDefaults(v)
    v.SetConfigName("config")
    v.SetConfigType("yaml")
    for _, p := range searchPaths { v.AddConfigPath(p) }
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
    v.AutomaticEnv()

    if err := v.ReadInConfig(); err != nil {
        var notFound viper.ConfigFileNotFoundError
        if !errors.As(err, &notFound) {
            return nil, fmt.Errorf("erro ao ler config: %w", err)
        }
    }

    var cfg Config
    if err := v.Unmarshal(&cfg); err != nil {
        return nil, fmt.Errorf("erro ao decodificar config: %w", err)
    }
    if err := cfg.Validate(); err != nil {
        return nil, fmt.Errorf("config inválida: %w", err)
    }
    return &cfg, nil
}

func setDefaults(v *viper.Viper) {
    d := artifacts.DefaultPaths()
    v.SetDefault("port", "8080")
    v.SetDefault("api_key", "")
    v.SetDefault("log_file", "")
    v.SetDefault("log_level", "info")
    v.SetDefault("gin_mode", "release")
    v.SetDefault("locale", "pt-BR")
    v.SetDefault("model_path", d.Model)
    v.SetDefault("preprocessor_path", d.Preprocessor)
    v.SetDefault("label_encoder_path", d.LabelEncoder)
}

func loadEnvFile(searchPaths []string) {
    for _, p := range searchPaths {
        err := godotenv.Load(filepath.Join(p, ".env"))
        if err == nil || !errors.Is(err, fs.ErrNotExist) {
            return
        }
    }
}

func (c *Config) Validate() error {
    if c.Port == "" {
        return errors.New("port vazio")
    }
    switch c.GinMode {
    case "debug", "release", "test":
    default:
        return fmt.Errorf("gin_mode inválido %q", c.GinMode)
    }
    if _, err := language.Parse(c.Locale); err != nil {
        return fmt.Errorf("locale inválido %q: %w", c.Locale, err)
    }
    return nil
}

func (c *Config) Language() language.Tag {
    tag, err := language.Parse(c.Locale)
    if err != nil { return language.BrazilianPortuguese }
    return tag
}

func (c *Config) ArtifactPaths() artifacts.Paths {
    return artifacts.Paths{
        Model:        c.ModelPath,
        Preprocessor: c.PreprocessorPath,
        LabelEncoder: c.LabelEncoderPath,
    }
}
