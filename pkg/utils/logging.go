package utils

import (
    "os"
    "path/filepath"
    "strings"
    "sync"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
    "gopkg.in/natefinch/lumberjack.v2"
)

var (
    logger *zap.Logger
    once   sync.Once
)

// Logger returns the process-wide logger, built on first use from LOG_FILE and LOG_LEVEL.
func Logger() *zap.Logger {
    once.Do(func() {
        logger = NewLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FILE"))
    })
    return logger
}

// SetLogger replaces the process-wide logger. Used by the binaries once config is loaded.
func SetLogger(l *zap.Logger) {
    once.Do(func() {})
    logger = l
}

func NewLogger(level, logFile string) *zap.Logger {
    lvl := parseLevel(level)
    encCfg := zap.NewProductionEncoderConfig()
    encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
    enc := zapcore.NewJSONEncoder(encCfg)
    consoleCore := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl)
    if logFile == "" {
        return zap.New(consoleCore)
    }
    if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
        l := zap.New(consoleCore)
        l.Warn("Falha ao criar diretório do LOG_FILE, usando apenas stdout", zap.String("path", logFile), zap.Error(err))
        return l
    }
    // rotação por tamanho; arquivos antigos comprimidos
    rotator := &lumberjack.Logger{
        Filename:   logFile,
        MaxSize:    50,
        MaxBackups: 5,
        MaxAge:     28,
        Compress:   true,
    }
    fileCore := zapcore.NewCore(enc, zapcore.AddSync(rotator), lvl)
    return zap.New(zapcore.NewTee(fileCore, consoleCore))
}

func parseLevel(s string) zapcore.Level {
    switch strings.ToLower(s) {
    case "debug":
        return zapcore.DebugLevel
    case "warn":
        return zapcore.WarnLevel
    case "error":
        return zapcore.ErrorLevel
    default:
        return zapcore.InfoLevel
    }
}
