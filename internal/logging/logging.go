// Package logging builds the process-wide zap logger.
package logging

import (
    "strings"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

// New returns a JSON zap logger writing to stdout at the given level.
// Unknown levels fall back to info.
func New(level string) (*zap.Logger, error) {
    cfg := zap.Config{
        Level:            zap.NewAtomicLevelAt(parseLevel(level)),
        Development:      false,
        Encoding:         "json",
        EncoderConfig:    zap.NewProductionEncoderConfig(),
        OutputPaths:      []string{"stdout"},
        ErrorOutputPaths: []string{"stderr"},
    }
    cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
    return cfg.Build()
}

func parseLevel(level string) zapcore.Level {
    switch strings.ToLower(strings.TrimSpace(level)) {
    case "debug":
        return zap.DebugLevel
    case "warn":
        return zap.WarnLevel
    case "error":
        return zap.ErrorLevel
    }
    return zap.InfoLevel
}
