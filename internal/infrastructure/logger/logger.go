package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"atelier/internal/config"
)

// New builds the JSON production logger. Every entry carries the service
// name, and stack traces are kept for errors only.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.EncoderConfig.TimeKey = "timestamp"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.EncodeDuration = zapcore.MillisDurationEncoder
	zc.InitialFields = map[string]interface{}{"service": cfg.Service}

	return zc.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}
