package log

import (
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func init() {
	cfg := zap.NewProductionConfig()
	cfg.Level.SetLevel(zapcore.InfoLevel)
	if os.Getenv("env") == "local" || os.Getenv("ENV") == "local" {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339Nano)

	zapLogger, err := cfg.Build()
	if err != nil {
		log.Fatalf("fail to build log. err: %s", err)
	}

	logger = zapLogger.With(zap.String("app", "housing-api-go"))
}

func Logger() *zap.Logger {
	return logger
}

// SetLogger swaps the package logger; tests use it with zaptest/observer cores.
func SetLogger(l *zap.Logger) {
	logger = l
}
