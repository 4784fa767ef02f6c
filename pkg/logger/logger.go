package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger = zap.NewNop().Sugar()

// Init builds the process-wide logger. mode "debug" gets a human-readable
// console encoder; anything else gets production JSON.
func Init(mode string) {
	var config zap.Config
	if mode == "debug" {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	l, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	sugar = l.Sugar()
}

// L returns the process logger. Safe to call before Init; it degrades to a
// no-op logger, which keeps tests quiet.
func L() *zap.SugaredLogger { return sugar }

func Sync() { _ = sugar.Sync() }
