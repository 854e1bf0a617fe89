// Package log provides the process-wide zap logger.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger

func productionConfig() zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

func build(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return productionConfig().Build()
}

// Init builds the package logger. Debug selects the human readable
// development encoder.
func Init(debug bool) error {
	zapLogger, err := build(debug)
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	log = zapLogger.Sugar()
	return nil
}

// Logger returns the sugared logger, falling back to the production console
// logger when Init has not been called.
func Logger() *zap.SugaredLogger {
	if log == nil {
		zapLogger, err := build(false)
		if err != nil {
			zapLogger = zap.NewNop()
		}
		log = zapLogger.Sugar()
	}
	return log
}

// Sync flushes any buffered log entries.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
