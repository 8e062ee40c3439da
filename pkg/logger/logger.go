// Package logger holds the process-wide zap logger. SetupLogger must be called
// once at startup before any other package logs.
package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global = zap.NewNop()

const envLocal = "local"

func SetupLogger(env string, level string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)

	lvl, lvlErr := zapcore.ParseLevel(level)
	if lvlErr != nil {
		lvl = zapcore.InfoLevel
	}

	if env == envLocal {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		logger, err = cfg.Build()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		logger, err = cfg.Build()
	}
	if err != nil {
		log.Fatalf("cannot build logger: %s", err)
	}

	global = logger

	return logger
}

func Logger() *zap.Logger {
	return global
}

func Debug(msg string, fields ...zap.Field) {
	global.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	global.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	global.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	global.Error(msg, fields...)
}
