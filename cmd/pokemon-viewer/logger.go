package main

import (
	"go.uber.org/zap"
)

// createLogger builds the process logger. The terminal shell passes stderr so
// log lines do not interleave with the rendered screen.
func createLogger(level string, outputs ...string) (*zap.Logger, error) {
	var config zap.Config

	switch level {
	case "debug":
		config = zap.NewDevelopmentConfig()
	case "info":
		config = zap.NewProductionConfig()
	case "warn":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config = zap.NewProductionConfig()
	}

	if len(outputs) == 0 {
		outputs = []string{"stdout"}
	}
	config.OutputPaths = outputs
	config.ErrorOutputPaths = []string{"stderr"}

	return config.Build()
}
