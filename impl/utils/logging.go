package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a production logger writing to logFile, or to stderr when
// logFile is empty.
func NewLogger(level zapcore.Level, logFile string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if logFile != "" {
		if e := EnsureParentDir(logFile); e != nil {
			return nil, e
		}
		config.OutputPaths = []string{logFile}
	}

	return config.Build()
}
