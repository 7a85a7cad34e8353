// Package logging builds the zap logger shared by all commands.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = "info"

// Options select the level and destination of log output.
type Options struct {
	// Level is a zap level name; invalid or empty values fall back to info.
	Level string
	// File receives the log; empty means stderr.
	File string
	// Verbose forces debug level.
	Verbose bool
}

// New constructs a JSON logger.
func New(opts Options) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(opts.Level)))); err != nil {
		_ = level.UnmarshalText([]byte(defaultLevel))
	}
	if opts.Verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	output := "stderr"
	if opts.File != "" {
		output = opts.File
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey:    "message",
		TimeKey:       "timestamp",
		LevelKey:      "severity",
		NameKey:       "logger",
		CallerKey:     "caller",
		StacktraceKey: "stacktrace",
		EncodeTime:    zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(level.String()))
		},
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	cfg := zap.Config{
		Level:             level,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// OrNop returns logger, or a no-op logger if it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
