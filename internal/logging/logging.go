// Package logging builds the zap loggers used by the command-line tools.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func normaliseWriters(writers ...zapcore.WriteSyncer) zapcore.WriteSyncer {
	if len(writers) == 1 {
		return writers[0]
	}
	return zapcore.NewMultiWriteSyncer(writers...)
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

// ParseLevel maps "debug", "info", "warn" or "error" to a zap level.
// An empty string means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return l, fmt.Errorf("bad log level %q: %w", s, err)
	}
	return l, nil
}

// NewJSONLogger creates a logger writing JSON lines to writers.
func NewJSONLogger(level zapcore.Level, writers ...zapcore.WriteSyncer) *zap.Logger {
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), normaliseWriters(writers...), level)
	return zap.New(core)
}

// NewConsoleLogger creates a logger writing human-readable lines to writers.
func NewConsoleLogger(level zapcore.Level, writers ...zapcore.WriteSyncer) *zap.Logger {
	cfg := encoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), normaliseWriters(writers...), level)
	return zap.New(core)
}

// New picks the encoder by name: "json" or "console" (the default).
func New(format, level string, writers ...zapcore.WriteSyncer) (*zap.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case "json":
		return NewJSONLogger(l, writers...), nil
	case "", "console":
		return NewConsoleLogger(l, writers...), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
