// Package logger builds the structured logger shared by all components.
// The logger is constructed once in cmd and passed into constructors;
// nothing in the core reads ambient logging state.
package logger

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// maxLoggedValueLen caps request-derived values before they reach the log.
const maxLoggedValueLen = 200

// New builds a zap logger at the given level ("debug", "info", "warn",
// "error"). Unknown levels fall back to info.
func New(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Sanitize strips control characters from a request-derived value and caps
// its length, so user input cannot forge log lines.
func Sanitize(input string) string {
	if input == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
		if b.Len() >= maxLoggedValueLen {
			break
		}
	}
	return b.String()
}
