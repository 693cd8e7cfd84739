// SPDX-License-Identifier: MIT
// Package: roomcost/internal/logger

// Package logger builds the zap loggers used by the roomcost command.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported output formats. "text" is accepted as an alias of console.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ParseLevel maps "debug", "info", "warn" or "error" (case-insensitive) to a
// zap level. An empty string means info.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("logger: unknown level %q: must be debug, info, warn or error", level)
	}
}

// ParseFormat normalises a format name to FormatJSON or FormatConsole.
func ParseFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatConsole, "text":
		return FormatConsole, nil
	case FormatJSON, "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("logger: unknown format %q: must be json or console", format)
	}
}

// New returns a logger writing to w. serviceName, when set, is attached to
// every entry as "service_name", and the host name as "hostname".
func New(w io.Writer, level, format, serviceName string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	if f == FormatConsole {
		cfg := zap.NewDevelopmentEncoderConfig()
		enc = zapcore.NewConsoleEncoder(cfg)
	} else {
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "timestamp"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	log := zap.New(core, zap.ErrorOutput(zapcore.AddSync(os.Stderr)))

	if serviceName != "" {
		log = log.With(zap.String("service_name", serviceName))
	}
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		log = log.With(zap.String("hostname", hostname))
	}

	return log, nil
}

// NewDefault returns an info level JSON logger on stderr.
func NewDefault(serviceName string) *zap.Logger {
	log, err := New(os.Stderr, "info", FormatJSON, serviceName)
	if err != nil {
		return zap.NewNop()
	}

	return log
}
