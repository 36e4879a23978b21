// Package logger holds the process wide structured logger.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Log *slog.Logger

// usable before main has read the config
func init() {
	Initialize("info", false)
}

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// Initialize replaces Log and the slog default. Unknown levels mean info.
func Initialize(level string, useJSON bool) {
	opts := &slog.HandlerOptions{Level: parseLevel(level), AddSource: true}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if useJSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
}

func parseLevel(level string) slog.Level {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(level))]; ok {
		return l
	}
	return slog.LevelInfo
}
