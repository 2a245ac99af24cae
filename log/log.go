package log

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the global logger instance
var Logger *slog.Logger

var level = new(slog.LevelVar)

// InitLogger initializes the global logger writing text records to w.
// The level starts at Info; see SetDebug.
func InitLogger(w io.Writer) {
	opts := &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}

	handler := slog.NewTextHandler(w, opts)
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// init initializes the logger when the package is imported
func init() {
	InitLogger(os.Stderr)
}

// SetDebug switches the global logger between Debug and Info level
func SetDebug(enabled bool) {
	if enabled {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}
