// Package rtlog provides the runtime kernel's shared slog.Logger: a
// package-level instance that discards output until Init configures it,
// so every package can log through L (or an injected *slog.Logger)
// without any package needing to know whether logging is enabled.
package rtlog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// L is the global logger. It discards everything until Init is called.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures Init.
type Options struct {
	Enabled bool       // if false, all logging is discarded
	LogDir  string     // directory for the log file; default is the OS temp dir
	Level   slog.Level // minimum level; default is LevelInfo when enabled
}

// Init configures L. Call it once from main() before constructing any
// runtime kernel package that logs.
func Init(opts Options) error {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	logDir := opts.LogDir
	if logDir == "" {
		logDir = filepath.Join(os.TempDir(), "wscriptrun")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(
		filepath.Join(logDir, "wscriptrun.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0o644,
	)
	if err != nil {
		return err
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}
	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// Debug logs a debug message through L.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message through L.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message through L.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message through L.
func Error(msg string, args ...any) { L.Error(msg, args...) }
