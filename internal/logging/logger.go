// Package logging wires a single process-wide slog.Logger for qccgen.
// Modeled on hiveexplorer's logger package, adapted for a CLI compiler
// pass rather than a GUI tool: output goes to stderr as text by
// default, JSON when requested, and is discarded entirely until Init
// is called.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// L is the package logger. It discards everything until Init runs.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures Init.
type Options struct {
	Verbose bool // sets the minimum level to Debug
	JSON    bool // use a JSON handler instead of text
	Quiet   bool // discard everything regardless of Verbose
}

// Init configures L. Call once from main() before any log calls.
func Init(opts Options) {
	if opts.Quiet {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	if opts.JSON {
		L = slog.New(slog.NewJSONHandler(os.Stderr, handlerOpts))
		return
	}
	L = slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
