// Package logger wraps a process-wide slog JSON logger so call sites stay
// one-liners. Init is called once from main; calling a level function before
// Init falls back to a default logger instead of panicking.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

var log *slog.Logger

func Init() {
	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// New and NewJSONHandler exist so tests can point the package logger at a
// buffer.
func New(h slog.Handler) *slog.Logger {
	return slog.New(h)
}

func NewJSONHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	return slog.NewJSONHandler(w, opts)
}

func get() *slog.Logger {
	if log == nil {
		Init()
	}
	return log
}

func Info(msg string, args ...interface{}) {
	get().Info(msg, args...)
}

func Infof(format string, v ...interface{}) {
	get().Info(fmt.Sprintf(format, v...))
}

func Warn(msg string, args ...interface{}) {
	get().Warn(msg, args...)
}

func Warnf(format string, v ...interface{}) {
	get().Warn(fmt.Sprintf(format, v...))
}

func Error(msg string, args ...interface{}) {
	get().Error(msg, args...)
}

func Errorf(format string, v ...interface{}) {
	get().Error(fmt.Sprintf(format, v...))
}

func Debug(msg string, args ...interface{}) {
	get().Debug(msg, args...)
}

func Debugf(format string, v ...interface{}) {
	get().Debug(fmt.Sprintf(format, v...))
}

func Fatal(msg string, args ...interface{}) {
	get().Error(msg, args...)
	os.Exit(1)
}

func Fatalf(format string, v ...interface{}) {
	get().Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}

func WithError(err error) *slog.Logger {
	return get().With("error", err)
}

func WithFields(fields map[string]interface{}) *slog.Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return get().With(args...)
}
