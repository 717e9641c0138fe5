package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a structured logger writing to stdout with source location enabled.
// Level should be a valid slog level string: DEBUG, INFO, WARN, ERROR.
// Unrecognized values default to ERROR. Format "text" selects the text
// handler; anything else produces JSON.
func New(level, format string) *slog.Logger {
	return NewTo(os.Stdout, level, format)
}

// NewTo is New with an explicit destination.
func NewTo(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelError
	}

	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     lvl,
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
