package logger

import (
	"io"
	"log/slog"
	"os"
)

const serviceName = "photocatalog"

// New creates a JSON slog.Logger writing to stdout at the given level. Every
// record carries the service name.
func New(level slog.Level) *slog.Logger {
	return newWithWriter(os.Stdout, level)
}

func newWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("service", serviceName))
}
