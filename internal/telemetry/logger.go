// Package telemetry builds the runner's logger and metrics.
package telemetry

import (
	"fmt"
	"io"
	"log/slog"
)

// NewLogger returns a slog.Logger writing to w.
//
// format is "text" or "json"; level is any string slog.Level understands
// ("debug", "info", "warn", "error", "info+2", ...).
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("telemetry: log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch format {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	case "text", "":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("telemetry: unknown log format %q", format)
	}
	return slog.New(h), nil
}
