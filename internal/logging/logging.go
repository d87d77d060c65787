package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	TextFormat = "text"
	JSONFormat = "json"
)

// ParseLevel converts a level name into a [slog.Level]. The empty string
// means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}

// CreateHandler builds a [slog.Handler] writing to w with the given level
// and format names. The empty format means text.
func CreateHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case TextFormat, "":
		return slog.NewTextHandler(w, opts), nil
	case JSONFormat:
		return slog.NewJSONHandler(w, opts), nil
	}

	return nil, fmt.Errorf("unknown log format %q", format)
}
