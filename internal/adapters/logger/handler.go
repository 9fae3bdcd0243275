// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/cargostep/internal/ui/output"
	"go.trai.ch/cargostep/internal/ui/style"
)

// PrettyHandler is a slog.Handler that writes one colored line per record:
// a level marker, the message and its key=value attributes.
// Groups are flattened; attribute keys are written unqualified.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []string
}

// NewPrettyHandler creates a new PrettyHandler writing to w, or stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	marker, color := levelStyle(r.Level)

	var line strings.Builder
	line.WriteString(marker)
	line.WriteString(r.Message)
	for _, attr := range h.attrs {
		line.WriteString(" " + attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		line.WriteString(" " + formatAttr(attr))
		return true
	})

	styled := h.out.String(line.String()).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns a new Handler that prefixes every record with attrs.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	formatted := make([]string, 0, len(h.attrs)+len(attrs))
	formatted = append(formatted, h.attrs...)
	for _, attr := range attrs {
		formatted = append(formatted, formatAttr(attr))
	}

	return &PrettyHandler{out: h.out, level: h.level, attrs: formatted}
}

// WithGroup returns h unchanged.
func (h *PrettyHandler) WithGroup(_ string) slog.Handler {
	return h
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " ", termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning + " ", termenv.RGBColor(string(style.Yellow))
	case level < slog.LevelInfo:
		return style.Dot + " ", termenv.RGBColor(string(style.Iris))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

// formatAttr renders key=value. Durations are rounded to milliseconds and
// values containing whitespace are quoted so a line stays splittable.
func formatAttr(attr slog.Attr) string {
	value := attr.Value.Resolve()

	var text string
	if value.Kind() == slog.KindDuration {
		text = value.Duration().Round(time.Millisecond).String()
	} else {
		text = value.String()
	}
	if text == "" || strings.ContainsAny(text, " \t\n\"") {
		text = strconv.Quote(text)
	}

	return attr.Key + "=" + text
}
