package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/gant/internal/ui/output"
	"go.trai.ch/gant/internal/ui/style"
)

// PrettyHandler is a slog.Handler for terminals and CI logs.
//
// Each line of a record is coloured on its own: build servers render logs line
// by line and drop styles that span a line break. Warnings and errors start with
// an icon, and the lines after the first are indented to line up with the text.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []string
	prefix string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
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

// Handle writes the record. Attributes follow the message as key=value pairs.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, hex := decoration(r.Level)

	parts := append([]string{r.Message}, h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, attr)
		return true
	})
	text := strings.Join(parts, " ")

	indent := ""
	if icon != "" {
		text = icon + " " + text
		indent = strings.Repeat(" ", len([]rune(icon))+1)
	}

	var b strings.Builder
	for i, line := range strings.Split(text, "\n") {
		// Error reports come laid out by Logger.Error.
		if i > 0 && line != "" && icon != "" && r.Level < slog.LevelError {
			line = indent + line
		}
		if line != "" {
			line = output.Colorize(h.out, line, hex)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	_, err := h.out.WriteString(b.String())
	return err
}

func decoration(level slog.Level) (icon, hex string) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, string(style.Red)
	case level >= slog.LevelWarn:
		return style.Warning, string(style.Yellow)
	default:
		return "", string(style.Slate)
	}
}

// WithAttrs returns a new Handler that renders attrs on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	rendered := make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(rendered, h.attrs)
	for _, attr := range attrs {
		rendered = appendAttr(rendered, h.prefix, attr)
	}

	clone := *h
	clone.attrs = rendered
	return &clone
}

// WithGroup returns a new Handler whose later attributes are qualified by name.
// Groups nest.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	value := attr.Value.Resolve()
	if value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix += attr.Key + "."
		}
		for _, member := range value.Group() {
			parts = appendAttr(parts, groupPrefix, member)
		}
		return parts
	}
	if attr.Key == "" && value.Kind() == slog.KindAny && value.Any() == nil {
		return parts
	}
	return append(parts, prefix+attr.Key+"="+quoteValue(value.String()))
}

// quoteValue quotes values that would not read back as one field, such as
// paths with spaces.
func quoteValue(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
