package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/logger"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger. Records are emitted through the Logger, so they honor its
// thresholds and carry its label; attributes become trailing values of
// the form key=value.
type SlogHandler struct {
	log   *logger.Logger
	attrs []any
	group string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Logger.
func NewSlogHandler(l *logger.Logger) *SlogHandler {
	return &SlogHandler{log: l}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.log.Enabled(slogLevelToCore(level))
}

// Handle emits the record through the wrapped Logger.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	extra := make([]any, 0, len(s.attrs)+record.NumAttrs())
	extra = append(extra, s.attrs...)

	record.Attrs(func(a slog.Attr) bool {
		extra = appendAttr(extra, s.group, a)
		return true
	})

	return s.log.Log(slogLevelToCore(record.Level), record.Message, extra...)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]any, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{
		log:   s.log,
		attrs: newAttrs,
		group: s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newAttrs := make([]any, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogHandler{
		log:   s.log,
		attrs: newAttrs,
		group: newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level. Anything four
// steps above slog.LevelError is treated as fatal.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr renders a as key=value, prefixing the group and flattening
// nested groups.
func appendAttr(dst []any, group string, a slog.Attr) []any {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + a.Key
	} else if group != "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}
	return append(dst, key+"="+a.Value.String())
}
