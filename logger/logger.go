package logger

import (
	"time"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/formatter"
	"github.com/philipp01105/levelog/handler"
)

// Logger is bound to a fixed label (immutable). Everything else it does
// defers to the State it shares with the other loggers of its Factory.
type Logger struct {
	label  string
	state  *State
	sinks  handler.Pair
	header formatter.Formatter
	detail formatter.DetailFormatter
	now    func() time.Time
}

// Label returns the label printed in every line of this logger
func (l *Logger) Label() string {
	return l.label
}

// WithLabel creates a new Logger with a different label sharing the same
// state and sinks (immutable operation). The label is used as given.
func (l *Logger) WithLabel(label string) *Logger {
	c := *l
	c.label = label
	return &c
}

// Log logs a message at the level identified by name or rank. An invalid
// identifier is reported before any emission decision and nothing is
// written.
func (l *Logger) Log(level any, msg any, extra ...any) error {
	lvl, err := core.ResolveLevel(level)
	if err != nil {
		return err
	}
	l.log(lvl, msg, extra)
	return nil
}

// log is the internal logging method that takes a pre-allocated slice
func (l *Logger) log(level core.Level, msg any, extra []any) {
	// Suppressed calls touch neither the formatter nor a sink
	if !l.state.Enabled(level) {
		return
	}

	r := core.NewRecord(l.now(), level, l.label, msg, extra)
	out := l.sinks.Select(l.state.Escalated(level))

	// Sink failures are not the logger's concern
	_ = out.Print(l.header.Format(&r), extra...)

	// Detail dumps always go to the normal sink, whichever sink got the header
	if dump, ok := l.detail.Detail(msg); ok {
		_ = l.sinks.Normal.Print(dump)
		_ = l.sinks.Normal.Print("")
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg any, extra ...any) {
	if core.DebugLevel < l.state.Level() {
		return
	}
	l.log(core.DebugLevel, msg, extra)
}

// Info logs an info message
func (l *Logger) Info(msg any, extra ...any) {
	if core.InfoLevel < l.state.Level() {
		return
	}
	l.log(core.InfoLevel, msg, extra)
}

// Warn logs a warning message
func (l *Logger) Warn(msg any, extra ...any) {
	if core.WarnLevel < l.state.Level() {
		return
	}
	l.log(core.WarnLevel, msg, extra)
}

// Error logs an error message
func (l *Logger) Error(msg any, extra ...any) {
	if core.ErrorLevel < l.state.Level() {
		return
	}
	l.log(core.ErrorLevel, msg, extra)
}

// Fatal logs a fatal message. It does not exit the program.
func (l *Logger) Fatal(msg any, extra ...any) {
	if core.FatalLevel < l.state.Level() {
		return
	}
	l.log(core.FatalLevel, msg, extra)
}

// SetLevel sets the minimum level to emit for every logger sharing this
// logger's state. Returns the logger so calls can be chained.
func (l *Logger) SetLevel(level any) (*Logger, error) {
	return l, l.state.SetLevel(level)
}

// GetLevel passes the current minimum level's rank and name to cb
func (l *Logger) GetLevel(cb func(rank int, name string)) *Logger {
	l.state.GetLevel(cb)
	return l
}

// SetErrorThreshold sets the level from which calls are written to the
// error sink, for every logger sharing this logger's state.
func (l *Logger) SetErrorThreshold(level any) (*Logger, error) {
	return l, l.state.SetErrorThreshold(level)
}

// GetErrorThreshold passes the current error threshold's rank and name to cb
func (l *Logger) GetErrorThreshold(cb func(rank int, name string)) *Logger {
	l.state.GetErrorThreshold(cb)
	return l
}

// SetUseRelativePath toggles label relativization for loggers created
// afterwards
func (l *Logger) SetUseRelativePath(v bool) *Logger {
	l.state.SetUseRelativePath(v)
	return l
}

// UseRelativePath reports whether loggers created from now on get a
// relativized label
func (l *Logger) UseRelativePath() bool {
	return l.state.UseRelativePath()
}

// Sync flushes the logger's sinks
func (l *Logger) Sync() error {
	return l.sinks.Sync()
}

// Enabled reports whether a call at level would currently be emitted
func (l *Logger) Enabled(level core.Level) bool {
	return l.state.Enabled(level)
}
