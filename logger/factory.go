package logger

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/formatter"
	"github.com/philipp01105/levelog/handler"
	"github.com/philipp01105/levelog/handler/consolehandler"
)

// ModuleDescriptor identifies the caller by its source file
type ModuleDescriptor struct {
	Filename string
}

// Factory creates Loggers that share one State and one pair of sinks
type Factory struct {
	state  *State
	sinks  handler.Pair
	header formatter.Formatter
	detail formatter.DetailFormatter
	now    func() time.Time
	getwd  func() (string, error)
}

// Builder provides a fluent API for building Factory instances
type Builder struct {
	state  *State
	sinks  *handler.Pair
	header formatter.Formatter
	detail formatter.DetailFormatter
	now    func() time.Time
	getwd  func() (string, error)
}

// NewBuilder creates a new factory builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithState shares an existing State instead of creating a new one
func (b *Builder) WithState(s *State) *Builder {
	b.state = s
	return b
}

// WithSinks sets the normal and error sinks (default: stdout and stderr).
// A nil error sink falls back to the normal sink.
func (b *Builder) WithSinks(normal, errSink handler.Sink) *Builder {
	p := handler.NewPair(normal, errSink)
	b.sinks = &p
	return b
}

// WithFormatter sets the header formatter (default: TextFormatter)
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.header = f
	return b
}

// WithDetailFormatter sets the formatter for structured message dumps
// (default: VerboseDetail)
func (b *Builder) WithDetailFormatter(d formatter.DetailFormatter) *Builder {
	b.detail = d
	return b
}

// WithClock sets the time source for record timestamps
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// WithGetwd sets the working directory lookup used to relativize labels
func (b *Builder) WithGetwd(getwd func() (string, error)) *Builder {
	b.getwd = getwd
	return b
}

// Build creates the Factory instance
func (b *Builder) Build() *Factory {
	f := &Factory{
		state:  b.state,
		header: b.header,
		detail: b.detail,
		now:    b.now,
		getwd:  b.getwd,
	}
	if f.state == nil {
		f.state = NewState()
	}
	if b.sinks != nil && b.sinks.Normal != nil {
		f.sinks = *b.sinks
	} else {
		f.sinks = consolehandler.NewConsolePair()
	}
	if f.header == nil {
		f.header = formatter.NewTextFormatter(formatter.Config{})
	}
	if f.detail == nil {
		f.detail = formatter.VerboseDetail{}
	}
	if f.now == nil {
		f.now = time.Now
	}
	if f.getwd == nil {
		f.getwd = os.Getwd
	}
	return f
}

// NewFactory creates a Factory with its own State writing to stdout and
// stderr
func NewFactory() *Factory {
	return NewBuilder().Build()
}

// FromLabel creates a Logger labeled with the given string, relativized
// against the current working directory when relative paths are enabled
func (f *Factory) FromLabel(label string) *Logger {
	return f.newLogger(f.deriveLabel(label))
}

// FromModule creates a Logger labeled with the module's file name
func (f *Factory) FromModule(m ModuleDescriptor) *Logger {
	return f.FromLabel(m.Filename)
}

// Default creates a Logger with an empty label
func (f *Factory) Default() *Logger {
	return f.newLogger("")
}

// New creates a Logger from a loosely typed identifier: nil, a string, a
// ModuleDescriptor (or pointer to one), or any value with a
// Filename() string method. Other values are treated as no identifier.
func (f *Factory) New(id any) *Logger {
	switch v := id.(type) {
	case string:
		return f.FromLabel(v)
	case ModuleDescriptor:
		return f.FromModule(v)
	case *ModuleDescriptor:
		if v != nil {
			return f.FromModule(*v)
		}
	case interface{ Filename() string }:
		return f.FromLabel(v.Filename())
	}
	return f.Default()
}

func (f *Factory) newLogger(label string) *Logger {
	return &Logger{
		label:  label,
		state:  f.state,
		sinks:  f.sinks,
		header: f.header,
		detail: f.detail,
		now:    f.now,
	}
}

// deriveLabel rewrites name relative to the working directory at this
// moment: the directory part is relativized and the base name appended
// unchanged. The name is kept as given when it is empty, relative paths
// are disabled, or the working directory cannot be determined.
func (f *Factory) deriveLabel(name string) string {
	if name == "" || !f.state.UseRelativePath() {
		return name
	}

	cwd, err := f.getwd()
	if err != nil {
		return name
	}

	trimmed := name
	if len(trimmed) > 1 {
		trimmed = strings.TrimRight(trimmed, string(filepath.Separator))
		if trimmed == "" {
			trimmed = string(filepath.Separator)
		}
	}

	dir := filepath.Dir(trimmed)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cwd, dir)
	}
	rel, err := filepath.Rel(cwd, dir)
	if err != nil {
		return name
	}
	return filepath.Join(rel, filepath.Base(trimmed))
}

// State returns the state shared by this factory's loggers
func (f *Factory) State() *State {
	return f.state
}

// Sinks returns the factory's sink pair
func (f *Factory) Sinks() handler.Pair {
	return f.sinks
}

// Level returns the minimum level to emit
func (f *Factory) Level() core.Level {
	return f.state.Level()
}

// SetLevel sets the minimum level to emit, by name or rank
func (f *Factory) SetLevel(id any) error {
	return f.state.SetLevel(id)
}

// ErrorThreshold returns the level from which calls go to the error sink
func (f *Factory) ErrorThreshold() core.Level {
	return f.state.ErrorThreshold()
}

// SetErrorThreshold sets the error threshold, by name or rank
func (f *Factory) SetErrorThreshold(id any) error {
	return f.state.SetErrorThreshold(id)
}

// UseRelativePath reports whether new labels are relativized
func (f *Factory) UseRelativePath() bool {
	return f.state.UseRelativePath()
}

// SetUseRelativePath toggles label relativization
func (f *Factory) SetUseRelativePath(v bool) {
	f.state.SetUseRelativePath(v)
}

// Close flushes both sinks
func (f *Factory) Close() error {
	return f.sinks.Sync()
}
