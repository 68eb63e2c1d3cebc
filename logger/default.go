package logger

import (
	"sync"

	"github.com/philipp01105/levelog/core"
)

var (
	defaultFactory *Factory
	defaultMu      sync.RWMutex
)

func init() {
	// Process-wide factory: stdout/stderr sinks, default thresholds
	defaultFactory = NewBuilder().Build()
}

// Default returns the default factory
func Default() *Factory {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultFactory
}

// SetDefault sets the default factory. Loggers created earlier keep the
// factory they were created from.
func SetDefault(f *Factory) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFactory = f
}

// Package-level convenience functions using the default factory

// New creates a Logger from the default factory. See Factory.New.
func New(id any) *Logger {
	return Default().New(id)
}

// FromLabel creates a labeled Logger from the default factory
func FromLabel(label string) *Logger {
	return Default().FromLabel(label)
}

// FromModule creates a Logger for a source file from the default factory
func FromModule(m ModuleDescriptor) *Logger {
	return Default().FromModule(m)
}

// SetLevel sets the default factory's minimum level to emit
func SetLevel(id any) error {
	return Default().SetLevel(id)
}

// GetLevel returns the default factory's minimum level to emit
func GetLevel() core.Level {
	return Default().Level()
}

// SetErrorThreshold sets the default factory's error threshold
func SetErrorThreshold(id any) error {
	return Default().SetErrorThreshold(id)
}

// GetErrorThreshold returns the default factory's error threshold
func GetErrorThreshold() core.Level {
	return Default().ErrorThreshold()
}

// SetUseRelativePath toggles label relativization on the default factory
func SetUseRelativePath(v bool) {
	Default().SetUseRelativePath(v)
}
