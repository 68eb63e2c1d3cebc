package logger

import (
	"github.com/philipp01105/levelog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
)

// ErrInvalidLevel is returned by every operation that resolves a level
// identifier which is neither a known name nor a known rank.
var ErrInvalidLevel = core.ErrInvalidLevel

// ParseLevel resolves a level identifier given by name or by rank
func ParseLevel(id any) (Level, error) {
	return core.ResolveLevel(id)
}
