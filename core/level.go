package core

import (
	"github.com/pkg/errors"
)

// Level represents the severity level of a log call
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages (default error threshold)
	ErrorLevel
	// FatalLevel for fatal messages. Logging at this level never exits.
	FatalLevel
)

// ErrInvalidLevel is returned whenever a level identifier does not resolve
// to a known level. Use errors.Is to test for it; the returned errors wrap
// it with the offending value.
var ErrInvalidLevel = errors.New("invalid log level")

// names is indexed by rank.
var names = [...]string{
	DebugLevel: "debug",
	InfoLevel:  "info",
	WarnLevel:  "warn",
	ErrorLevel: "error",
	FatalLevel: "fatal",
}

// pre-computed header tags
var upperNames = [...]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
}

// Levels returns every level in rank order.
func Levels() []Level {
	return []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}
}

// Valid reports whether l is one of the known levels
func (l Level) Valid() bool {
	return l >= DebugLevel && int(l) < len(names)
}

// Rank returns the ordinal rank of the level
func (l Level) Rank() int {
	return int(l)
}

// String returns the canonical lowercase name of the level
func (l Level) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return names[l]
}

// Upper returns the uppercased name used in header lines
func (l Level) Upper() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return upperNames[l]
}

// ParseLevel converts a canonical level name to a Level. Names are
// case-sensitive: "warn" resolves, "WARN" and "warning" do not.
func ParseLevel(name string) (Level, error) {
	for i, n := range names {
		if n == name {
			return Level(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidLevel, "unknown level name %q", name)
}

// LevelFromRank converts an ordinal rank to a Level
func LevelFromRank(rank int) (Level, error) {
	if rank < 0 || rank >= len(names) {
		return 0, errors.Wrapf(ErrInvalidLevel, "unknown level rank %d", rank)
	}
	return Level(rank), nil
}

// ResolveLevel resolves a level identifier given either by name or by rank.
// Accepted identifiers are a Level, a string name, or any Go integer type
// holding a rank. Every other value fails with ErrInvalidLevel.
func ResolveLevel(id any) (Level, error) {
	switch v := id.(type) {
	case Level:
		return LevelFromRank(int(v))
	case string:
		return ParseLevel(v)
	case int:
		return LevelFromRank(v)
	case int8:
		return LevelFromRank(int(v))
	case int16:
		return LevelFromRank(int(v))
	case int32:
		return LevelFromRank(int(v))
	case int64:
		return fromRank64(v)
	case uint:
		return fromUnsigned(uint64(v))
	case uint8:
		return LevelFromRank(int(v))
	case uint16:
		return LevelFromRank(int(v))
	case uint32:
		return fromUnsigned(uint64(v))
	case uint64:
		return fromUnsigned(v)
	default:
		return 0, errors.Wrapf(ErrInvalidLevel, "log level must be string or number, got %T", id)
	}
}

func fromRank64(rank int64) (Level, error) {
	if rank < 0 || rank >= int64(len(names)) {
		return 0, errors.Wrapf(ErrInvalidLevel, "unknown level rank %d", rank)
	}
	return Level(rank), nil
}

func fromUnsigned(rank uint64) (Level, error) {
	if rank >= uint64(len(names)) {
		return 0, errors.Wrapf(ErrInvalidLevel, "unknown level rank %d", rank)
	}
	return Level(rank), nil
}
