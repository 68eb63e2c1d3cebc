// Package core defines the shared types used across levelog.
//
// It provides the Level type, a closed and ordered enumeration
// (debug < info < warn < error < fatal) with contiguous ranks starting
// at 0, and the Record type that represents a single emitted log call.
//
// A level is addressable either by its canonical lowercase name or by
// its rank. ResolveLevel accepts both and is the single place where
// identifiers are validated; every failure wraps ErrInvalidLevel:
//
//	lvl, err := core.ResolveLevel("warn") // WarnLevel
//	lvl, err = core.ResolveLevel(3)       // ErrorLevel
//	_, err = core.ResolveLevel("critical")
//	errors.Is(err, core.ErrInvalidLevel) // true
package core
