package core

import (
	"time"
)

// Record represents a single log call after it passed the emit threshold.
// Records are never stored; they live for the duration of the call.
type Record struct {
	Time    time.Time
	Level   Level
	Label   string
	Message any
	// Extra holds the trailing positional values, forwarded to the sink as
	// received.
	Extra []any
}

// NewRecord captures a record at time t, normalized to UTC
func NewRecord(t time.Time, level Level, label string, msg any, extra []any) Record {
	return Record{
		Time:    t.UTC(),
		Level:   level,
		Label:   label,
		Message: msg,
		Extra:   extra,
	}
}
