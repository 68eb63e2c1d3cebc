package handler

import (
	"go.uber.org/multierr"
)

// MultiSink sends every line to multiple sinks, for instance to copy the
// error sink's lines to the normal output as well
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a new multi-sink
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Print writes the line to all sinks. Every sink is attempted; the
// failures are combined.
func (m *MultiSink) Print(line string, extra ...any) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Print(line, extra...))
	}
	return err
}

// Sync syncs all sinks
func (m *MultiSink) Sync() error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Sync())
	}
	return err
}
