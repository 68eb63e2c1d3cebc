package handler

import (
	"go.uber.org/multierr"
)

// Sink is a line-oriented output destination
type Sink interface {
	// Print writes line followed by the extra values, rendered by the sink's
	// own default stringification
	Print(line string, extra ...any) error

	// Sync flushes any buffered output
	Sync() error
}

// Pair holds the two sinks a logger routes between
type Pair struct {
	Normal Sink
	Error  Sink
}

// NewPair creates a sink pair. A nil error sink falls back to the normal one.
func NewPair(normal, errSink Sink) Pair {
	if errSink == nil {
		errSink = normal
	}
	return Pair{Normal: normal, Error: errSink}
}

// Select returns the error sink when escalate is true, the normal sink otherwise
func (p Pair) Select(escalate bool) Sink {
	if escalate {
		return p.Error
	}
	return p.Normal
}

// Sync flushes both sinks, syncing a shared sink only once
func (p Pair) Sync() error {
	if p.Normal == nil {
		return nil
	}
	err := p.Normal.Sync()
	if p.Error != nil && p.Error != p.Normal {
		err = multierr.Append(err, p.Error.Sync())
	}
	return err
}
