package logger

import (
	"sync/atomic"

	"github.com/philipp01105/levelog/core"
)

// State is the configuration shared by every Logger created from the same
// Factory: the minimum level to emit, the error threshold and the path
// display mode. Values are stored atomically, so setters may race with
// log calls from other goroutines.
type State struct {
	minLevel        atomic.Int32
	errorThreshold  atomic.Int32
	useRelativePath atomic.Bool
}

// NewState creates a State with the defaults: emit everything from debug
// up, escalate error and fatal, relativize labels.
func NewState() *State {
	s := &State{}
	s.minLevel.Store(int32(core.DebugLevel))
	s.errorThreshold.Store(int32(core.ErrorLevel))
	s.useRelativePath.Store(true)
	return s
}

// SetLevel sets the minimum level to emit. The identifier is resolved
// first; on error the previous value is kept.
func (s *State) SetLevel(id any) error {
	l, err := core.ResolveLevel(id)
	if err != nil {
		return err
	}
	s.minLevel.Store(int32(l))
	return nil
}

// Level returns the minimum level to emit
func (s *State) Level() core.Level {
	return core.Level(s.minLevel.Load())
}

// GetLevel passes the minimum level's rank and name to cb
func (s *State) GetLevel(cb func(rank int, name string)) {
	l := s.Level()
	cb(l.Rank(), l.String())
}

// SetErrorThreshold sets the level from which calls go to the error sink.
// On error the previous value is kept.
func (s *State) SetErrorThreshold(id any) error {
	l, err := core.ResolveLevel(id)
	if err != nil {
		return err
	}
	s.errorThreshold.Store(int32(l))
	return nil
}

// ErrorThreshold returns the level from which calls go to the error sink
func (s *State) ErrorThreshold() core.Level {
	return core.Level(s.errorThreshold.Load())
}

// GetErrorThreshold passes the error threshold's rank and name to cb
func (s *State) GetErrorThreshold(cb func(rank int, name string)) {
	l := s.ErrorThreshold()
	cb(l.Rank(), l.String())
}

// SetUseRelativePath toggles label relativization for loggers created
// afterwards. Existing loggers keep their label.
func (s *State) SetUseRelativePath(v bool) {
	s.useRelativePath.Store(v)
}

// UseRelativePath reports whether new labels are relativized
func (s *State) UseRelativePath() bool {
	return s.useRelativePath.Load()
}

// Enabled reports whether a call at level l would be emitted
func (s *State) Enabled(l core.Level) bool {
	return l >= s.Level()
}

// Escalated reports whether a call at level l goes to the error sink
func (s *State) Escalated(l core.Level) bool {
	return l >= s.ErrorThreshold()
}
