package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapSink forwards lines into an existing *zap.Logger at a fixed level.
// The header line becomes the zap message; extra values are attached as a
// single "extra" field so they reach the encoder unformatted.
type ZapSink struct {
	logger *zap.Logger
	level  zapcore.Level
}

// NewZapSink creates a sink writing to l at the given level
func NewZapSink(l *zap.Logger, level zapcore.Level) *ZapSink {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapSink{logger: l, level: level}
}

// NewZapPair returns sinks for l: InfoLevel for normal output, ErrorLevel
// for escalated output.
func NewZapPair(l *zap.Logger) (normal, errSink *ZapSink) {
	return NewZapSink(l, zapcore.InfoLevel), NewZapSink(l, zapcore.ErrorLevel)
}

// Print implements handler.Sink
func (s *ZapSink) Print(line string, extra ...any) error {
	ce := s.logger.Check(s.level, line)
	if ce == nil {
		return nil
	}
	if len(extra) == 0 {
		ce.Write()
		return nil
	}
	ce.Write(zap.Any("extra", extra))
	return nil
}

// Sync flushes the zap logger
func (s *ZapSink) Sync() error {
	return s.logger.Sync()
}
