package consolehandler

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/levelog/handler"
)

// WriterConfig holds configuration for a writer sink
type WriterConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Separator is written between the line and each extra value (default: " ")
	Separator string
	// ConcurrentWriter indicates the Writer already serializes Write calls.
	// When false the writer is wrapped with zapcore.Lock. Automatically
	// detected for io.Discard.
	ConcurrentWriter bool
}

// applyWriterDefaults fills in zero-value fields with defaults.
func applyWriterDefaults(cfg *WriterConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Separator == "" {
		cfg.Separator = " "
	}
}

// WriterSink writes each line, followed by its extra values, as a single
// Write call on the underlying writer.
type WriterSink struct {
	out       zapcore.WriteSyncer
	separator string
	stats     *handler.Stats
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// NewWriterSink creates a new writer sink
func NewWriterSink(cfg WriterConfig) *WriterSink {
	applyWriterDefaults(&cfg)

	ws := zapcore.AddSync(cfg.Writer)
	if !cfg.ConcurrentWriter && cfg.Writer != io.Discard {
		ws = zapcore.Lock(ws)
	}

	return &WriterSink{
		out:       ws,
		separator: cfg.Separator,
		stats:     handler.NewStats(),
	}
}

// Print writes line and the extra values. Extras are stringified with
// fmt's default format and separated by the configured separator.
func (s *WriterSink) Print(line string, extra ...any) error {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()

	buf.WriteString(line)
	for _, v := range extra {
		buf.WriteString(s.separator)
		fmt.Fprint(buf, v)
	}
	buf.WriteByte('\n')

	_, err := s.out.Write(buf.Bytes())
	if buf.Cap() <= 64*1024 {
		bufferPool.Put(buf)
	}

	if err != nil {
		s.stats.IncrementFailed()
		return err
	}
	s.stats.IncrementProcessed()
	return nil
}

// Sync flushes the underlying writer if it supports syncing
func (s *WriterSink) Sync() error {
	return s.out.Sync()
}

// Stats returns a snapshot of the current statistics
func (s *WriterSink) Stats() handler.Snapshot {
	return s.stats.GetSnapshot()
}

// NewConsolePair creates the default sink pair: stdout for normal output,
// stderr for errors.
func NewConsolePair() handler.Pair {
	return handler.NewPair(
		NewWriterSink(WriterConfig{Writer: os.Stdout}),
		NewWriterSink(WriterConfig{Writer: os.Stderr}),
	)
}

// NewBufferPair creates a pair writing to the given writers. It is mostly
// useful in tests, where both outputs are captured separately.
func NewBufferPair(normal, errOut io.Writer) handler.Pair {
	return handler.NewPair(
		NewWriterSink(WriterConfig{Writer: normal}),
		NewWriterSink(WriterConfig{Writer: errOut}),
	)
}
