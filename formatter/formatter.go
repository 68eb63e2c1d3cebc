package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/levelog/core"
)

// ISO8601Millis renders UTC times as 2006-01-02T15:04:05.000Z
const ISO8601Millis = "2006-01-02T15:04:05.000Z07:00"

// Formatter defines the interface for header formatters
type Formatter interface {
	// Format renders the header line of a record, without a trailing newline
	Format(r *core.Record) string
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for ISO8601Millis)
	TimestampFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(128)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
