package formatter

import (
	"bytes"

	"github.com/philipp01105/levelog/core"
)

// TextFormatter renders the header line
//
//	[<timestamp>] [<LEVEL>] [<label>] - <message>
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = ISO8601Millis
	}
	return &TextFormatter{Config: cfg}
}

// Format formats the header line of a record
func (f *TextFormatter) Format(r *core.Record) string {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(r, buf)
	return buf.String()
}

// pre-formatted level tags to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.DebugLevel: "] [DEBUG] [",
	core.InfoLevel:  "] [INFO] [",
	core.WarnLevel:  "] [WARN] [",
	core.ErrorLevel: "] [ERROR] [",
	core.FatalLevel: "] [FATAL] [",
}

func (f *TextFormatter) formatToBuffer(r *core.Record, buf *bytes.Buffer) {
	buf.WriteByte('[')
	buf.Write(r.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if r.Level.Valid() {
		buf.WriteString(levelBrackets[r.Level])
	} else {
		buf.WriteString("] [UNKNOWN] [")
	}

	buf.WriteString(r.Label)
	buf.WriteString("] - ")
	buf.WriteString(MessageString(r.Message))
}
