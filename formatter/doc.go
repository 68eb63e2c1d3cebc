// Package formatter renders records into the text handed to sinks.
//
// TextFormatter produces the single header line of every emitted call:
//
//	[2024-03-01T12:00:00.000Z] [WARN] [src/foo.go] - disk almost full
//
// The timestamp is the record's capture time in UTC with millisecond
// precision. Trailing values passed to a log call are not part of the
// header; sinks receive them unformatted.
//
// DetailFormatter produces the extra dump written after the header when
// the primary message is a structured value. VerboseDetail prints errors
// with %+v so stack traces recorded by github.com/pkg/errors are kept.
//
// Header formatting uses a pooled bytes.Buffer and pre-computed level
// tags; buffers larger than 64 KiB are not returned to the pool.
package formatter
