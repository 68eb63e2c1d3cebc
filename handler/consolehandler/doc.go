// Package consolehandler provides sinks that write lines to any io.Writer
// (default: os.Stdout).
//
// Writers are adapted with zapcore.AddSync and, unless they declare
// themselves safe for concurrent use, serialized with zapcore.Lock so
// a header line and its extra values are never interleaved with another
// goroutine's output. Each Print is a single Write call.
//
// NewConsolePair returns the conventional stdout/stderr pair used as the
// default normal and error sinks.
package consolehandler
