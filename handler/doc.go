// Package handler provides the Sink interface and the helpers loggers use
// to route lines between the "normal" and the "error" output.
//
// A Sink accepts a preformatted header line plus the caller's trailing
// values and renders them however it sees fit. Pair bundles the two sinks
// a logger chooses from; Select picks the error sink for calls at or above
// the error threshold.
//
// Built-in sinks:
//
//   - consolehandler.WriterSink writes to any io.Writer (default: stdout
//     for the normal sink, stderr for the error sink) through a locked
//     zapcore.WriteSyncer.
//   - zaphandler.ZapSink forwards lines into an existing *zap.Logger.
//   - MultiSink fans a line out to several sinks.
//
// Errors from several sinks are combined with go.uber.org/multierr.
package handler
