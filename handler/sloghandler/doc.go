// Package sloghandler provides an adapter from logger.Logger to
// log/slog.Handler, so code written against the standard library's
// slog API is routed through levelog's thresholds and sinks.
package sloghandler
