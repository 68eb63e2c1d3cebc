// Package logger is the public API of levelog. Most users only need to
// import this package.
//
// A Factory owns a State (minimum level to emit, error threshold,
// relative-path mode) and a pair of sinks. Every Logger it creates is
// bound to a fixed label and shares that State, so raising or lowering
// verbosity in one place affects the whole application:
//
//	log := logger.FromModule(logger.ModuleDescriptor{Filename: "/app/src/db.go"})
//	log.Info("connected", "host", host) // [..] [INFO] [src/db.go] - connected host db1
//	logger.SetLevel("warn")             // debug and info are now suppressed
//
// Each call is resolved against two thresholds. Calls below the minimum
// level are dropped before any formatting. Calls at or above the error
// threshold go to the error sink (stderr by default), the rest to the
// normal sink (stdout). When the message is an error or another
// structured value, a detail dump (the stack trace for errors wrapped
// with github.com/pkg/errors) follows on the normal sink, then a blank
// line.
//
// Level identifiers are accepted by name ("info") or by rank (1). Unknown
// identifiers fail with ErrInvalidLevel and leave the State unchanged;
// Logger.Log returns the same error instead of guessing a level.
//
// The package initializes a default Factory in init(). Tests and
// libraries should build their own with NewBuilder so they do not share
// thresholds with the host application:
//
//	f := logger.NewBuilder().
//	    WithSinks(normalSink, errorSink).
//	    WithState(logger.NewState()).
//	    Build()
package logger
