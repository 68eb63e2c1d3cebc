// Package zaphandler adapts a *zap.Logger into a pair of sinks so that an
// application already configured with zap can receive levelog output
// through its own cores and encoders.
package zaphandler
