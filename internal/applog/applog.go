// Package applog is the thin zap wrapper the rest of the repository logs
// through: a single package-level logger, initialized once by the CLI
// entry point, never touched from the per-ray hot path.
package applog

import "go.uber.org/zap"

// Log is the shared structured logger. It defaults to a no-op logger so
// that packages importing applog remain safe to use in tests that never
// call Init.
var Log *zap.Logger = zap.NewNop()

// Init replaces Log with a production logger (JSON encoding, info level)
// or, when verbose is true, a development logger (console encoding, debug
// level, caller info). The CLI's root command calls it once, in its
// pre-run hook, before any rendering work starts.
func Init(verbose bool) error {
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = logger
	return nil
}

// Sync flushes any buffered log entries. The CLI's Execute defers it; the
// returned error is safe to ignore when stderr is a terminal.
func Sync() error {
	return Log.Sync()
}
