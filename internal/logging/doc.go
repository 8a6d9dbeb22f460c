// Package logging provides structured logging for the word finder client and
// its stub generation service.
//
// This package wraps a process-wide zap logger with convenience functions for
// the events both binaries report: generation requests and responses, stale
// responses dropped by the puzzle screen, and HTTP requests served by the stub.
//
// # Silent by Default
//
// The logger is a no-op until a level is supplied, either through
// Options.Level (the --log-level flag) or the WORDFINDER_LOG_LEVEL
// environment variable. The terminal UI draws on stdout, so output goes to
// Options.File / WORDFINDER_LOG_FILE when set and to stderr otherwise:
//
//	if err := logging.Initialize(logging.Options{Level: "debug", File: "wordfinder.log"}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
//	logging.Info("Discovered service",
//	    zap.String("instance", svc.Instance),
//	    zap.String("endpoint", svc.Endpoint()),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once Initialize has
// returned. Initialize itself must be called before any goroutines log.
package logging
