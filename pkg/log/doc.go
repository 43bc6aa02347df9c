// Package log records the changes and diagnostics produced by the binding
// engine.
//
// It is separate from operational logging (slog): the change log is a
// machine-readable trace of every value the engine wrote into a document,
// suitable for review after a batch run.
//
// # Wiring
//
// The extref service takes a Logger in its Config. The sct commands pass a
// SlogAdapter on the session logger, plus a FileLogger when -change-log is
// set:
//
//	changes, err := log.NewFileLogger("ldepf.slog")
//	...
//	svc := extref.NewService(extref.Config{
//		ChangeLogger: log.NewMultiLogger(log.NewSlogAdapter(logger), changes),
//	})
//
// Tests collect events in a MemoryLogger.
//
// # Event Types
//
// Each event carries either a ChangeEvent (one attribute written, with its
// old and new value) or a DiagnosticEvent (one report item).
//
// # File Format
//
// Change log files are sequences of CBOR-encoded events with integer keys,
// conventionally with the .slog extension. The "sct log view" command prints
// them.
package log
