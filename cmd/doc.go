// Package cmd implements the command-line interface for the ReplayCraft
// store. It operates on a file-backed property store and exposes the full
// database surface plus maintenance tooling.
//
// The package is organized into subpackages:
//
//   - kv: Commands for database operations (get, set, del, entries, repair, perf, ...)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See replaycraft -help for a list of all commands.
package cmd
