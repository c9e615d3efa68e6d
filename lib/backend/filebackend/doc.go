// Package filebackend implements a backend.IBackend persisted to a single
// JSON file. The whole property map is rewritten atomically (temp file plus
// rename) on every mutation, so the file on disk always holds a complete,
// parseable snapshot.
//
// This implementation trades write throughput for simplicity and durability
// and is intended for the CLI and other single-process tooling. For tests and
// ephemeral data prefer the membackend package.
package filebackend
