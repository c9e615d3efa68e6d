// Package membackend implements an in-memory backend.IBackend based on a
// concurrent hash map. Data is stored entirely in memory and is not persisted
// between process restarts.
//
// Key Features:
//   - Pure in-memory storage without persistence
//   - Thread-safe operations for concurrent access
//   - Configurable per-entry size ceiling (default: backend.DefaultMaxEntryLen)
//   - Full feature support including key enumeration
//
// The memory backend is ideal for tests (as a substitute for a real host
// property store), ephemeral caches, and benchmarking the database layer
// without I/O noise.
package membackend
