// Package backend defines the contract for the primitive property store that
// carries all persisted data: a flat string-to-string map whose entries are
// subject to a practical per-entry size ceiling. The package contains only the
// interface, capability flags, and shared constants; concrete implementations
// live in sub-packages.
//
// The package focuses on:
//   - A unified interface (IBackend) for primitive get/set/delete access
//   - Capability discovery through Feature bit flags and SupportsFeature
//   - An explicit per-entry size ceiling as part of the contract
//
// Implementations:
//
//	The package includes two implementations of the IBackend interface:
//
//	- Memory Backend (membackend): a concurrent in-memory map. Data does not
//	  survive process restarts. Intended for tests and ephemeral usage.
//	  Available in the "github.com/MRUIAW/ReplayCraft/lib/backend/membackend" package.
//
//	- File Backend (filebackend): persists the property map to a JSON file,
//	  rewriting it atomically on every mutation. Intended for CLI and
//	  single-process tooling usage.
//	  Available in the "github.com/MRUIAW/ReplayCraft/lib/backend/filebackend" package.
//
// The interface is deliberately passive: backends never call back into the
// database layer, and all operations are synchronous. Error values returned by
// an implementation are propagated to callers of the database layer unmodified.
package backend
