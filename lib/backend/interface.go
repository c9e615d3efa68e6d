package backend

// --------------------------------------------------------------------------
// Helper Types
// --------------------------------------------------------------------------

type Implementation string

const (
	ImplMemory Implementation = "memory"
	ImplFile   Implementation = "file"
)

// Feature represents backend capabilities as bit flags
type Feature uint64

const (
	FeatureGet    Feature = 1 << iota // Support for Get operations
	FeatureSet                        // Support for Set operations
	FeatureDelete                     // Support for Delete operations
	FeatureKeys                       // Support for Keys enumeration
)

func (f Feature) String() string {
	switch f {
	case FeatureGet:
		return "Get"
	case FeatureSet:
		return "Set"
	case FeatureDelete:
		return "Delete"
	case FeatureKeys:
		return "Keys"
	default:
		return "Unknown"
	}
}

// BackendInfo describes a backend implementation and its limits.
type BackendInfo struct {
	Type              Implementation `json:"type"`
	MaxEntryLen       int            `json:"max_entry_len"`
	NumEntries        int            `json:"num_entries"`
	SupportedFeatures []Feature      `json:"supported_features"`
}

// --------------------------------------------------------------------------
// Backend Interface
// --------------------------------------------------------------------------

// DefaultMaxEntryLen is the per-entry value size ceiling backends enforce by
// default. It matches the string length limit of the host property store.
const DefaultMaxEntryLen = 32767

// IBackend defines the contract for a primitive property store: a flat
// string-to-string map with a per-entry value size ceiling. It is the only
// boundary the database layer has; anything that satisfies this interface
// (in-memory, file-backed, or a real host property store) can carry a
// database.
//
// Implementations can vary in their feature support, which can be queried
// with SupportsFeature.
type IBackend interface {

	// Get retrieves the value for an exact key.
	// The boolean return value indicates whether a value for the key was found.
	Get(key string) (value string, loaded bool, err error)

	// Set inserts or updates the entry for the given key.
	// Values longer than the backend's per-entry ceiling are rejected with an error.
	Set(key string, value string) (err error)

	// Delete removes the entry for the given key. Deleting an absent key is a no-op.
	Delete(key string) (err error)

	// Keys returns all keys currently present in the backend, in no particular
	// order. Only available if the backend supports FeatureKeys.
	Keys() (keys []string, err error)

	// SupportsFeature checks if the backend implementation supports the specified
	// feature. Multiple features can be checked at once using the bitwise OR (|)
	// operator.
	SupportsFeature(feature Feature) (ok bool)

	// GetInfo returns information about the backend.
	GetInfo() (info BackendInfo)

	// Close releases any resources held by the backend.
	Close() (err error)
}
