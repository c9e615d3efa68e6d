package membackend

import (
	"fmt"

	"github.com/MRUIAW/ReplayCraft/lib/backend"
	"github.com/puzpuzpuz/xsync/v3"
)

// supported features of this implementation
const features = backend.FeatureGet |
	backend.FeatureSet |
	backend.FeatureDelete |
	backend.FeatureKeys

// memBackendImpl implements backend.IBackend with a concurrent in-memory map
type memBackendImpl struct {
	entries     *xsync.MapOf[string, string]
	maxEntryLen int
}

// Options configures the memory backend during initialization
type Options struct {
	MaxEntryLen int // Per-entry value size ceiling (0 = use default)
}

// DefaultOptions returns the default memory backend options
func DefaultOptions() *Options {
	return &Options{
		MaxEntryLen: backend.DefaultMaxEntryLen,
	}
}

// NewMemoryBackend creates a new in-memory backend instance with the
// specified options (optional).
func NewMemoryBackend(opts *Options) backend.IBackend {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.MaxEntryLen <= 0 {
		opts.MaxEntryLen = backend.DefaultMaxEntryLen
	}

	return &memBackendImpl{
		entries:     xsync.NewMapOf[string, string](),
		maxEntryLen: opts.MaxEntryLen,
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see backend/interface.go)
// --------------------------------------------------------------------------

func (b *memBackendImpl) Get(key string) (string, bool, error) {
	value, loaded := b.entries.Load(key)
	return value, loaded, nil
}

func (b *memBackendImpl) Set(key string, value string) error {
	if len(value) > b.maxEntryLen {
		return fmt.Errorf("entry for key %q exceeds size ceiling (%d > %d)", key, len(value), b.maxEntryLen)
	}
	b.entries.Store(key, value)
	return nil
}

func (b *memBackendImpl) Delete(key string) error {
	b.entries.Delete(key)
	return nil
}

func (b *memBackendImpl) Keys() ([]string, error) {
	keys := make([]string, 0, b.entries.Size())
	b.entries.Range(func(key string, _ string) bool {
		keys = append(keys, key)
		return true
	})
	return keys, nil
}

func (b *memBackendImpl) SupportsFeature(feature backend.Feature) bool {
	return features&feature == feature
}

func (b *memBackendImpl) GetInfo() backend.BackendInfo {
	return backend.BackendInfo{
		Type:        backend.ImplMemory,
		MaxEntryLen: b.maxEntryLen,
		NumEntries:  b.entries.Size(),
		SupportedFeatures: []backend.Feature{
			backend.FeatureGet,
			backend.FeatureSet,
			backend.FeatureDelete,
			backend.FeatureKeys,
		},
	}
}

func (b *memBackendImpl) Close() error {
	return nil
}
