package filebackend

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MRUIAW/ReplayCraft/lib/backend"
	"github.com/lni/dragonboat/v4/logger"
)

var log = logger.GetLogger("backend")

// supported features of this implementation
const features = backend.FeatureGet |
	backend.FeatureSet |
	backend.FeatureDelete |
	backend.FeatureKeys

// fileBackendImpl implements backend.IBackend on top of a single JSON file
// holding the whole property map. Every mutation rewrites the file through a
// temp-file-and-rename sequence so a crash never leaves a half-written store.
type fileBackendImpl struct {
	mu          sync.Mutex
	path        string
	entries     map[string]string
	maxEntryLen int
}

// Options configures the file backend during initialization
type Options struct {
	MaxEntryLen int // Per-entry value size ceiling (0 = use default)
}

// DefaultOptions returns the default file backend options
func DefaultOptions() *Options {
	return &Options{
		MaxEntryLen: backend.DefaultMaxEntryLen,
	}
}

// NewFileBackend creates a backend persisted to the JSON file at path,
// loading any existing contents. The options parameter is optional.
func NewFileBackend(path string, opts *Options) (backend.IBackend, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.MaxEntryLen <= 0 {
		opts.MaxEntryLen = backend.DefaultMaxEntryLen
	}

	b := &fileBackendImpl{
		path:        path,
		entries:     make(map[string]string),
		maxEntryLen: opts.MaxEntryLen,
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fresh store, nothing to load
	case err != nil:
		return nil, fmt.Errorf("reading store file %s: %w", path, err)
	default:
		if err := json.Unmarshal(data, &b.entries); err != nil {
			return nil, fmt.Errorf("parsing store file %s: %w", path, err)
		}
		log.Infof("loaded %d entries from %s", len(b.entries), path)
	}

	return b, nil
}

// persist writes the current map to disk. Callers must hold b.mu.
func (b *fileBackendImpl) persist() error {
	data, err := json.MarshalIndent(b.entries, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(b.path), ".replaycraft-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see backend/interface.go)
// --------------------------------------------------------------------------

func (b *fileBackendImpl) Get(key string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	value, loaded := b.entries[key]
	return value, loaded, nil
}

func (b *fileBackendImpl) Set(key string, value string) error {
	if len(value) > b.maxEntryLen {
		return fmt.Errorf("entry for key %q exceeds size ceiling (%d > %d)", key, len(value), b.maxEntryLen)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	old, existed := b.entries[key]
	b.entries[key] = value
	if err := b.persist(); err != nil {
		// roll back the in-memory state so map and file stay in sync
		if existed {
			b.entries[key] = old
		} else {
			delete(b.entries, key)
		}
		return err
	}
	return nil
}

func (b *fileBackendImpl) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	old, existed := b.entries[key]
	if !existed {
		return nil
	}
	delete(b.entries, key)
	if err := b.persist(); err != nil {
		b.entries[key] = old
		return err
	}
	return nil
}

func (b *fileBackendImpl) Keys() ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	keys := make([]string, 0, len(b.entries))
	for key := range b.entries {
		keys = append(keys, key)
	}
	return keys, nil
}

func (b *fileBackendImpl) SupportsFeature(feature backend.Feature) bool {
	return features&feature == feature
}

func (b *fileBackendImpl) GetInfo() backend.BackendInfo {
	b.mu.Lock()
	defer b.mu.Unlock()

	return backend.BackendInfo{
		Type:        backend.ImplFile,
		MaxEntryLen: b.maxEntryLen,
		NumEntries:  len(b.entries),
		SupportedFeatures: []backend.Feature{
			backend.FeatureGet,
			backend.FeatureSet,
			backend.FeatureDelete,
			backend.FeatureKeys,
		},
	}
}

func (b *fileBackendImpl) Close() error {
	return nil
}
