package propdb

import (
	"fmt"
	"strings"

	"github.com/MRUIAW/ReplayCraft/lib/backend"
	"github.com/MRUIAW/ReplayCraft/lib/serializer"
	"github.com/VictoriaMetrics/metrics"
)

// indexKeySuffix is appended to the database name to derive the key under
// which the pointer list is persisted.
const indexKeySuffix = "/pointers"

// dbImpl implements the IDatabase interface
type dbImpl[V any] struct {
	name       string
	backend    backend.IBackend
	serializer serializer.ISerializer[V]
	pointers   *pointerIndex
	chunks     *chunkedStore

	// operation counters
	setOps    *metrics.Counter
	getOps    *metrics.Counter
	deleteOps *metrics.Counter
}

// Options configures a database during initialization
type Options struct {
	MaxChunkSize int // Maximum length of a single stored chunk (0 = use default)
}

// DefaultOptions returns the default database options
func DefaultOptions() *Options {
	return &Options{
		MaxChunkSize: DefaultMaxChunkSize,
	}
}

// New creates a database with the given name on top of the given backend,
// initializing its pointer index in the backend if absent. Values are encoded
// with the given serializer.
//
// The name must be non-empty and must not contain '"' or '/'.
func New[V any](name string, b backend.IBackend, s serializer.ISerializer[V], opts *Options) (IDatabase[V], error) {
	if name == "" || strings.ContainsAny(name, `"/`) {
		return nil, NewError(RetCInvalidName, fmt.Sprintf("invalid database name %q: must be non-empty and must not contain '\"' or '/'", name))
	}

	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.MaxChunkSize <= 0 {
		opts.MaxChunkSize = DefaultMaxChunkSize
	}

	indexKey := name + indexKeySuffix
	d := &dbImpl[V]{
		name:       name,
		backend:    b,
		serializer: s,
		pointers:   &pointerIndex{indexKey: indexKey, backend: b},
		chunks:     &chunkedStore{backend: b, maxChunkSize: opts.MaxChunkSize},
		setOps:     opCounter(name, "set"),
		getOps:     opCounter(name, "get"),
		deleteOps:  opCounter(name, "delete"),
	}

	// make sure the pointer index exists in the backend
	_, loaded, err := b.Get(indexKey)
	if err != nil {
		return nil, err
	}
	if !loaded {
		if err := d.pointers.save([]string{}); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// opCounter returns the operation counter for one database and operation
func opCounter(name, op string) *metrics.Counter {
	return metrics.GetOrCreateCounter(fmt.Sprintf(`propdb_operations_total{database=%q,op=%q}`, name, op))
}

// entryKey derives the backend key for a logical key of this database.
func (d *dbImpl[V]) entryKey(key string) string {
	return d.name + "/" + key
}

// --------------------------------------------------------------------------
// Interface Methods (docu see propdb/interface.go)
// --------------------------------------------------------------------------

func (d *dbImpl[V]) Name() string {
	return d.name
}

func (d *dbImpl[V]) Set(key string, value V) (bool, error) {
	d.setOps.Inc()

	text, err := d.serializer.Serialize(value)
	if err != nil {
		return false, NewError(RetCSerializationError, fmt.Sprintf("serializing value for key %q: %v", key, err))
	}

	entryKey := d.entryKey(key)
	existed, err := d.pointers.contains(entryKey)
	if err != nil {
		return false, err
	}

	// delete first so an overwrite with fewer chunks leaves no stale parts
	if existed {
		if err := d.Delete(key); err != nil {
			return false, err
		}
	}

	if err := d.chunks.write(entryKey, text); err != nil {
		return existed, err
	}
	if err := d.pointers.add(entryKey); err != nil {
		return existed, err
	}
	return existed, nil
}

func (d *dbImpl[V]) Get(key string) (V, bool, error) {
	d.getOps.Inc()

	var value V

	text, loaded, err := d.chunks.read(d.entryKey(key))
	if err != nil {
		return value, false, err
	}
	if !loaded {
		return value, false, nil
	}

	if err := d.serializer.Deserialize(text, &value); err != nil {
		return value, false, NewError(RetCSerializationError, fmt.Sprintf("deserializing value for key %q: %v", key, err))
	}
	return value, true, nil
}

func (d *dbImpl[V]) Has(key string) (bool, error) {
	return d.pointers.contains(d.entryKey(key))
}

func (d *dbImpl[V]) Delete(key string) error {
	d.deleteOps.Inc()

	entryKey := d.entryKey(key)
	existed, err := d.pointers.contains(entryKey)
	if err != nil {
		return err
	}
	if !existed {
		return nil
	}

	if err := d.chunks.erase(entryKey); err != nil {
		return err
	}
	return d.pointers.remove(entryKey)
}

func (d *dbImpl[V]) Clear() error {
	pointers, err := d.pointers.load()
	if err != nil {
		return err
	}

	for _, entryKey := range pointers {
		if err := d.chunks.erase(entryKey); err != nil {
			return err
		}
	}
	return d.pointers.save([]string{})
}

func (d *dbImpl[V]) Entries() ([]Entry[V], error) {
	pointers, err := d.pointers.load()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry[V], 0, len(pointers))
	for _, entryKey := range pointers {
		key := entryKey[strings.LastIndex(entryKey, "/")+1:]

		value, loaded, err := d.Get(key)
		if err != nil {
			// fail the whole enumeration, a half-readable database should
			// be visible to the caller
			return nil, err
		}
		if !loaded {
			// dangling pointer, there is no pair to emit (see Repair)
			continue
		}
		entries = append(entries, Entry[V]{Key: key, Value: value})
	}
	return entries, nil
}
