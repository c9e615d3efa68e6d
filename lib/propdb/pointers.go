package propdb

import (
	"encoding/json"

	"github.com/MRUIAW/ReplayCraft/lib/backend"
)

// pointerIndex maintains the ordered, deduplicated list of live entry-keys of
// one database. The list is persisted as a JSON array under the database's
// index key and mirrored by an in-memory cache for the lifetime of the owning
// database instance.
type pointerIndex struct {
	indexKey string
	backend  backend.IBackend
	cached   []string // nil = not loaded yet
}

// load returns the cached pointer list, reading and parsing it from the
// backend on first use. An absent or unparseable index entry yields an empty
// list.
func (p *pointerIndex) load() ([]string, error) {
	if p.cached != nil {
		return p.cached, nil
	}

	text, loaded, err := p.backend.Get(p.indexKey)
	if err != nil {
		return nil, err
	}

	pointers := []string{}
	if loaded {
		if err := json.Unmarshal([]byte(text), &pointers); err != nil {
			// unreadable index data counts as empty, it will be rewritten
			// on the next save
			pointers = []string{}
		}
	}

	p.cached = pointers
	return p.cached, nil
}

// save persists the given pointer list and refreshes the cache
// unconditionally (write-through).
func (p *pointerIndex) save(pointers []string) error {
	if pointers == nil {
		pointers = []string{}
	}

	data, err := json.Marshal(pointers)
	if err != nil {
		return err
	}
	if err := p.backend.Set(p.indexKey, string(data)); err != nil {
		return err
	}

	p.cached = pointers
	return nil
}

// add appends the entry-key to the list and persists it. Adding a key that is
// already present is a no-op, keeping the list free of duplicates.
func (p *pointerIndex) add(entryKey string) error {
	pointers, err := p.load()
	if err != nil {
		return err
	}

	for _, ptr := range pointers {
		if ptr == entryKey {
			return nil
		}
	}

	return p.save(append(pointers, entryKey))
}

// remove deletes all occurrences of the entry-key and persists the list if it
// changed.
func (p *pointerIndex) remove(entryKey string) error {
	pointers, err := p.load()
	if err != nil {
		return err
	}

	remaining := make([]string, 0, len(pointers))
	for _, ptr := range pointers {
		if ptr != entryKey {
			remaining = append(remaining, ptr)
		}
	}

	if len(remaining) == len(pointers) {
		return nil
	}
	return p.save(remaining)
}

// contains reports whether the entry-key is in the pointer list.
func (p *pointerIndex) contains(entryKey string) (bool, error) {
	pointers, err := p.load()
	if err != nil {
		return false, err
	}
	for _, ptr := range pointers {
		if ptr == entryKey {
			return true, nil
		}
	}
	return false, nil
}
