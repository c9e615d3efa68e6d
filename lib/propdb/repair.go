package propdb

import (
	"strings"

	"github.com/MRUIAW/ReplayCraft/lib/backend"
)

// Repair reconciles the pointer list with the entries actually present in the
// backend. Multi-step writes are not atomic, so an interrupted process can
// leave a pointer without a stored entry, or stored entries and chunk parts
// no pointer refers to. Repair removes both kinds of leftovers.
func (d *dbImpl[V]) Repair() (int, error) {
	pointers, err := d.pointers.load()
	if err != nil {
		return 0, err
	}

	removed := 0

	// pass 1: drop pointers whose base entry is gone
	live := make([]string, 0, len(pointers))
	for _, entryKey := range pointers {
		_, loaded, err := d.backend.Get(entryKey)
		if err != nil {
			return removed, err
		}
		if !loaded {
			removed++
			continue
		}
		live = append(live, entryKey)
	}
	if len(live) != len(pointers) {
		if err := d.pointers.save(live); err != nil {
			return removed, err
		}
	}

	// pass 2: delete entries under this database's prefix that no live
	// pointer accounts for (requires key enumeration)
	if !d.backend.SupportsFeature(backend.FeatureKeys) {
		return removed, nil
	}

	expected := map[string]struct{}{
		d.pointers.indexKey: {},
	}
	for _, entryKey := range live {
		expected[entryKey] = struct{}{}

		n, err := d.chunks.chunkCount(entryKey)
		if err != nil {
			return removed, err
		}
		for i := 0; i < n; i++ {
			expected[partKey(entryKey, i)] = struct{}{}
		}
	}

	keys, err := d.backend.Keys()
	if err != nil {
		return removed, err
	}

	prefix := d.name + "/"
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if _, ok := expected[key]; ok {
			continue
		}
		if err := d.backend.Delete(key); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}
