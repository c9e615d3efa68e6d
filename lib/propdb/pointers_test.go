package propdb

import (
	"reflect"
	"testing"

	"github.com/MRUIAW/ReplayCraft/lib/backend"
	"github.com/MRUIAW/ReplayCraft/lib/backend/membackend"
)

func newPointerIndex() (*pointerIndex, backend.IBackend) {
	b := membackend.NewMemoryBackend(nil)
	return &pointerIndex{indexKey: "db/pointers", backend: b}, b
}

func TestPointerLoadAbsent(t *testing.T) {
	p, _ := newPointerIndex()

	pointers, err := p.load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(pointers) != 0 {
		t.Errorf("Expected empty list for absent index, got %v", pointers)
	}
}

func TestPointerLoadUnparseable(t *testing.T) {
	p, b := newPointerIndex()

	if err := b.Set("db/pointers", "###"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	pointers, err := p.load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(pointers) != 0 {
		t.Errorf("Expected unparseable index to count as empty, got %v", pointers)
	}
}

func TestPointerSaveLoad(t *testing.T) {
	p, b := newPointerIndex()

	want := []string{"db/a", "db/b", "db/c"}
	if err := p.save(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// persisted as a JSON array
	text, loaded, _ := b.Get("db/pointers")
	if !loaded || text != `["db/a","db/b","db/c"]` {
		t.Errorf("Unexpected persisted index: (%q, %v)", text, loaded)
	}

	pointers, err := p.load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(pointers, want) {
		t.Errorf("Expected %v, got %v", want, pointers)
	}
}

func TestPointerAddDedup(t *testing.T) {
	p, _ := newPointerIndex()

	for i := 0; i < 3; i++ {
		if err := p.add("db/k"); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	if err := p.add("db/other"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	pointers, _ := p.load()
	if !reflect.DeepEqual(pointers, []string{"db/k", "db/other"}) {
		t.Errorf("Expected deduplicated ordered list, got %v", pointers)
	}
}

func TestPointerRemove(t *testing.T) {
	p, _ := newPointerIndex()

	if err := p.save([]string{"db/a", "db/b", "db/a"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// removes all occurrences
	if err := p.remove("db/a"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	pointers, _ := p.load()
	if !reflect.DeepEqual(pointers, []string{"db/b"}) {
		t.Errorf("Expected [db/b], got %v", pointers)
	}

	// removing an absent key changes nothing
	if err := p.remove("db/missing"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	pointers, _ = p.load()
	if !reflect.DeepEqual(pointers, []string{"db/b"}) {
		t.Errorf("Expected [db/b], got %v", pointers)
	}
}

func TestPointerCacheIsAuthoritative(t *testing.T) {
	p, b := newPointerIndex()

	if err := p.save([]string{"db/a"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// a write behind the cache is not observed by this instance
	if err := b.Set("db/pointers", `["db/other"]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	pointers, err := p.load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(pointers, []string{"db/a"}) {
		t.Errorf("Expected cached view [db/a], got %v", pointers)
	}
}
