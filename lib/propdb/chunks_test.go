package propdb

import (
	"strings"
	"testing"

	"github.com/MRUIAW/ReplayCraft/lib/backend/membackend"
)

func newChunkStore(maxChunkSize int) *chunkedStore {
	return &chunkedStore{
		backend:      membackend.NewMemoryBackend(nil),
		maxChunkSize: maxChunkSize,
	}
}

func TestIsChunkCount(t *testing.T) {
	valid := []string{"0", "1", "42", "007", "123456789"}
	for _, meta := range valid {
		if !isChunkCount(meta) {
			t.Errorf("Expected %q to be a chunk count", meta)
		}
	}

	invalid := []string{"", "1a", "a1", "-1", "1.5", " 1", "1 ", "{}", "x"}
	for _, meta := range invalid {
		if isChunkCount(meta) {
			t.Errorf("Expected %q not to be a chunk count", meta)
		}
	}
}

func TestChunkWriteDirect(t *testing.T) {
	c := newChunkStore(10)

	if err := c.write("db/k", "short"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// stored verbatim, no parts
	value, loaded, _ := c.backend.Get("db/k")
	if !loaded || value != "short" {
		t.Errorf("Expected direct entry \"short\", got (%q, %v)", value, loaded)
	}
	if _, loaded, _ := c.backend.Get("db/k_part0"); loaded {
		t.Errorf("Expected no chunk parts for a direct value")
	}

	text, loaded, err := c.read("db/k")
	if err != nil || !loaded || text != "short" {
		t.Errorf("Expected to read back \"short\", got (%q, %v, %v)", text, loaded, err)
	}
}

func TestChunkWriteSplit(t *testing.T) {
	c := newChunkStore(4)

	if err := c.write("db/k", "abcdefghij"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	meta, _, _ := c.backend.Get("db/k")
	if meta != "3" {
		t.Errorf("Expected chunk count \"3\", got %q", meta)
	}

	for i, want := range []string{"abcd", "efgh", "ij"} {
		part, loaded, _ := c.backend.Get(partKey("db/k", i))
		if !loaded || part != want {
			t.Errorf("Expected part %d to be %q, got (%q, %v)", i, want, part, loaded)
		}
	}

	text, loaded, err := c.read("db/k")
	if err != nil || !loaded || text != "abcdefghij" {
		t.Errorf("Expected reassembled text, got (%q, %v, %v)", text, loaded, err)
	}
}

func TestChunkBoundaryExact(t *testing.T) {
	c := newChunkStore(4)

	// exactly the chunk size stays direct
	if err := c.write("db/k", "abcd"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	value, _, _ := c.backend.Get("db/k")
	if value != "abcd" {
		t.Errorf("Expected value at chunk size to stay direct, got %q", value)
	}

	// one over splits into two
	if err := c.write("db/k2", "abcde"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	meta, _, _ := c.backend.Get("db/k2")
	if meta != "2" {
		t.Errorf("Expected chunk count \"2\", got %q", meta)
	}
}

func TestChunkReadAbsent(t *testing.T) {
	c := newChunkStore(4)

	_, loaded, err := c.read("db/missing")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if loaded {
		t.Errorf("Expected absent entry to return loaded=false")
	}
}

func TestChunkReadMissingPart(t *testing.T) {
	c := newChunkStore(4)

	// chunk count claims 2 parts, only one present
	if err := c.backend.Set("db/k", "2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := c.backend.Set(partKey("db/k", 0), "abcd"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// missing parts contribute empty text, not an error
	text, loaded, err := c.read("db/k")
	if err != nil || !loaded {
		t.Fatalf("read failed: (%v, %v)", loaded, err)
	}
	if text != "abcd" {
		t.Errorf("Expected %q, got %q", "abcd", text)
	}
}

func TestChunkErase(t *testing.T) {
	c := newChunkStore(4)

	if err := c.write("db/k", strings.Repeat("a", 20)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := c.erase("db/k"); err != nil {
		t.Fatalf("erase failed: %v", err)
	}

	keys, _ := c.backend.Keys()
	if len(keys) != 0 {
		t.Errorf("Expected backend to be empty after erase, got %v", keys)
	}

	// erasing an absent entry is a no-op
	if err := c.erase("db/missing"); err != nil {
		t.Errorf("erase of absent entry should not fail, got %v", err)
	}
}

func TestChunkEmptyText(t *testing.T) {
	c := newChunkStore(4)

	if err := c.write("db/k", ""); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	text, loaded, err := c.read("db/k")
	if err != nil || !loaded {
		t.Fatalf("read failed: (%v, %v)", loaded, err)
	}
	if text != "" {
		t.Errorf("Expected empty text, got %q", text)
	}
}
