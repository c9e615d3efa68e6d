package filebackend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MRUIAW/ReplayCraft/lib/backend"
	backendtesting "github.com/MRUIAW/ReplayCraft/lib/backend/testing"
)

func TestFileBackend(t *testing.T) {
	backendtesting.RunBackendTests(t, "FileBackend", func() backend.IBackend {
		b, err := NewFileBackend(filepath.Join(t.TempDir(), "store.json"), nil)
		if err != nil {
			t.Fatalf("NewFileBackend failed: %v", err)
		}
		return b
	})
}

func TestFileBackendPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	b, err := NewFileBackend(path, nil)
	if err != nil {
		t.Fatalf("NewFileBackend failed: %v", err)
	}
	if err := b.Set("k1", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := b.Set("k2", "v2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := b.Delete("k2"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// reopen and verify the surviving state
	reopened, err := NewFileBackend(path, nil)
	if err != nil {
		t.Fatalf("NewFileBackend (reopen) failed: %v", err)
	}
	defer reopened.Close()

	value, exists, err := reopened.Get("k1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !exists || value != "v1" {
		t.Errorf("Expected k1=v1 after reopen, got (%q, %v)", value, exists)
	}

	_, exists, err = reopened.Get("k2")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if exists {
		t.Errorf("Expected deleted key k2 to stay gone after reopen")
	}
}

func TestFileBackendCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("not json{"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := NewFileBackend(path, nil); err == nil {
		t.Errorf("Expected error when opening a corrupt store file")
	}
}
