package testing

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/MRUIAW/ReplayCraft/lib/backend"
)

// BackendFactory is a function that creates a new instance of an IBackend implementation
type BackendFactory func() backend.IBackend

// RunBackendTests runs a conformance test suite for an IBackend implementation.
func RunBackendTests(t *testing.T, name string, factory BackendFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Set&Get", func(t *testing.T) {
			testSetGet(t, factory())
		})

		t.Run("Delete", func(t *testing.T) {
			testDelete(t, factory())
		})

		t.Run("Keys", func(t *testing.T) {
			testKeys(t, factory())
		})

		t.Run("SizeCeiling", func(t *testing.T) {
			testSizeCeiling(t, factory())
		})

		t.Run("EdgeCases", func(t *testing.T) {
			testEdgeCases(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// Checks if the backend supports the specified feature
// Skip the test if it is not supported
func requireFeature(t testing.TB, b backend.IBackend, feature backend.Feature) {
	if !b.SupportsFeature(feature) {
		t.Skip()
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testSetGet(t *testing.T, b backend.IBackend) {
	defer b.Close()

	requireFeature(t, b, backend.FeatureSet|backend.FeatureGet)

	testKey := "test-key"
	testValue1 := "test-value1"
	testValue2 := "test-value2"

	if err := b.Set(testKey, testValue1); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	result, exists, err := b.Get(testKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !exists {
		t.Errorf("Expected key %s to exist after Set", testKey)
	}
	if result != testValue1 {
		t.Errorf("Expected value %s, got %s", testValue1, result)
	}

	if err := b.Set(testKey, testValue2); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	result, exists, err = b.Get(testKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !exists {
		t.Errorf("Expected key %s to exist after Set", testKey)
	}
	if result != testValue2 {
		t.Errorf("Expected value %s, got %s", testValue2, result)
	}

	_, exists, err = b.Get("nonexistent-key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if exists {
		t.Errorf("Expected nonexistent key to return exists=false")
	}
}

func testDelete(t *testing.T, b backend.IBackend) {
	defer b.Close()

	requireFeature(t, b, backend.FeatureSet|backend.FeatureGet|backend.FeatureDelete)

	testKey := "delete-key"

	if err := b.Set(testKey, "value"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := b.Delete(testKey); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, exists, err := b.Get(testKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if exists {
		t.Errorf("Expected key %s to be gone after Delete", testKey)
	}

	// deleting an absent key is a no-op
	if err := b.Delete("never-existed"); err != nil {
		t.Errorf("Delete of absent key should not fail, got: %v", err)
	}
}

func testKeys(t *testing.T, b backend.IBackend) {
	defer b.Close()

	requireFeature(t, b, backend.FeatureSet|backend.FeatureKeys)

	want := []string{"a", "b", "c"}
	for _, key := range want {
		if err := b.Set(key, "v-"+key); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	keys, err := b.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}

	sort.Strings(keys)
	if fmt.Sprint(keys) != fmt.Sprint(want) {
		t.Errorf("Expected keys %v, got %v", want, keys)
	}
}

func testSizeCeiling(t *testing.T, b backend.IBackend) {
	defer b.Close()

	requireFeature(t, b, backend.FeatureSet|backend.FeatureGet)

	max := b.GetInfo().MaxEntryLen
	if max <= 0 {
		t.Skip()
	}

	// a value of exactly the ceiling must be accepted
	if err := b.Set("at-limit", strings.Repeat("x", max)); err != nil {
		t.Errorf("Set at size ceiling should succeed, got: %v", err)
	}

	// one byte over must be rejected and leave no entry behind
	if err := b.Set("over-limit", strings.Repeat("x", max+1)); err == nil {
		t.Errorf("Set over size ceiling should fail")
	}
	_, exists, err := b.Get("over-limit")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if exists {
		t.Errorf("Rejected Set must not leave an entry behind")
	}
}

func testEdgeCases(t *testing.T, b backend.IBackend) {
	defer b.Close()

	requireFeature(t, b, backend.FeatureSet|backend.FeatureGet)

	// empty value is a valid, present entry
	if err := b.Set("empty", ""); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, exists, err := b.Get("empty")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !exists {
		t.Errorf("Expected empty value to be a present entry")
	}
	if value != "" {
		t.Errorf("Expected empty value, got %q", value)
	}

	// keys with separator characters are opaque to the backend
	weird := "db/key_part0"
	if err := b.Set(weird, "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, exists, err = b.Get(weird)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !exists || value != "v" {
		t.Errorf("Expected key %q to round-trip, got (%q, %v)", weird, value, exists)
	}
}
