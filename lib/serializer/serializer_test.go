package serializer

import (
	"reflect"
	"testing"
)

// testValue mirrors the kind of structured payloads callers persist
type testValue struct {
	Name   string
	Pos    position
	Frames []int
	Meta   map[string]string
}

type position struct {
	X, Y, Z float64
}

// testStructSerializers is a map of serializer name to factory function
var testStructSerializers = map[string]func() ISerializer[testValue]{
	"JSON": NewJSONSerializer[testValue],
	"GOB":  NewGOBSerializer[testValue],
}

// testValues creates a set of test values with different fields filled
func testValues() []testValue {
	return []testValue{
		// zero value
		{},

		// simple value
		{
			Name: "session-1",
			Pos:  position{X: 1, Y: 2, Z: 3},
		},

		// value with all fields filled
		{
			Name:   "session-2",
			Pos:    position{X: -12.5, Y: 64, Z: 1024.125},
			Frames: []int{0, 1, 2, 3, 5, 8, 13},
			Meta:   map[string]string{"dimension": "overworld", "owner": "steve"},
		},
	}
}

// TestSerializerRoundTrip tests that values can be serialized and deserialized correctly
func TestSerializerRoundTrip(t *testing.T) {
	values := testValues()

	for name, factory := range testStructSerializers {
		t.Run(name, func(t *testing.T) {
			s := factory()

			for i, value := range values {
				// Serialize
				text, err := s.Serialize(value)
				if err != nil {
					t.Errorf("Failed to serialize value %d: %v", i, err)
					continue
				}

				// Deserialize
				var result testValue
				err = s.Deserialize(text, &result)
				if err != nil {
					t.Errorf("Failed to deserialize value %d: %v", i, err)
					continue
				}

				// Compare
				if !valuesEqual(value, result) {
					t.Errorf("Value %d doesn't match after round trip:\nOriginal: %+v\nResult: %+v",
						i, value, result)
				}
			}
		})
	}
}

// valuesEqual compares two test values, treating nil and empty collections as equal
// (json round-trips nil slices/maps as nil, gob may too)
func valuesEqual(a, b testValue) bool {
	if a.Name != b.Name || a.Pos != b.Pos {
		return false
	}
	if len(a.Frames) != len(b.Frames) || len(a.Meta) != len(b.Meta) {
		return false
	}
	for i := range a.Frames {
		if a.Frames[i] != b.Frames[i] {
			return false
		}
	}
	for k, v := range a.Meta {
		if b.Meta[k] != v {
			return false
		}
	}
	return true
}

// TestSerializerMalformedInput tests that malformed text surfaces an error
func TestSerializerMalformedInput(t *testing.T) {
	for name, factory := range testStructSerializers {
		t.Run(name, func(t *testing.T) {
			s := factory()

			var result testValue
			if err := s.Deserialize("!!! definitely not valid !!!", &result); err == nil {
				t.Errorf("Expected error deserializing malformed input")
			}
		})
	}
}

// TestRawSerializer tests the identity codec for string values
func TestRawSerializer(t *testing.T) {
	s := NewRawSerializer()

	for _, value := range []string{"", "plain text", `{"x":1}`, "line\nbreaks\tand tabs"} {
		text, err := s.Serialize(value)
		if err != nil {
			t.Fatalf("Failed to serialize %q: %v", value, err)
		}
		if text != value {
			t.Errorf("Raw serializer must be the identity, got %q for %q", text, value)
		}

		var result string
		if err := s.Deserialize(text, &result); err != nil {
			t.Fatalf("Failed to deserialize %q: %v", text, err)
		}
		if result != value {
			t.Errorf("Expected %q after round trip, got %q", value, result)
		}
	}
}

// TestJSONSerializerPrimitive tests json with a primitive value type
func TestJSONSerializerPrimitive(t *testing.T) {
	s := NewJSONSerializer[map[string]float64]()

	value := map[string]float64{"x": 1, "y": 2, "z": 3}
	text, err := s.Serialize(value)
	if err != nil {
		t.Fatalf("Failed to serialize: %v", err)
	}

	var result map[string]float64
	if err := s.Deserialize(text, &result); err != nil {
		t.Fatalf("Failed to deserialize: %v", err)
	}
	if !reflect.DeepEqual(value, result) {
		t.Errorf("Value doesn't match after round trip:\nOriginal: %+v\nResult: %+v", value, result)
	}
}
