package serializer

import (
	"encoding/json"
)

// NewJSONSerializer creates a new serializer using json encoding
func NewJSONSerializer[V any]() ISerializer[V] {
	return jsonSerializerImpl[V]{}
}

// jsonSerializerImpl implements the ISerializer interface using json encoding
type jsonSerializerImpl[V any] struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl[V]) Serialize(value V) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (j jsonSerializerImpl[V]) Deserialize(text string, value *V) error {
	return json.Unmarshal([]byte(text), value)
}
