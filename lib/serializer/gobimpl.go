package serializer

import (
	"bytes"
	"encoding/base64"
	"encoding/gob"
	"strings"
)

// NewGOBSerializer creates a new serializer using Go's binary gob format.
// The gob bytes are base64-encoded since stored entries must be text.
func NewGOBSerializer[V any]() ISerializer[V] {
	return gobSerializerImpl[V]{}
}

// gobSerializerImpl implements the ISerializer interface using gob encoding
type gobSerializerImpl[V any] struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (g gobSerializerImpl[V]) Serialize(value V) (string, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (g gobSerializerImpl[V]) Deserialize(text string, value *V) error {
	dec := gob.NewDecoder(base64.NewDecoder(base64.StdEncoding, strings.NewReader(text)))
	return dec.Decode(value)
}
