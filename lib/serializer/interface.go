package serializer

// ISerializer is the interface for all value serializers. Values are encoded
// to plain text because the primitive property store only holds string
// entries.
type ISerializer[V any] interface {
	// Serialize serializes a value into its text representation
	// It returns the serialized text and an error if any
	Serialize(value V) (string, error)
	// Deserialize deserializes a text representation into a value
	// It takes the text and a pointer to a value as parameters
	// It returns an error if any
	Deserialize(text string, value *V) error
}
