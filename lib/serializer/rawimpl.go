package serializer

// NewRawSerializer creates a serializer that stores string values verbatim,
// without any encoding. Useful for callers (like the CLI) whose values are
// already text.
//
// Note that a raw string consisting only of decimal digits collides with the
// chunk-count marker of the persisted format; prefer the JSON serializer when
// such values can occur.
func NewRawSerializer() ISerializer[string] {
	return rawSerializerImpl{}
}

// rawSerializerImpl implements the ISerializer interface as the identity codec
type rawSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (r rawSerializerImpl) Serialize(value string) (string, error) {
	return value, nil
}

func (r rawSerializerImpl) Deserialize(text string, value *string) error {
	*value = text
	return nil
}
