// Package serializer provides pluggable text codecs for the values stored in
// a database. The primitive property store only holds string entries, so
// every codec encodes to and from plain text.
//
// Three implementations are provided:
//   - JSON (NewJSONSerializer): human-readable, the default for structured values
//   - GOB (NewGOBSerializer): Go's binary gob format, base64-framed as text
//   - Raw (NewRawSerializer): identity codec for callers whose values are
//     already strings
//
// The interface is generic over the value type, making the serializable-value
// boundary of a database explicit: a database of V can only store what its
// ISerializer[V] can encode.
package serializer
