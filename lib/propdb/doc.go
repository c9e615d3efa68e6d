// Package propdb implements a small embedded key-value database on top of a
// primitive property store that only holds scalar string values under a
// per-entry size ceiling. Callers persist arbitrarily large, structured
// values under string keys; the database serializes them to text, splits
// oversized texts into bounded chunks transparently, and reassembles them on
// read. A live index of all keys belonging to one named database is
// maintained alongside the data.
//
// The package focuses on:
//   - A generic facade (IDatabase) with Set/Get/Has/Delete/Clear/Entries/Repair
//   - Pluggable value encoding through serializer.ISerializer
//   - An injected backend.IBackend so any primitive store can carry a database
//
// Persisted Layout:
//
//	For a database named <name>, the backend holds:
//
//	  "<name>/pointers"       JSON array of the entry-keys of all live keys,
//	                          in insertion order, without duplicates
//	  "<name>/<key>"          the serialized value, or, when the value was
//	                          chunked, the decimal chunk count
//	  "<name>/<key>_part<i>"  chunk i of the serialized value, present only
//	                          when the base entry holds a chunk count
//
//	A base entry consisting only of decimal digits is interpreted as a chunk
//	count. A direct value of the same shape is therefore misread on load;
//	this is an inherited limitation of the persisted format. The JSON and GOB
//	serializers never produce bare digit strings for structured values, and
//	the raw serializer documents the hazard.
//
// Consistency Model:
//
//	Operations execute synchronously and run to completion; there is no
//	internal locking and no mutual exclusion between multiple database
//	instances sharing a backend. The component assumes a single logical owner
//	per backend: each instance caches its pointer list for its own lifetime
//	and refreshes the cache only through its own writes. Operations that
//	perform multiple backend writes (Set's delete-then-rewrite, Clear's bulk
//	erase) are not transactional. If the process dies between steps, the
//	pointer list can disagree with the stored entries; Repair reconciles the
//	two on demand.
//
// Error Handling:
//
//	Construction fails with an RetCInvalidName error for empty names or names
//	containing '"' or '/'. Failures of the underlying backend are propagated
//	to the caller unmodified and are never retried. Values that cannot be
//	decoded surface RetCSerializationError from Get and Entries; an absent
//	key is a regular result, not an error.
package propdb
