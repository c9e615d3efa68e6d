package propdb

import (
	"fmt"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// Entry is one key-value pair of a database.
type Entry[V any] struct {
	Key   string
	Value V
}

// IDatabase is the generic interface for a named database persisted in a
// primitive property store. Values of type V are serialized to text and split
// into chunks transparently when they exceed the configured chunk size.
//
// All operations are synchronous and run to completion; the component assumes
// a single logical owner per backend (see the package documentation).
type IDatabase[V any] interface {
	// Name returns the database name.
	Name() string
	// Set inserts or updates a key-value pair.
	// The returned boolean indicates whether the key existed before the call.
	Set(key string, value V) (existed bool, err error)
	// Get returns the value for a key. The boolean return value indicates
	// whether a value for the key was found; an absent key is not an error.
	Get(key string) (value V, loaded bool, err error)
	// Has returns whether a key exists in the database without reading its value.
	Has(key string) (loaded bool, err error)
	// Delete removes a key-value pair including all of its chunk parts.
	// Deleting an absent key is a no-op.
	Delete(key string) (err error)
	// Clear removes every key-value pair of this database.
	Clear() (err error)
	// Entries returns all key-value pairs of this database in insertion order.
	Entries() (entries []Entry[V], err error)
	// Repair reconciles the pointer list against the entries actually present
	// in the backend, dropping dangling pointers and deleting orphaned
	// entries. It returns the number of removed items. Orphan deletion
	// requires backend.FeatureKeys.
	Repair() (removed int, err error)
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
}

// Error implements the error interface.
func (e *Error) Error() string {
	errorCode := ""
	switch e.Code {
	case RetCInternalError:
		errorCode = "InternalError"
	case RetCInvalidName:
		errorCode = "InvalidName"
	case RetCSerializationError:
		errorCode = "SerializationError"
	case RetCUnsupportedOperation:
		errorCode = "UnsupportedOperation"
	default:
		errorCode = "Unknown"
	}

	return fmt.Sprintf("DatabaseError (code %s): %s", errorCode, e.Msg)
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess              RetCode = iota // 0: Operation executed successfully.
	RetCInternalError                       // 1: Operation failed due to an internal error.
	RetCInvalidName                         // 2: Database name is empty or contains forbidden characters.
	RetCSerializationError                  // 3: A value could not be serialized or deserialized.
	RetCUnsupportedOperation                // 4: Operation is not supported by the underlying backend.
)
