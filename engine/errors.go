package engine

import "errors"

var (
	// ErrInvalidFormat is returned for keys or values that are not 32 hex characters
	ErrInvalidFormat = errors.New("invalid hex format")

	// ErrEmptyPayload is returned for a bulk write without entries
	ErrEmptyPayload = errors.New("empty payload")

	// ErrNotFound is returned when the store holds no value for the key
	ErrNotFound = errors.New("key not found")

	// ErrDeleteMismatch is returned when a key seen by the existence check
	// was gone by the time it was deleted.
	ErrDeleteMismatch = errors.New("delete mismatch")

	// ErrStoreUnavailable wraps every transport failure or timeout of the store
	ErrStoreUnavailable = errors.New("store unavailable")
)
