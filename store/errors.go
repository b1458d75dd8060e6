package store

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned when the store holds no value for a key
	ErrKeyNotFound = errors.New("key not found")

	// ErrClosed is returned by a client used after Close
	ErrClosed = errors.New("store is closed")
)

// Error is the single failure kind of the store transport. Connection
// refusal, timeouts and protocol errors all surface as *Error.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
