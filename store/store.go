package store

import (
	"context"
	"iter"
)

// Info is the parsed INFO reply of the store. Numeric fields are int64 or
// float64, everything else is a string, and composite fields such as
// keyspace lines are nested Info values.
type Info map[string]any

// Client is the set of store commands the gateway relies on.
// Implementations must be safe for concurrent use.
type Client interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Exists(ctx context.Context, key string) (bool, error)
	// Delete returns the number of removed entries.
	Delete(ctx context.Context, key string) (int64, error)
	DBSize(ctx context.Context) (int64, error)
	// Scan lazily walks the keys matching a glob pattern. Every range over
	// the returned sequence starts a fresh cursor. A failure is yielded once
	// as the final element.
	Scan(ctx context.Context, pattern string) iter.Seq2[string, error]
	// Info returns the store diagnostics, optionally limited to a section.
	Info(ctx context.Context, section string) (Info, error)
	// SetMany submits all writes in a single round trip.
	SetMany(ctx context.Context, entries map[string]string) error
	Close() error
}
