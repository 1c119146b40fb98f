// Package metadata is a small key/value table in the local SQLite database.
package metadata

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("metadata: key not found")

type Repository interface {
	// Get returns ErrNotFound when key is absent.
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value in a single statement.
	Set(ctx context.Context, key, value string) error
	// Delete is idempotent.
	Delete(ctx context.Context, key string) error
}
