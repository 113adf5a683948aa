// Package storage persists generated alert bulletins, either on the
// local filesystem or in a GCS bucket.
package storage

import (
	"context"
	"time"
)

// Store is the persistence interface for bulletin artifacts.
type Store interface {
	// Close releases the underlying client.
	Close() error

	// Put stores one artifact under the bulletin folder for the timestamp.
	Put(ctx context.Context, data []byte, filename string, timestamp time.Time) error

	// Get retrieves an artifact by its full path.
	Get(ctx context.Context, path string) ([]byte, error)

	// List returns recent bulletin paths, newest first.
	List(ctx context.Context, limit int) ([]string, error)
}
