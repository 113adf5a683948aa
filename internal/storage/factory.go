package storage

import (
	"context"
	"fmt"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/config"
)

// NewStore creates the bulletin store for the configuration: a GCS store
// when a bucket is configured, the local filesystem store otherwise.
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.GCSBucket != "" {
		store, err := NewGCSStore(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS store: %w", err)
		}
		return store, nil
	}

	dir := cfg.LocalBulletinsDir
	if dir == "" {
		dir = "bulletins"
	}
	store, err := NewLocalStore(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local store: %w", err)
	}
	return store, nil
}
