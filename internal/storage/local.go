package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// LocalStore persists bulletins on the local filesystem.
type LocalStore struct {
	baseDir string
}

// NewLocalStore creates a local store rooted at baseDir.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// Close is a no-op for local storage.
func (l *LocalStore) Close() error {
	return nil
}

// Put writes one artifact into the bulletin folder for the timestamp.
func (l *LocalStore) Put(ctx context.Context, data []byte, filename string, timestamp time.Time) error {
	path := filepath.Join(l.baseDir, BulletinFolderPath(timestamp), filename)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// Get reads an artifact by its path relative to the base directory.
func (l *LocalStore) Get(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.baseDir, path))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// List walks the base directory for bulletins, newest first.
func (l *LocalStore) List(ctx context.Context, limit int) ([]string, error) {
	var paths []string
	err := filepath.Walk(l.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if info.Name() == bulletinIndexFile {
			rel, _ := filepath.Rel(l.baseDir, path)
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk bulletins directory: %w", err)
	}

	// Folder names encode the timestamp, so a reverse sort is newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
	if limit > 0 && limit < len(paths) {
		paths = paths[:limit]
	}
	return paths, nil
}
