package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/config"
)

func TestBulletinFolderPath(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 5, 7, 0, time.UTC)
	got := BulletinFolderPath(ts)
	want := "2026/03/14/Bulletin-2026-03-14-09-05-07"
	if got != want {
		t.Errorf("BulletinFolderPath() = %q, want %q", got, want)
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"bulletin.md", "text/markdown"},
		{"bulletin.html", "text/html"},
		{"alert.json", "application/json"},
		{"notes.txt", "text/plain"},
		{"data.bin", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := ContentType(tt.filename); got != tt.want {
			t.Errorf("ContentType(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	content := []byte("# Environmental Bulletin\n\nAll clear.")

	if err := store.Put(ctx, content, "bulletin.md", ts); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	path := BulletinFolderPath(ts) + "/bulletin.md"
	got, err := store.Get(ctx, path)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("Get returned %q, want %q", got, content)
	}
}

func TestLocalStoreListNewestFirst(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	stamps := []time.Time{
		time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 13, 8, 0, 0, 0, time.UTC),
	}
	for _, ts := range stamps {
		if err := store.Put(ctx, []byte("bulletin"), "bulletin.md", ts); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		// The accompanying JSON artifact must not show up in listings.
		if err := store.Put(ctx, []byte("{}"), "alert.json", ts); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	paths, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 bulletins, got %d: %v", len(paths), paths)
	}
	if !strings.Contains(paths[0], "2026-03-14") {
		t.Errorf("expected newest bulletin first, got %v", paths)
	}
	if !strings.Contains(paths[2], "2026-03-12") {
		t.Errorf("expected oldest bulletin last, got %v", paths)
	}

	limited, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected limit to apply, got %d paths", len(limited))
	}
}

func TestNewStoreDefaultsToLocal(t *testing.T) {
	cfg := &config.Config{LocalBulletinsDir: t.TempDir()}

	store, err := NewStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer store.Close()

	if _, ok := store.(*LocalStore); !ok {
		t.Errorf("expected a local store without a bucket, got %T", store)
	}
}
