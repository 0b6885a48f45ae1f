package disk

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStore_PutWritesUnderBucket(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Put(context.Background(), "team-logos", "abc.png", []byte("png-bytes")); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(store.Root(), "team-logos", "abc.png"))
	if err != nil {
		t.Fatalf("read stored object: %v", err)
	}
	if string(got) != "png-bytes" {
		t.Fatalf("unexpected content: %q", got)
	}

	entries, _ := os.ReadDir(filepath.Join(store.Root(), "team-logos"))
	if len(entries) != 1 {
		t.Fatalf("temp files must not be left behind, got %d entries", len(entries))
	}
}

func TestStore_RejectsTraversal(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for _, tc := range []struct{ bucket, key string }{
		{"..", "x.png"},
		{"logos", "../x.png"},
		{"logos", ""},
		{"a/b", "x.png"},
	} {
		err := store.Put(context.Background(), tc.bucket, tc.key, []byte("x"))
		if !IsUnsafePath(err) {
			t.Fatalf("expected unsafe path for %q/%q, got %v", tc.bucket, tc.key, err)
		}
	}
}

func TestStore_PutHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := store.Put(ctx, "logos", "x.png", []byte("x")); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestNewStore_RequiresRoot(t *testing.T) {
	t.Parallel()

	if _, err := NewStore("  "); err == nil {
		t.Fatalf("expected error for empty root")
	}
}
