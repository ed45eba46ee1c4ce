// internal/storage/kv/localfs_test.go
package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/newthinker/tradedeck/internal/core"
)

func TestLocalFS_ImplementsStore(t *testing.T) {
	var _ Store = (*LocalFS)(nil)
}

func TestLocalFS_SetGet(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewLocalFS(dir)
	if err != nil {
		t.Fatalf("NewLocalFS: %v", err)
	}

	ctx := context.Background()
	data := []byte(`[{"name":"T1"}]`)

	if err := fs.Set(ctx, "webhook_templates", data); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := fs.Get(ctx, "webhook_templates")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if string(got) != string(data) {
		t.Errorf("got %q, want %q", got, data)
	}
}

func TestLocalFS_GetMissing(t *testing.T) {
	fs, _ := NewLocalFS(t.TempDir())

	_, err := fs.Get(context.Background(), "nope")
	if !errors.Is(err, core.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestLocalFS_Exists(t *testing.T) {
	fs, _ := NewLocalFS(t.TempDir())
	ctx := context.Background()

	exists, _ := fs.Exists(ctx, "webhook_template")
	if exists {
		t.Error("expected false for absent key")
	}

	fs.Set(ctx, "webhook_template", []byte("{}"))
	exists, _ = fs.Exists(ctx, "webhook_template")
	if !exists {
		t.Error("expected true for present key")
	}
}

func TestLocalFS_Delete(t *testing.T) {
	fs, _ := NewLocalFS(t.TempDir())
	ctx := context.Background()

	fs.Set(ctx, "webhook_template", []byte("{}"))
	if err := fs.Delete(ctx, "webhook_template"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	exists, _ := fs.Exists(ctx, "webhook_template")
	if exists {
		t.Error("expected key gone after delete")
	}

	// Deleting again is not an error
	if err := fs.Delete(ctx, "webhook_template"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestLocalFS_Overwrite(t *testing.T) {
	fs, _ := NewLocalFS(t.TempDir())
	ctx := context.Background()

	fs.Set(ctx, "k", []byte("first"))
	fs.Set(ctx, "k", []byte("second"))

	got, _ := fs.Get(ctx, "k")
	if string(got) != "second" {
		t.Errorf("got %q, want last write", got)
	}
}
