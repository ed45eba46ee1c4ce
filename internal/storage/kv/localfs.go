// internal/storage/kv/localfs.go
package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/newthinker/tradedeck/internal/core"
)

// LocalFS implements Store on the local filesystem, one file per key.
// This is the default backend: a single-user local tool needs nothing more.
type LocalFS struct {
	basePath string
}

// NewLocalFS creates a new LocalFS store rooted at basePath
func NewLocalFS(basePath string) (*LocalFS, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating base path: %w", err)
	}
	return &LocalFS{basePath: basePath}, nil
}

func (l *LocalFS) path(key string) string {
	return filepath.Join(l.basePath, key+".json")
}

func (l *LocalFS) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(l.path(key))
	if os.IsNotExist(err) {
		return nil, core.ErrKeyNotFound
	}
	return data, err
}

func (l *LocalFS) Set(ctx context.Context, key string, value []byte) error {
	if err := os.MkdirAll(filepath.Dir(l.path(key)), 0755); err != nil {
		return fmt.Errorf("creating directories: %w", err)
	}
	return os.WriteFile(l.path(key), value, 0644)
}

func (l *LocalFS) Delete(ctx context.Context, key string) error {
	err := os.Remove(l.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (l *LocalFS) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(l.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}
