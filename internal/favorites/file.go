// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package favorites

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Compile-time interface check.
var _ Backend = (*FileBackend)(nil)

// FileBackend stores each key as dir/<key>.json. Writes go to a temporary
// file that is renamed into place, so a crash never leaves a half-written value.
type FileBackend struct {
	Dir string
}

// NewFileBackend returns a FileBackend rooted at dir. The directory is
// created on first write.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{Dir: dir}
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.Dir, key+".json")
}

// Load returns the stored bytes, or (nil, nil) when the file does not exist.
func (b *FileBackend) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", b.path(key), err)
	}
	return data, nil
}

// Save replaces the stored value for key.
func (b *FileBackend) Save(_ context.Context, key string, data []byte) error {
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", b.Dir, err)
	}

	tmp, err := os.CreateTemp(b.Dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, b.path(key)); err != nil {
		return fmt.Errorf("replacing %s: %w", b.path(key), err)
	}
	return nil
}
