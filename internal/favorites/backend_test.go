// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package favorites

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "data")
	b := NewFileBackend(dir)

	data, err := b.Load(ctx, Key)
	require.NoError(t, err)
	assert.Nil(t, data, "missing file loads as nil")

	require.NoError(t, b.Save(ctx, Key, []byte(`[{"idMeal":"1"}]`)))
	require.NoError(t, b.Save(ctx, Key, []byte(`[]`)))

	data, err = b.Load(ctx, Key)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files are cleaned up")
	assert.Equal(t, Key+".json", entries[0].Name())
}

func TestFileBackend_SaveIntoFileFails(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	b := NewFileBackend(filepath.Join(blocker, "data"))
	assert.Error(t, b.Save(context.Background(), Key, []byte("[]")))
}

func TestSQLiteBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	b, err := OpenSQLite(dir)
	require.NoError(t, err)

	data, err := b.Load(ctx, Key)
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, b.Save(ctx, Key, []byte(`[{"idMeal":"1"}]`)))
	require.NoError(t, b.Save(ctx, Key, []byte(`[{"idMeal":"2"}]`)))
	require.NoError(t, b.Save(ctx, "other-key", []byte(`x`)))

	data, err = b.Load(ctx, Key)
	require.NoError(t, err)
	assert.Equal(t, `[{"idMeal":"2"}]`, string(data))
	require.NoError(t, b.Close())

	// Reopening reruns migrations without error and keeps the data.
	b, err = OpenSQLite(dir)
	require.NoError(t, err)
	defer b.Close()

	data, err = b.Load(ctx, Key)
	require.NoError(t, err)
	assert.Equal(t, `[{"idMeal":"2"}]`, string(data))

	var count int
	require.NoError(t, b.db.Get(&count, `SELECT count(*) FROM kv`))
	assert.Equal(t, 2, count)
}

func TestMemoryBackend_CopiesValues(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	in := []byte("abc")
	require.NoError(t, b.Save(ctx, Key, in))
	in[0] = 'z'

	out, err := b.Load(ctx, Key)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))

	out[0] = 'y'
	again, _ := b.Load(ctx, Key)
	assert.Equal(t, "abc", string(again))
}
