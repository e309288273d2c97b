// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package favorites

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/recipe-finder/pkg/types"
)

var (
	handi = types.RecipeSummary{ID: "52795", Name: "Chicken Handi", Thumbnail: "https://img/52795.jpg", Category: "Chicken", Area: "Indian"}
	stew  = types.RecipeSummary{ID: "52940", Name: "Brown Stew Chicken", Thumbnail: "https://img/52940.jpg"}
	tart  = types.RecipeSummary{ID: "52893", Name: "Apple & Blackberry Crumble", Thumbnail: "https://img/52893.jpg", Category: "Dessert", Area: "British"}
)

// failingBackend fails every Save after the first failAfter calls.
type failingBackend struct {
	*MemoryBackend
	saves     int
	failAfter int
	loadErr   error
}

func (b *failingBackend) Load(ctx context.Context, key string) ([]byte, error) {
	if b.loadErr != nil {
		return nil, b.loadErr
	}
	return b.MemoryBackend.Load(ctx, key)
}

func (b *failingBackend) Save(ctx context.Context, key string, data []byte) error {
	b.saves++
	if b.saves > b.failAfter {
		return errors.New("disk full")
	}
	return b.MemoryBackend.Save(ctx, key, data)
}

func storedIDs(t *testing.T, b Backend) []string {
	t.Helper()
	data, err := b.Load(context.Background(), Key)
	require.NoError(t, err)
	var rs []types.RecipeSummary
	require.NoError(t, json.Unmarshal(data, &rs))
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestOpen_EmptyBackend(t *testing.T) {
	s := Open(context.Background(), NewMemoryBackend(), nil)
	assert.Equal(t, 0, s.Len())
	assert.NotNil(t, s.List())
	assert.False(t, s.IsFavorite(handi.ID))
}

func TestOpen_CorruptDataDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{{{"},
		{"object instead of array", `{"idMeal":"1"}`},
		{"array of numbers", `[1,2,3]`},
		{"truncated", `[{"idMeal":"1","strMeal":"Pie"`},
		{"whitespace only", "  \n"},
		{"json null", "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMemoryBackend()
			require.NoError(t, b.Save(context.Background(), Key, []byte(tt.data)))

			s := Open(context.Background(), b, nil)
			assert.Equal(t, 0, s.Len())

			// The store is usable after recovery.
			require.NoError(t, s.Add(context.Background(), handi))
			assert.Equal(t, []string{handi.ID}, storedIDs(t, b))
		})
	}
}

func TestOpen_LoadErrorDegradesToEmpty(t *testing.T) {
	b := &failingBackend{MemoryBackend: NewMemoryBackend(), failAfter: 100, loadErr: errors.New("permission denied")}
	s := Open(context.Background(), b, nil)
	assert.Equal(t, 0, s.Len())
}

func TestDecode_DropsDuplicatesAndMissingIDs(t *testing.T) {
	data := `[
		{"idMeal":"1","strMeal":"First"},
		{"idMeal":"","strMeal":"No ID"},
		{"idMeal":"2","strMeal":"Second"},
		{"idMeal":"1","strMeal":"First again"}
	]`
	items, err := Decode([]byte(data))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "First", items[0].Name)
	assert.Equal(t, "2", items[1].ID)

	_, err = Decode([]byte(`"nope"`))
	assert.ErrorIs(t, err, types.ErrPersistenceCorrupt)
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	s := Open(ctx, b, nil)

	added, err := s.Toggle(ctx, handi)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, s.IsFavorite(handi.ID))
	assert.Equal(t, []string{handi.ID}, storedIDs(t, b))

	added, err = s.Toggle(ctx, handi)
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, s.IsFavorite(handi.ID))
	assert.Empty(t, storedIDs(t, b))
}

func TestToggle_PairRestoresMembership(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, NewMemoryBackend(), nil)
	require.NoError(t, s.Add(ctx, stew))

	for _, r := range []types.RecipeSummary{handi, stew} {
		before := s.List()
		_, err := s.Toggle(ctx, r)
		require.NoError(t, err)
		_, err = s.Toggle(ctx, r)
		require.NoError(t, err)
		assert.ElementsMatch(t, before, s.List())
	}
}

func TestToggle_MatchesByIDOnly(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, NewMemoryBackend(), nil)
	require.NoError(t, s.Add(ctx, handi))

	renamed := handi
	renamed.Name = "Chicken Handi (renamed)"
	renamed.Thumbnail = ""

	added, err := s.Toggle(ctx, renamed)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 0, s.Len())
}

func TestAdd_Idempotent(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	s := Open(ctx, b, nil)

	require.NoError(t, s.Add(ctx, handi))
	require.NoError(t, s.Add(ctx, handi))
	require.NoError(t, s.Add(ctx, types.RecipeSummary{ID: handi.ID, Name: "different name"}))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, handi, s.List()[0])
	assert.Equal(t, []string{handi.ID}, storedIDs(t, b))
}

func TestAdd_RejectsMissingID(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, NewMemoryBackend(), nil)

	assert.ErrorIs(t, s.Add(ctx, types.RecipeSummary{Name: "anonymous"}), types.ErrInvalidInput)
	_, err := s.Toggle(ctx, types.RecipeSummary{})
	assert.ErrorIs(t, err, types.ErrInvalidInput)
	assert.Equal(t, 0, s.Len())
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	s := Open(ctx, b, nil)
	require.NoError(t, s.Add(ctx, handi))
	require.NoError(t, s.Add(ctx, stew))
	require.NoError(t, s.Add(ctx, tart))

	require.NoError(t, s.Remove(ctx, stew))
	assert.Equal(t, []string{handi.ID, tart.ID}, storedIDs(t, b))

	// Absent recipe: no-op, no write.
	require.NoError(t, s.Remove(ctx, stew))
	assert.Equal(t, 2, s.Len())
}

func TestRemove_AbsentDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	b := &failingBackend{MemoryBackend: NewMemoryBackend(), failAfter: 0}
	s := Open(ctx, b, nil)

	require.NoError(t, s.Remove(ctx, handi))
	assert.Equal(t, 0, b.saves)
}

func TestList_PreservesInsertionOrderAndIsACopy(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, NewMemoryBackend(), nil)
	for _, r := range []types.RecipeSummary{tart, handi, stew} {
		require.NoError(t, s.Add(ctx, r))
	}

	list := s.List()
	assert.Equal(t, []types.RecipeSummary{tart, handi, stew}, list)

	list[0] = types.RecipeSummary{ID: "mutated"}
	assert.Equal(t, tart, s.List()[0])
}

func TestSaveFailureKeepsMemoryConsistent(t *testing.T) {
	ctx := context.Background()
	b := &failingBackend{MemoryBackend: NewMemoryBackend(), failAfter: 1}
	s := Open(ctx, b, nil)

	require.NoError(t, s.Add(ctx, handi))

	err := s.Add(ctx, stew)
	require.Error(t, err)
	assert.False(t, s.IsFavorite(stew.ID))

	added, err := s.Toggle(ctx, handi)
	require.Error(t, err)
	assert.True(t, added, "membership unchanged after failed removal")
	assert.True(t, s.IsFavorite(handi.ID))

	assert.Equal(t, []string{handi.ID}, storedIDs(t, b))
}

func TestRoundTrip_ReopenYieldsEqualSet(t *testing.T) {
	ctx := context.Background()
	backends := map[string]func(t *testing.T) Backend{
		"memory": func(*testing.T) Backend { return NewMemoryBackend() },
		"file":   func(t *testing.T) Backend { return NewFileBackend(t.TempDir()) },
		"sqlite": func(t *testing.T) Backend {
			b, err := OpenSQLite(t.TempDir())
			require.NoError(t, err)
			t.Cleanup(func() { b.Close() })
			return b
		},
	}
	for name, mk := range backends {
		t.Run(name, func(t *testing.T) {
			b := mk(t)
			s := Open(ctx, b, nil)
			for _, r := range []types.RecipeSummary{handi, stew, tart} {
				require.NoError(t, s.Add(ctx, r))
			}
			require.NoError(t, s.Remove(ctx, stew))

			reopened := Open(ctx, b, nil)
			assert.Equal(t, s.List(), reopened.List())
			assert.Equal(t, []types.RecipeSummary{handi, tart}, reopened.List())
		})
	}
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, NewMemoryBackend(), nil)
	require.NoError(t, s.Add(ctx, handi))
	require.NoError(t, s.Add(ctx, tart))

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Export(&buf, "yaml"))

		var got []types.RecipeSummary
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []types.RecipeSummary{handi, tart}, got)
		assert.Contains(t, buf.String(), "name: Chicken Handi")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Export(&buf, "json"))

		var got []types.RecipeSummary
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []types.RecipeSummary{handi, tart}, got)
		assert.Contains(t, buf.String(), `"idMeal": "52795"`)
	})

	t.Run("unsupported", func(t *testing.T) {
		assert.ErrorIs(t, s.Export(&bytes.Buffer{}, "csv"), types.ErrInvalidInput)
	})
}

func TestExport_EmptyJSONIsArray(t *testing.T) {
	s := Open(context.Background(), NewMemoryBackend(), nil)
	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf, "json"))
	assert.Equal(t, "[]\n", buf.String())
}
