// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package favorites keeps the user's favorite recipes: an ordered set of
// RecipeSummary unique by ID, persisted through a Backend under a single
// key.
//
// The set is loaded once when the Store is opened. Missing or corrupt
// storage yields an empty set. Every mutation writes the full set back
// before returning, so a later read of the same key sees it.
package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/recipe-finder/pkg/types"
)

// Key is the storage key holding the serialized favorites list.
const Key = "recipe-favorites"

// Backend is durable key/value storage. Load returns (nil, nil) when key
// has never been written.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

var errMissingID = fmt.Errorf("recipe has no id: %w", types.ErrInvalidInput)

// Store owns the favorites set. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	backend Backend
	log     *slog.Logger
	items   []types.RecipeSummary
}

// Open loads the favorites set from backend. It never fails: unreadable or
// unparsable data is logged and replaced by an empty set.
func Open(ctx context.Context, backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Store{backend: backend, log: logger}

	items, err := s.load(ctx)
	if err != nil {
		logger.Warn("favorites reset to empty", "error", err)
		items = nil
	}
	s.items = items
	logger.Debug("favorites loaded", "count", len(s.items))
	return s
}

func (s *Store) load(ctx context.Context) ([]types.RecipeSummary, error) {
	data, err := s.backend.Load(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", Key, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	return Decode(data)
}

// Decode parses a serialized favorites list. Anything other than a JSON
// array of recipe objects returns ErrPersistenceCorrupt. Entries without
// an ID and repeated IDs are dropped; the first occurrence wins.
func Decode(data []byte) ([]types.RecipeSummary, error) {
	var raw []types.RecipeSummary
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrPersistenceCorrupt, err)
	}

	seen := make(map[string]bool, len(raw))
	items := make([]types.RecipeSummary, 0, len(raw))
	for _, r := range raw {
		if r.ID == "" || seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		items = append(items, r)
	}
	return items, nil
}

// IsFavorite reports whether a recipe with id is in the set.
func (s *Store) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id) >= 0
}

// Toggle adds recipe if absent or removes it if present, and returns the
// resulting membership.
func (s *Store) Toggle(ctx context.Context, recipe types.RecipeSummary) (bool, error) {
	if recipe.ID == "" {
		return false, errMissingID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(recipe.ID); i >= 0 {
		if err := s.commit(ctx, slices.Delete(slices.Clone(s.items), i, i+1)); err != nil {
			return true, err
		}
		s.log.Debug("favorite removed", "id", recipe.ID)
		return false, nil
	}
	if err := s.commit(ctx, append(slices.Clone(s.items), recipe)); err != nil {
		return false, err
	}
	s.log.Debug("favorite added", "id", recipe.ID)
	return true, nil
}

// Add inserts recipe at the end of the set. It is a no-op when a recipe
// with the same ID is already present.
func (s *Store) Add(ctx context.Context, recipe types.RecipeSummary) error {
	if recipe.ID == "" {
		return errMissingID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(recipe.ID) >= 0 {
		return nil
	}
	return s.commit(ctx, append(slices.Clone(s.items), recipe))
}

// Remove deletes the recipe with recipe.ID. It is a no-op when absent.
func (s *Store) Remove(ctx context.Context, recipe types.RecipeSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(recipe.ID)
	if i < 0 {
		return nil
	}
	return s.commit(ctx, slices.Delete(slices.Clone(s.items), i, i+1))
}

// List returns a copy of the set in insertion order.
func (s *Store) List() []types.RecipeSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.RecipeSummary, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// commit persists next and only then makes it the in-memory set, so a
// failed write leaves memory and storage in agreement.
func (s *Store) commit(ctx context.Context, next []types.RecipeSummary) error {
	if next == nil {
		next = []types.RecipeSummary{}
	}
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}
	if err := s.backend.Save(ctx, Key, data); err != nil {
		s.log.Error("saving favorites failed", "error", err)
		return fmt.Errorf("saving favorites: %w", err)
	}
	s.items = next
	return nil
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(r types.RecipeSummary) bool { return r.ID == id })
}

// Export writes the favorites as YAML or JSON to w.
func (s *Store) Export(w io.Writer, format string) error {
	items := s.List()
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return fmt.Errorf("encoding favorites as yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json: %w", format, types.ErrInvalidInput)
	}
}
