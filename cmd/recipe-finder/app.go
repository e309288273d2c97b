package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/recipe-finder/internal/favorites"
	"github.com/pdiddy/recipe-finder/internal/mealdb"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

func newClient(cfg types.Config) *mealdb.Client {
	return mealdb.NewClient(cfg.Source, nil, logger)
}

// openFavorites opens the configured favorites backend and loads the set.
// The returned func releases the backend.
func openFavorites(ctx context.Context, cfg types.Config) (*favorites.Store, func(), error) {
	var (
		backend favorites.Backend
		release = func() {}
	)
	switch cfg.Favorites.Backend {
	case types.StorageSQLite:
		b, err := favorites.OpenSQLite(cfg.Favorites.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening favorites database: %w", err)
		}
		backend = b
		release = func() {
			if err := b.Close(); err != nil {
				logger.Warn("closing favorites database", "error", err)
			}
		}
	case types.StorageMemory:
		backend = favorites.NewMemoryBackend()
	default:
		backend = favorites.NewFileBackend(cfg.Favorites.DataDir)
	}
	logger.Debug("favorites backend", "backend", cfg.Favorites.Backend, "dir", cfg.Favorites.DataDir)
	return favorites.Open(ctx, backend, logger), release, nil
}

// lookupSummary fetches the summary of recipe id from the remote source.
func lookupSummary(ctx context.Context, client *mealdb.Client, id string) (types.RecipeSummary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return types.RecipeSummary{}, fmt.Errorf("recipe id required: %w", types.ErrInvalidInput)
	}
	d, err := client.LookupByID(ctx, id)
	if err != nil {
		return types.RecipeSummary{}, err
	}
	if d == nil {
		return types.RecipeSummary{}, fmt.Errorf("recipe %s: %w", id, types.ErrNotFound)
	}
	return d.Summary(), nil
}
