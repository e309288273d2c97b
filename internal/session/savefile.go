// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/recipe-finder/pkg/types"
)

// SavedSearch is the on-disk representation of a search and its raw
// results. A saved search can be reloaded and refiltered without querying
// the remote source again.
type SavedSearch struct {
	Query   string                `yaml:"query"`
	Filters types.ActiveFilterSet `yaml:"filters"`
	Results []types.RecipeSummary `yaml:"results"`
	Summary SavedSummary          `yaml:"summary"`
}

// SavedSummary stores result statistics and a timestamp.
type SavedSummary struct {
	Total     int       `yaml:"total"`
	Matching  int       `yaml:"matching"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteSavedSearch saves the query, filters and raw results of snap to a
// YAML file.
func WriteSavedSearch(path string, snap SearchSnapshot) error {
	ss := SavedSearch{
		Query:   snap.Query,
		Filters: snap.Filters,
		Results: snap.Raw,
		Summary: SavedSummary{
			Total:     len(snap.Raw),
			Matching:  len(snap.Filtered),
			Timestamp: time.Now().UTC(),
		},
	}
	if ss.Results == nil {
		ss.Results = []types.RecipeSummary{}
	}

	data, err := yaml.Marshal(&ss)
	if err != nil {
		return fmt.Errorf("marshaling saved search: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSavedSearch loads a previously saved search from disk. Filters
// outside their vocabulary are rejected with ErrInvalidInput.
func ReadSavedSearch(path string) (*SavedSearch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading saved search: %w", err)
	}
	var ss SavedSearch
	if err := yaml.Unmarshal(data, &ss); err != nil {
		return nil, fmt.Errorf("parsing saved search: %w", err)
	}
	if err := ss.Filters.Validate(); err != nil {
		return nil, fmt.Errorf("saved search %s: %w", path, err)
	}
	return &ss, nil
}

// RestoreInto loads the saved search into c, overriding its filters with
// filters when override is true.
func (ss *SavedSearch) RestoreInto(c *SearchController, filters types.ActiveFilterSet, override bool) error {
	f := ss.Filters
	if override {
		f = filters
	}
	return c.Restore(ss.Query, ss.Results, f)
}
