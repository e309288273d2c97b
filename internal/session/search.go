// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the presentation-facing controllers: a search
// session (ingredient search plus the filtered view) and a detail view
// (on-demand lookup of one recipe).
//
// Controllers are safe for concurrent use. Remote calls run without the
// lock held; each call is tagged with a sequence number and its result is
// applied only if no newer call was issued in the meantime.
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/pdiddy/recipe-finder/internal/filter"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

// Status is the state of a controller.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusPopulated Status = "populated"
	StatusLoaded    Status = "loaded"
	StatusError     Status = "error"
)

// User-facing error messages.
const (
	MsgSearchFailed = "Failed to search recipes. Please try again."
	MsgDetailFailed = "Failed to load recipe details. Please try again."
	MsgNotFound     = "Recipe not found"
)

// Searcher is the remote search operation the controller depends on.
type Searcher interface {
	SearchByIngredient(ctx context.Context, term string) ([]types.RecipeSummary, error)
}

// SearchSnapshot is a point-in-time copy of the search session state.
type SearchSnapshot struct {
	Status   Status                `json:"status" yaml:"status"`
	Query    string                `json:"query" yaml:"query"`
	Message  string                `json:"message,omitempty" yaml:"message,omitempty"`
	Err      error                 `json:"-" yaml:"-"`
	Filters  types.ActiveFilterSet `json:"filters" yaml:"filters"`
	Raw      []types.RecipeSummary `json:"raw" yaml:"raw"`
	Filtered []types.RecipeSummary `json:"filtered" yaml:"filtered"`
}

// Summary renders the result count line shown above the result list.
func (s SearchSnapshot) Summary() string {
	return fmt.Sprintf("Showing %d of %d recipes", len(s.Filtered), len(s.Raw))
}

// SearchController runs ingredient searches and keeps the filtered view
// consistent with the raw results and the active filters.
type SearchController struct {
	mu  sync.Mutex
	src Searcher
	log *slog.Logger

	seq      uint64
	status   Status
	query    string
	message  string
	err      error
	filters  types.ActiveFilterSet
	raw      []types.RecipeSummary
	filtered []types.RecipeSummary
}

// NewSearchController returns an idle controller backed by src.
func NewSearchController(src Searcher, logger *slog.Logger) *SearchController {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SearchController{
		src:      src,
		log:      logger,
		status:   StatusIdle,
		raw:      []types.RecipeSummary{},
		filtered: []types.RecipeSummary{},
	}
}

// Search issues an ingredient search. A blank term is rejected with
// ErrInvalidInput and leaves the state untouched. On failure the session
// moves to StatusError and keeps its previous results. If a newer search
// starts before this one completes, the result is dropped and Search
// returns nil.
func (c *SearchController) Search(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return fmt.Errorf("empty search term: %w", types.ErrInvalidInput)
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.status = StatusLoading
	c.query = term
	c.message = ""
	c.err = nil
	c.mu.Unlock()

	c.log.Debug("search started", "term", term, "seq", seq)
	results, err := c.src.SearchByIngredient(ctx, term)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		c.log.Debug("stale search result discarded", "term", term, "seq", seq, "latest", c.seq)
		return nil
	}

	if err != nil {
		c.status = StatusError
		c.message = MsgSearchFailed
		c.err = err
		c.log.Warn("search failed", "term", term, "error", err)
		return fmt.Errorf("searching %q: %w", term, err)
	}

	if results == nil {
		results = []types.RecipeSummary{}
	}
	c.raw = results
	c.recompute()
	c.status = StatusPopulated
	c.log.Debug("search populated", "term", term, "raw", len(c.raw), "filtered", len(c.filtered))
	return nil
}

// SetFilters replaces the active filters and recomputes the filtered view
// from the current raw results. No remote call is made.
func (c *SearchController) SetFilters(filters types.ActiveFilterSet) error {
	if err := filters.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filters = filters
	c.recompute()
	return nil
}

// ToggleFilter selects value on axis, or clears the axis if it already
// holds value, then recomputes the filtered view.
func (c *SearchController) ToggleFilter(axis types.FilterAxis, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.filters.Toggle(axis, value)
	if err != nil {
		return err
	}
	c.filters = next
	c.recompute()
	return nil
}

// ClearFilters unsets every axis.
func (c *SearchController) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filters = c.filters.Clear()
	c.recompute()
}

// Restore replaces the session with previously saved results, as if a
// search for query had just completed. Any in-flight search is superseded.
func (c *SearchController) Restore(query string, raw []types.RecipeSummary, filters types.ActiveFilterSet) error {
	if err := filters.Validate(); err != nil {
		return err
	}
	if raw == nil {
		raw = []types.RecipeSummary{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.query = strings.TrimSpace(query)
	c.raw = append([]types.RecipeSummary(nil), raw...)
	c.filters = filters
	c.message = ""
	c.err = nil
	c.recompute()
	c.status = StatusPopulated
	return nil
}

// Snapshot returns a copy of the current state.
func (c *SearchController) Snapshot() SearchSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return SearchSnapshot{
		Status:   c.status,
		Query:    c.query,
		Message:  c.message,
		Err:      c.err,
		Filters:  c.filters,
		Raw:      append([]types.RecipeSummary{}, c.raw...),
		Filtered: append([]types.RecipeSummary{}, c.filtered...),
	}
}

// recompute derives the filtered view. Callers hold c.mu.
func (c *SearchController) recompute() {
	c.filtered = filter.Apply(c.raw, c.filters)
}
