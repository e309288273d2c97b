// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/pdiddy/recipe-finder/pkg/types"
)

// Lookuper is the remote detail lookup the controller depends on.
type Lookuper interface {
	LookupByID(ctx context.Context, id string) (*types.RecipeDetail, error)
}

// DetailSnapshot is a point-in-time copy of a detail view.
type DetailSnapshot struct {
	Status  Status               `json:"status" yaml:"status"`
	Recipe  *types.RecipeSummary `json:"recipe,omitempty" yaml:"recipe,omitempty"`
	Detail  *types.RecipeDetail  `json:"detail,omitempty" yaml:"detail,omitempty"`
	Message string               `json:"message,omitempty" yaml:"message,omitempty"`
	Err     error                `json:"-" yaml:"-"`
}

// DetailController fetches the full record of one recipe for an open
// detail view. Nothing is cached across views: every Open fetches again.
type DetailController struct {
	mu  sync.Mutex
	src Lookuper
	log *slog.Logger

	seq     uint64
	status  Status
	recipe  *types.RecipeSummary
	detail  *types.RecipeDetail
	message string
	err     error
}

// NewDetailController returns an idle controller backed by src.
func NewDetailController(src Lookuper, logger *slog.Logger) *DetailController {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &DetailController{src: src, log: logger, status: StatusIdle}
}

// Open starts loading the detail of recipe. A recipe missing upstream ends
// in StatusError with ErrNotFound; a failed lookup ends in StatusError with
// the remote error. If the view is closed or reopened before the lookup
// completes, the result is dropped and Open returns nil.
func (c *DetailController) Open(ctx context.Context, recipe types.RecipeSummary) error {
	id := strings.TrimSpace(recipe.ID)
	if id == "" {
		return fmt.Errorf("recipe has no id: %w", types.ErrInvalidInput)
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.status = StatusLoading
	r := recipe
	c.recipe = &r
	c.detail = nil
	c.message = ""
	c.err = nil
	c.mu.Unlock()

	detail, err := c.src.LookupByID(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		c.log.Debug("stale detail result discarded", "id", id, "seq", seq, "latest", c.seq)
		return nil
	}

	switch {
	case err != nil:
		c.status = StatusError
		c.message = MsgDetailFailed
		c.err = err
		c.log.Warn("detail lookup failed", "id", id, "error", err)
		return fmt.Errorf("loading recipe %s: %w", id, err)
	case detail == nil:
		c.status = StatusError
		c.message = MsgNotFound
		c.err = types.ErrNotFound
		return fmt.Errorf("recipe %s: %w", id, types.ErrNotFound)
	default:
		c.status = StatusLoaded
		c.detail = detail
		return nil
	}
}

// Close discards the view. A lookup still in flight is ignored when it completes.
func (c *DetailController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.status = StatusIdle
	c.recipe = nil
	c.detail = nil
	c.message = ""
	c.err = nil
}

// Snapshot returns a copy of the current state.
func (c *DetailController) Snapshot() DetailSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := DetailSnapshot{
		Status:  c.status,
		Message: c.message,
		Err:     c.err,
	}
	if c.recipe != nil {
		r := *c.recipe
		snap.Recipe = &r
	}
	if c.detail != nil {
		d := *c.detail
		d.Ingredients = append([]types.Ingredient(nil), c.detail.Ingredients...)
		d.Tags = append([]string(nil), c.detail.Tags...)
		snap.Detail = &d
	}
	return snap
}
