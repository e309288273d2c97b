// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mealdb queries the TheMealDB recipe API and normalizes its
// responses into pkg/types records.
//
// Three queries are supported: search by ingredient, lookup by id, and the
// category/area taxonomy lists. Every response has the shape
// {"meals": [...] | null}; a null list is an empty result, not an error.
package mealdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/recipe-finder/internal/httputil"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

// TaxonomyKind selects which taxonomy list to fetch.
type TaxonomyKind string

const (
	TaxonomyCategory TaxonomyKind = "category"
	TaxonomyArea     TaxonomyKind = "area"
)

// Client talks to the remote recipe source. It keeps no state between
// calls and never retries a failed request.
type Client struct {
	HTTP      *http.Client
	Endpoint  string
	UserAgent string
	Logger    *slog.Logger
}

// NewClient builds a Client from cfg. A nil httpClient gets one with
// cfg.Timeout; a nil logger discards output.
func NewClient(cfg types.SourceConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = types.DefaultBaseURL
	}
	return &Client{
		HTTP:      httpClient,
		Endpoint:  strings.TrimRight(cfg.Endpoint(), "/"),
		UserAgent: cfg.UserAgent,
		Logger:    logger,
	}
}

// NormalizeTerm trims whitespace and applies Unicode NFC normalization so
// visually identical ingredient names produce the same query.
func NormalizeTerm(term string) string {
	return norm.NFC.String(strings.TrimSpace(term))
}

// SearchByIngredient returns the recipes that use term as an ingredient.
// No matches yields an empty slice. Transport failures, non-200 responses,
// and undecodable bodies return a *types.RemoteUnavailableError.
func (c *Client) SearchByIngredient(ctx context.Context, term string) ([]types.RecipeSummary, error) {
	term = NormalizeTerm(term)
	if term == "" {
		return nil, fmt.Errorf("empty ingredient: %w", types.ErrInvalidInput)
	}

	reqURL := c.Endpoint + "/filter.php?" + url.Values{"i": {term}}.Encode()

	var resp summaryResponse
	if err := httputil.GetJSON(ctx, c.HTTP, reqURL, c.UserAgent, &resp); err != nil {
		c.Logger.Error("ingredient search failed", "ingredient", term, "error", err)
		return nil, &types.RemoteUnavailableError{Op: "search by ingredient", Err: err}
	}

	results := make([]types.RecipeSummary, 0, len(resp.Meals))
	for _, m := range resp.Meals {
		if m.ID == "" {
			continue
		}
		results = append(results, m.toSummary())
	}
	c.Logger.Debug("ingredient search", "ingredient", term, "results", len(results))
	return results, nil
}

// LookupByID fetches the full record for id. An id unknown upstream
// returns (nil, nil).
func (c *Client) LookupByID(ctx context.Context, id string) (*types.RecipeDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("empty recipe id: %w", types.ErrInvalidInput)
	}

	reqURL := c.Endpoint + "/lookup.php?" + url.Values{"i": {id}}.Encode()

	var resp detailResponse
	if err := httputil.GetJSON(ctx, c.HTTP, reqURL, c.UserAgent, &resp); err != nil {
		c.Logger.Error("recipe lookup failed", "id", id, "error", err)
		return nil, &types.RemoteUnavailableError{Op: "lookup by id", Err: err}
	}

	if len(resp.Meals) == 0 || resp.Meals[0] == nil {
		c.Logger.Debug("recipe not found", "id", id)
		return nil, nil
	}
	detail := parseDetail(resp.Meals[0])
	return &detail, nil
}

// ListTaxonomy returns the category or area names offered by the remote
// source. Taxonomy data is supplementary: any failure is logged and an
// empty slice returned.
func (c *Client) ListTaxonomy(ctx context.Context, kind TaxonomyKind) []string {
	var param, field string
	switch kind {
	case TaxonomyCategory:
		param, field = "c", "strCategory"
	case TaxonomyArea:
		param, field = "a", "strArea"
	default:
		c.Logger.Warn("unknown taxonomy kind", "kind", kind)
		return []string{}
	}

	reqURL := c.Endpoint + "/list.php?" + param + "=list"

	var resp taxonomyResponse
	if err := httputil.GetJSON(ctx, c.HTTP, reqURL, c.UserAgent, &resp); err != nil {
		c.Logger.Warn("taxonomy fetch failed", "kind", kind, "error", err)
		return []string{}
	}

	names := make([]string, 0, len(resp.Meals))
	for _, m := range resp.Meals {
		if v := stringField(m, field); v != "" {
			names = append(names, v)
		}
	}
	return names
}

// Taxonomy holds both vocabularies offered by the remote source.
type Taxonomy struct {
	Categories []string `json:"categories" yaml:"categories"`
	Areas      []string `json:"areas" yaml:"areas"`
}

// ListAllTaxonomies fetches categories and areas concurrently.
func (c *Client) ListAllTaxonomies(ctx context.Context) Taxonomy {
	var tax Taxonomy
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tax.Categories = c.ListTaxonomy(gctx, TaxonomyCategory)
		return nil
	})
	g.Go(func() error {
		tax.Areas = c.ListTaxonomy(gctx, TaxonomyArea)
		return nil
	})
	// ListTaxonomy never fails, so Wait only synchronizes.
	_ = g.Wait()
	return tax
}

// IsRemoteUnavailable reports whether err came from a failed remote call.
func IsRemoteUnavailable(err error) bool {
	return errors.Is(err, types.ErrRemoteUnavailable)
}

// parseDetail converts a raw lookup record into a RecipeDetail. Ingredient
// slots with a blank name are dropped; names and measures are trimmed.
func parseDetail(m map[string]any) types.RecipeDetail {
	d := types.RecipeDetail{
		RecipeSummary: types.RecipeSummary{
			ID:        stringField(m, "idMeal"),
			Name:      stringField(m, "strMeal"),
			Thumbnail: stringField(m, "strMealThumb"),
			Category:  stringField(m, "strCategory"),
			Area:      stringField(m, "strArea"),
		},
		Instructions: stringField(m, "strInstructions"),
		VideoURL:     strings.TrimSpace(stringField(m, "strYoutube")),
		SourceURL:    strings.TrimSpace(stringField(m, "strSource")),
		Tags:         splitTags(stringField(m, "strTags")),
		Ingredients:  []types.Ingredient{},
	}

	for i := 1; i <= types.MaxIngredientSlots; i++ {
		name := strings.TrimSpace(stringField(m, fmt.Sprintf("strIngredient%d", i)))
		if name == "" {
			continue
		}
		d.Ingredients = append(d.Ingredients, types.Ingredient{
			Name:    name,
			Measure: strings.TrimSpace(stringField(m, fmt.Sprintf("strMeasure%d", i))),
		})
	}
	return d
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// stringField returns m[key] when it is a JSON string, or "" for null,
// missing, or non-string values.
func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// TheMealDB API JSON structures.
type summaryResponse struct {
	Meals []mealSummary `json:"meals"`
}

type mealSummary struct {
	ID        string `json:"idMeal"`
	Name      string `json:"strMeal"`
	Thumbnail string `json:"strMealThumb"`
	Category  string `json:"strCategory"`
	Area      string `json:"strArea"`
}

func (m mealSummary) toSummary() types.RecipeSummary {
	return types.RecipeSummary{
		ID:        m.ID,
		Name:      m.Name,
		Thumbnail: m.Thumbnail,
		Category:  m.Category,
		Area:      m.Area,
	}
}

type detailResponse struct {
	Meals []map[string]any `json:"meals"`
}

type taxonomyResponse struct {
	Meals []map[string]any `json:"meals"`
}
