// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for recipe-finder.
// RecipeSummary and RecipeDetail mirror the remote recipe source records;
// ActiveFilterSet holds the four filter axes; Config groups runtime settings.
package types

// MaxIngredientSlots is the number of ingredient/measure slots in a remote
// recipe record (strIngredient1..20, strMeasure1..20).
const MaxIngredientSlots = 20

// RecipeSummary is the minimal recipe record returned by an ingredient
// search and stored in the favorites set. Identity is the ID field alone.
type RecipeSummary struct {
	// ID is the opaque identifier assigned by the remote source.
	ID string `json:"idMeal" yaml:"id"`

	// Name is the display name of the recipe.
	Name string `json:"strMeal" yaml:"name"`

	// Thumbnail is a URL to the recipe image.
	Thumbnail string `json:"strMealThumb" yaml:"thumbnail"`

	// Category is the optional category tag (e.g. "Seafood").
	Category string `json:"strCategory,omitempty" yaml:"category,omitempty"`

	// Area is the optional cuisine tag (e.g. "Italian").
	Area string `json:"strArea,omitempty" yaml:"area,omitempty"`
}

// Ingredient is one ingredient/measure row of a recipe detail.
type Ingredient struct {
	Name    string `json:"ingredient" yaml:"ingredient"`
	Measure string `json:"measure" yaml:"measure"`
}

// RecipeDetail is the full recipe record returned by a lookup. It is built
// only from the remote response and never mutated afterwards.
type RecipeDetail struct {
	RecipeSummary `yaml:",inline"`

	// Instructions is the freeform preparation text.
	Instructions string `json:"strInstructions" yaml:"instructions"`

	// VideoURL is an optional link to a video of the recipe.
	VideoURL string `json:"strYoutube,omitempty" yaml:"video_url,omitempty"`

	// SourceURL is an optional link to the page the recipe came from.
	SourceURL string `json:"strSource,omitempty" yaml:"source_url,omitempty"`

	// Tags are the comma-separated tags from the remote record, split and trimmed.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Ingredients lists the non-blank ingredient slots in slot order.
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
}

// Summary returns the summary portion of the detail record.
func (d *RecipeDetail) Summary() RecipeSummary {
	return d.RecipeSummary
}
