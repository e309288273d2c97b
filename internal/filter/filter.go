// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter derives the filtered view of a recipe list from an
// ActiveFilterSet.
//
// The remote source carries no cooking-time or diet data, so those axes
// are keyword and name-length heuristics. They are kept exactly as the
// web client computed them so results match across clients.
package filter

import (
	"strings"
	"unicode/utf16"

	"github.com/pdiddy/recipe-finder/pkg/types"
)

var (
	// complexityKeywords mark a recipe as long-running regardless of name length.
	complexityKeywords = []string{"stuffed", "marinated", "slow", "braised", "roasted"}

	meatKeywords = []string{"beef", "chicken", "pork", "lamb", "fish", "salmon", "tuna", "shrimp", "turkey"}

	// animalProductKeywords extend meatKeywords for the vegan check.
	animalProductKeywords = []string{"cheese", "cream", "milk", "egg", "butter"}
)

const (
	longNameThreshold   = 25
	mediumNameThreshold = 15
)

// Apply returns the recipes that satisfy every set slot of filters, in
// their original order. The input slice is not modified.
func Apply(recipes []types.RecipeSummary, filters types.ActiveFilterSet) []types.RecipeSummary {
	out := make([]types.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		if Matches(r, filters) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether r passes all set slots of filters. Unset slots
// always pass.
func Matches(r types.RecipeSummary, filters types.ActiveFilterSet) bool {
	if filters.Category != "" && r.Category != filters.Category {
		return false
	}
	if filters.Area != "" && r.Area != filters.Area {
		return false
	}
	if filters.Diet != "" && !MatchesDiet(r, filters.Diet) {
		return false
	}
	if filters.CookingTime != "" && EstimateCookingTime(r.Name) != filters.CookingTime {
		return false
	}
	return true
}

// EstimateCookingTime buckets a recipe by its name: a complexity keyword
// or a name longer than 25 characters is long, longer than 15 is medium,
// anything else quick. Length counts UTF-16 code units.
func EstimateCookingTime(name string) types.CookingTime {
	lower := strings.ToLower(name)
	n := nameLength(name)
	switch {
	case containsAny(lower, complexityKeywords) || n > longNameThreshold:
		return types.CookingLong
	case n > mediumNameThreshold:
		return types.CookingMedium
	default:
		return types.CookingQuick
	}
}

// MatchesDiet applies the keyword diet heuristic to the lower-cased name
// and category. A category naming the diet itself overrides the keywords.
func MatchesDiet(r types.RecipeSummary, diet types.Diet) bool {
	name := strings.ToLower(r.Name)
	category := strings.ToLower(r.Category)

	switch diet {
	case types.DietVegetarian:
		hasMeat := containsAny(name, meatKeywords) || containsAny(category, meatKeywords)
		return !hasMeat || strings.Contains(category, "vegetarian")
	case types.DietVegan:
		hasAnimal := containsAny(name, meatKeywords) || containsAny(category, meatKeywords) ||
			containsAny(name, animalProductKeywords) || containsAny(category, animalProductKeywords)
		return !hasAnimal || strings.Contains(category, "vegan")
	default:
		return true
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func nameLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}
