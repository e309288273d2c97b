// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/recipe-finder/internal/filter"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

// FormatResults writes the filtered view of snap as a table, preceded by
// the active filters and followed by the "Showing N of M" summary.
// isFavorite may be nil.
func FormatResults(w io.Writer, snap SearchSnapshot, isFavorite func(id string) bool) {
	if !snap.Filters.IsEmpty() {
		fmt.Fprintf(w, "Filters (%d): %s\n\n", snap.Filters.ActiveCount(), snap.Filters)
	}
	if len(snap.Filtered) == 0 {
		if len(snap.Raw) == 0 {
			fmt.Fprintln(w, "No recipes found.")
		} else {
			fmt.Fprintln(w, "No recipes match the selected filters.")
		}
		fmt.Fprintln(w, snap.Summary())
		return
	}

	FormatRecipes(w, snap.Filtered, isFavorite)
	fmt.Fprintf(w, "\n%s\n", snap.Summary())
}

// FormatRecipes writes recipes as a table. A "*" marks favorites.
func FormatRecipes(w io.Writer, recipes []types.RecipeSummary, isFavorite func(id string) bool) {
	fmt.Fprintf(w, "%-1s  %-8s  %-40s  %-14s  %-12s  %s\n",
		"", "ID", "Name", "Category", "Area", "Time")
	fmt.Fprintln(w, strings.Repeat("-", 92))

	for _, r := range recipes {
		mark := ""
		if isFavorite != nil && isFavorite(r.ID) {
			mark = "*"
		}
		fmt.Fprintf(w, "%-1s  %-8s  %-40s  %-14s  %-12s  %s\n",
			mark, r.ID, truncate(r.Name, 40), truncate(r.Category, 14),
			truncate(r.Area, 12), filter.EstimateCookingTime(r.Name))
	}
}

// FormatDetail writes a recipe detail as plain text.
func FormatDetail(w io.Writer, d *types.RecipeDetail, favorite bool) {
	title := d.Name
	if favorite {
		title += " *"
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(title))))

	var tags []string
	if d.Category != "" {
		tags = append(tags, d.Category)
	}
	if d.Area != "" {
		tags = append(tags, d.Area)
	}
	tags = append(tags, d.Tags...)
	if len(tags) > 0 {
		fmt.Fprintf(w, "%s\n", strings.Join(tags, " | "))
	}
	fmt.Fprintf(w, "ID: %s\n", d.ID)
	if d.Thumbnail != "" {
		fmt.Fprintf(w, "Image: %s\n", d.Thumbnail)
	}

	fmt.Fprintf(w, "\nIngredients (%d):\n", len(d.Ingredients))
	for _, ing := range d.Ingredients {
		if ing.Measure != "" {
			fmt.Fprintf(w, "  - %s %s\n", ing.Measure, ing.Name)
		} else {
			fmt.Fprintf(w, "  - %s\n", ing.Name)
		}
	}

	if d.Instructions != "" {
		fmt.Fprintf(w, "\nInstructions:\n%s\n", strings.TrimSpace(d.Instructions))
	}
	if d.VideoURL != "" {
		fmt.Fprintf(w, "\nVideo: %s\n", d.VideoURL)
	}
	if d.SourceURL != "" {
		fmt.Fprintf(w, "Source: %s\n", d.SourceURL)
	}
}

// FormatJSON writes v as indented JSON.
func FormatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
