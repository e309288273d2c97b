package session

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/recipe-finder/pkg/types"
)

func TestFormatResults(t *testing.T) {
	snap := SearchSnapshot{
		Status:   StatusPopulated,
		Query:    "beef",
		Filters:  types.ActiveFilterSet{Area: "British"},
		Raw:      beefResults,
		Filtered: []types.RecipeSummary{wellington, mustardPie},
	}
	fav := func(id string) bool { return id == mustardPie.ID }

	var buf bytes.Buffer
	FormatResults(&buf, snap, fav)
	out := buf.String()

	assert.Contains(t, out, "Filters (1): area=British")
	assert.Contains(t, out, "Beef Wellington")
	assert.NotContains(t, out, "Szechuan")
	assert.Contains(t, out, "Showing 2 of 3 recipes")

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Mustard Pie") {
			assert.True(t, strings.HasPrefix(line, "*"), "favorite marked: %q", line)
			assert.True(t, strings.HasSuffix(line, "medium"), "estimate shown: %q", line)
		}
		if strings.Contains(line, "Wellington") {
			assert.False(t, strings.HasPrefix(line, "*"))
		}
	}
}

func TestFormatResults_Empty(t *testing.T) {
	tests := []struct {
		name string
		snap SearchSnapshot
		want string
	}{
		{"no results", SearchSnapshot{}, "No recipes found."},
		{"all filtered out", SearchSnapshot{Raw: beefResults, Filters: types.ActiveFilterSet{Area: "Thai"}}, "No recipes match the selected filters."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatResults(&buf, tt.snap, nil)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestFormatDetail(t *testing.T) {
	d := wellingtonDetail()
	d.Tags = []string{"Meat", "Christmas"}
	d.VideoURL = "https://www.youtube.com/watch?v=FS8u1RBdf6I"

	var buf bytes.Buffer
	FormatDetail(&buf, d, true)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Beef Wellington *\n=================\n"))
	assert.Contains(t, out, "Beef | British | Meat | Christmas")
	assert.Contains(t, out, "Ingredients (2):")
	assert.Contains(t, out, "  - 400g mushrooms")
	assert.Contains(t, out, "Instructions:\nPut the mushrooms")
	assert.Contains(t, out, "Video: https://www.youtube.com/")
	assert.NotContains(t, out, "Source:")
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(&buf, []types.RecipeSummary{szechuan}))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "52952", got[0]["idMeal"])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "Crème ...", truncate("Crème brûlée maison", 9))
}
