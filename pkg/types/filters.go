// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"slices"
	"strings"
)

// FilterAxis names one of the four independent filter slots.
type FilterAxis string

const (
	AxisCategory    FilterAxis = "category"
	AxisArea        FilterAxis = "area"
	AxisCookingTime FilterAxis = "time"
	AxisDiet        FilterAxis = "diet"
)

// Axes lists the filter axes in display order.
var Axes = []FilterAxis{AxisCategory, AxisArea, AxisCookingTime, AxisDiet}

// CookingTime is the estimated preparation bucket of a recipe.
type CookingTime string

const (
	CookingQuick  CookingTime = "quick"
	CookingMedium CookingTime = "medium"
	CookingLong   CookingTime = "long"
)

// Diet is a dietary restriction applied by the diet axis.
type Diet string

const (
	DietVegetarian Diet = "vegetarian"
	DietVegan      Diet = "vegan"
	DietNone       Diet = "none"
)

// Option pairs a filter value with its display label.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Categories is the fixed category vocabulary offered by the filter panel.
var Categories = []string{
	"Beef", "Chicken", "Dessert", "Lamb", "Miscellaneous", "Pasta", "Pork",
	"Seafood", "Side", "Starter", "Vegan", "Vegetarian", "Breakfast", "Goat",
}

// Areas is the fixed cuisine vocabulary offered by the filter panel.
var Areas = []string{
	"American", "British", "Canadian", "Chinese", "Croatian", "Dutch",
	"Egyptian", "French", "Greek", "Indian", "Irish", "Italian", "Jamaican",
	"Japanese", "Kenyan", "Malaysian", "Mexican", "Moroccan", "Polish",
	"Portuguese", "Russian", "Spanish", "Thai", "Tunisian", "Turkish", "Vietnamese",
}

// CookingTimes lists the cooking-time buckets with their labels.
var CookingTimes = []Option{
	{Value: string(CookingQuick), Label: "Quick (15 min)"},
	{Value: string(CookingMedium), Label: "Medium (30 min)"},
	{Value: string(CookingLong), Label: "Long (45+ min)"},
}

// Diets lists the diet options with their labels.
var Diets = []Option{
	{Value: string(DietVegetarian), Label: "Vegetarian"},
	{Value: string(DietVegan), Label: "Vegan"},
	{Value: string(DietNone), Label: "No Restrictions"},
}

// ParseAxis maps a user-supplied axis name to a FilterAxis. "cuisine" and
// "cooking-time" are accepted as aliases.
func ParseAxis(s string) (FilterAxis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "category":
		return AxisCategory, nil
	case "area", "cuisine":
		return AxisArea, nil
	case "time", "cooking-time", "cookingtime":
		return AxisCookingTime, nil
	case "diet":
		return AxisDiet, nil
	}
	return "", fmt.Errorf("unknown filter axis %q: %w", s, ErrInvalidInput)
}

// Vocabulary returns the allowed values for an axis.
func (a FilterAxis) Vocabulary() []string {
	switch a {
	case AxisCategory:
		return Categories
	case AxisArea:
		return Areas
	case AxisCookingTime:
		return optionValues(CookingTimes)
	case AxisDiet:
		return optionValues(Diets)
	}
	return nil
}

// Options returns the vocabulary of an axis with display labels. Category
// and area values are their own labels.
func (a FilterAxis) Options() []Option {
	switch a {
	case AxisCookingTime:
		return CookingTimes
	case AxisDiet:
		return Diets
	}
	vals := a.Vocabulary()
	out := make([]Option, len(vals))
	for i, v := range vals {
		out[i] = Option{Value: v, Label: v}
	}
	return out
}

func optionValues(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Value
	}
	return out
}

// ActiveFilterSet is the four-axis filter configuration. An empty string
// means the slot is unset. Each slot holds at most one value.
type ActiveFilterSet struct {
	Category    string      `json:"category,omitempty" yaml:"category,omitempty"`
	Area        string      `json:"area,omitempty" yaml:"area,omitempty"`
	CookingTime CookingTime `json:"cooking_time,omitempty" yaml:"cooking_time,omitempty"`
	Diet        Diet        `json:"diet,omitempty" yaml:"diet,omitempty"`
}

// Get returns the value held by axis, or "" when unset.
func (f ActiveFilterSet) Get(axis FilterAxis) string {
	switch axis {
	case AxisCategory:
		return f.Category
	case AxisArea:
		return f.Area
	case AxisCookingTime:
		return string(f.CookingTime)
	case AxisDiet:
		return string(f.Diet)
	}
	return ""
}

// With returns a copy of f with axis set to value. An empty value clears
// the axis. The value must belong to the axis vocabulary.
func (f ActiveFilterSet) With(axis FilterAxis, value string) (ActiveFilterSet, error) {
	if value != "" && !slices.Contains(axis.Vocabulary(), value) {
		return f, fmt.Errorf("%q is not a valid %s filter: %w", value, axis, ErrInvalidInput)
	}
	switch axis {
	case AxisCategory:
		f.Category = value
	case AxisArea:
		f.Area = value
	case AxisCookingTime:
		f.CookingTime = CookingTime(value)
	case AxisDiet:
		f.Diet = Diet(value)
	default:
		return f, fmt.Errorf("unknown filter axis %q: %w", axis, ErrInvalidInput)
	}
	return f, nil
}

// Toggle selects value on axis, or clears the axis if it already holds
// value. Selection is single-valued per axis.
func (f ActiveFilterSet) Toggle(axis FilterAxis, value string) (ActiveFilterSet, error) {
	if value == "" {
		return f, fmt.Errorf("empty %s filter value: %w", axis, ErrInvalidInput)
	}
	if f.Get(axis) == value {
		return f.With(axis, "")
	}
	return f.With(axis, value)
}

// Validate reports whether every set slot holds a value from its vocabulary.
func (f ActiveFilterSet) Validate() error {
	for _, axis := range Axes {
		v := f.Get(axis)
		if v != "" && !slices.Contains(axis.Vocabulary(), v) {
			return fmt.Errorf("%q is not a valid %s filter: %w", v, axis, ErrInvalidInput)
		}
	}
	return nil
}

// ActiveCount returns the number of set slots.
func (f ActiveFilterSet) ActiveCount() int {
	n := 0
	for _, axis := range Axes {
		if f.Get(axis) != "" {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no slot is set.
func (f ActiveFilterSet) IsEmpty() bool {
	return f.ActiveCount() == 0
}

// Clear returns a set with every axis unset.
func (f ActiveFilterSet) Clear() ActiveFilterSet {
	return ActiveFilterSet{}
}

// String renders the set slots as "axis=value" pairs.
func (f ActiveFilterSet) String() string {
	var parts []string
	for _, axis := range Axes {
		if v := f.Get(axis); v != "" {
			parts = append(parts, string(axis)+"="+v)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
