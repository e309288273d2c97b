// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recipe-finder/internal/session"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <ingredient...>",
	Short: "Search recipes by main ingredient",
	Long: `Search queries the recipe service for recipes that use the given
ingredient, then narrows the results with the filter flags. Filters are
matched locally: category and area exactly, cooking time and diet by
heuristics over the recipe name and category.

Use --save to keep the raw results in a YAML file and --load to refilter a
saved search without querying the service again.`,
	Example: `  recipe-finder search chicken
  recipe-finder search chicken --area Indian --time quick
  recipe-finder search beef --save beef.yaml
  recipe-finder search --load beef.yaml --diet vegetarian`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	loadPath, _ := cmd.Flags().GetString("load")
	savePath, _ := cmd.Flags().GetString("save")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if loadPath == "" && len(args) == 0 {
		return fmt.Errorf("ingredient required: %w", types.ErrInvalidInput)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	filters, changed, err := filtersFromFlags(cmd)
	if err != nil {
		return err
	}

	favs, release, err := openFavorites(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()

	ctrl := session.NewSearchController(newClient(cfg), logger)

	if loadPath != "" {
		ss, err := session.ReadSavedSearch(loadPath)
		if err != nil {
			return err
		}
		if err := ss.RestoreInto(ctrl, filters, changed); err != nil {
			return err
		}
	} else {
		if err := ctrl.SetFilters(filters); err != nil {
			return err
		}
		if err := ctrl.Search(ctx, strings.Join(args, " ")); err != nil {
			if msg := ctrl.Snapshot().Message; msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			return err
		}
	}

	snap := ctrl.Snapshot()
	if savePath != "" {
		if err := session.WriteSavedSearch(savePath, snap); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved search to %s\n", savePath)
	}

	if jsonOutput {
		return session.FormatJSON(os.Stdout, snap)
	}
	session.FormatResults(os.Stdout, snap, favs.IsFavorite)
	return nil
}

// filtersFromFlags builds the filter set from the axis flags, which are
// named after their axis. changed reports whether any axis flag was given.
func filtersFromFlags(cmd *cobra.Command) (types.ActiveFilterSet, bool, error) {
	var (
		f       types.ActiveFilterSet
		changed bool
		err     error
	)
	for _, axis := range types.Axes {
		name := string(axis)
		if !cmd.Flags().Changed(name) {
			continue
		}
		changed = true
		v, _ := cmd.Flags().GetString(name)
		if f, err = f.With(axis, strings.TrimSpace(v)); err != nil {
			return f, changed, fmt.Errorf("--%s: %w", name, err)
		}
	}
	return f, changed, nil
}

func init() {
	searchCmd.Flags().String("category", "", "filter by category (see 'recipe-finder filters')")
	searchCmd.Flags().String("area", "", "filter by cuisine area")
	searchCmd.Flags().String("time", "", "filter by estimated cooking time: quick, medium, or long")
	searchCmd.Flags().String("diet", "", "filter by diet: vegetarian, vegan, or none")
	searchCmd.Flags().Bool("json", false, "output the session state as JSON")
	searchCmd.Flags().String("save", "", "save the search and its results to a YAML file")
	searchCmd.Flags().String("load", "", "reload a saved search instead of querying the service")

	rootCmd.AddCommand(searchCmd)
}
