// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recipe-finder/internal/favorites"
	"github.com/pdiddy/recipe-finder/internal/session"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "Manage favorite recipes (list, add, remove, toggle, export)",
	Long: `Favorites keeps a local, ordered list of recipes. The list is stored
under the data directory as recipe-favorites.json (file backend) or favorites.db
(sqlite backend) and survives restarts. Unreadable storage is treated as
an empty list.`,
}

// withFavorites runs fn with the configured favorites store open.
func withFavorites(cmd *cobra.Command, fn func(s *favorites.Store, cfg types.Config) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, release, err := openFavorites(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer release()
	return fn(s, cfg)
}

// --- list subcommand ---

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite recipes in the order they were added",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return withFavorites(cmd, func(s *favorites.Store, _ types.Config) error {
			list := s.List()
			if jsonOutput {
				return session.FormatJSON(os.Stdout, list)
			}
			if len(list) == 0 {
				fmt.Println("No favorites yet.")
				return nil
			}
			session.FormatRecipes(os.Stdout, list, nil)
			fmt.Fprintf(os.Stdout, "\n%d favorites\n", len(list))
			return nil
		})
	},
}

// --- add subcommand ---

var favoritesAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a recipe to favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFavorites(cmd, func(s *favorites.Store, cfg types.Config) error {
			if s.IsFavorite(args[0]) {
				fmt.Printf("%s is already a favorite\n", args[0])
				return nil
			}
			r, err := lookupSummary(cmd.Context(), newClient(cfg), args[0])
			if err != nil {
				return err
			}
			if err := s.Add(cmd.Context(), r); err != nil {
				return err
			}
			fmt.Printf("Added %s (%s)\n", r.Name, r.ID)
			return nil
		})
	},
}

// --- remove subcommand ---

var favoritesRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a recipe from favorites",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFavorites(cmd, func(s *favorites.Store, _ types.Config) error {
			if !s.IsFavorite(args[0]) {
				fmt.Printf("%s is not a favorite\n", args[0])
				return nil
			}
			if err := s.Remove(cmd.Context(), types.RecipeSummary{ID: args[0]}); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", args[0])
			return nil
		})
	},
}

// --- toggle subcommand ---

var favoritesToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Add a recipe to favorites, or remove it if already present",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withFavorites(cmd, func(s *favorites.Store, cfg types.Config) error {
			r := types.RecipeSummary{ID: args[0]}
			if !s.IsFavorite(r.ID) {
				var err error
				if r, err = lookupSummary(cmd.Context(), newClient(cfg), args[0]); err != nil {
					return err
				}
			}
			added, err := s.Toggle(cmd.Context(), r)
			if err != nil {
				return err
			}
			if added {
				fmt.Printf("Added %s (%s)\n", r.Name, r.ID)
			} else {
				fmt.Printf("Removed %s\n", r.ID)
			}
			return nil
		})
	},
}

// --- export subcommand ---

var favoritesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export favorites to stdout as YAML or JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return withFavorites(cmd, func(s *favorites.Store, _ types.Config) error {
			return s.Export(os.Stdout, format)
		})
	},
}

func init() {
	favoritesListCmd.Flags().Bool("json", false, "output favorites as JSON")
	favoritesExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesToggleCmd)
	favoritesCmd.AddCommand(favoritesExportCmd)

	rootCmd.AddCommand(favoritesCmd)
}
