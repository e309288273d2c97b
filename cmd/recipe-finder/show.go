// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recipe-finder/internal/session"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the full details of a recipe",
	Long: `Show fetches one recipe by id and prints its ingredients, instructions
and links. Favorites are marked with "*". Details are fetched on every
call and never cached.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	favs, release, err := openFavorites(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()

	view := session.NewDetailController(newClient(cfg), logger)
	defer view.Close()

	if err := view.Open(ctx, types.RecipeSummary{ID: args[0]}); err != nil {
		if msg := view.Snapshot().Message; msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		return err
	}

	snap := view.Snapshot()
	if jsonOutput {
		return session.FormatJSON(os.Stdout, snap.Detail)
	}
	session.FormatDetail(os.Stdout, snap.Detail, favs.IsFavorite(snap.Detail.ID))
	return nil
}

func init() {
	showCmd.Flags().Bool("json", false, "output the recipe as JSON")

	rootCmd.AddCommand(showCmd)
}
