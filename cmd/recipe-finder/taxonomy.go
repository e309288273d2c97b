// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recipe-finder/internal/mealdb"
	"github.com/pdiddy/recipe-finder/internal/session"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

var taxonomyCmd = &cobra.Command{
	Use:       "taxonomy [categories|areas]",
	Short:     "List the categories and areas offered by the recipe service",
	ValidArgs: []string{"categories", "areas"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE:      runTaxonomy,
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	var tax mealdb.Taxonomy
	switch {
	case len(args) == 0:
		tax = client.ListAllTaxonomies(cmd.Context())
	case args[0] == "categories":
		tax.Categories = client.ListTaxonomy(cmd.Context(), mealdb.TaxonomyCategory)
	case args[0] == "areas":
		tax.Areas = client.ListTaxonomy(cmd.Context(), mealdb.TaxonomyArea)
	default:
		return fmt.Errorf("unknown taxonomy %q: %w", args[0], types.ErrInvalidInput)
	}

	if jsonOutput {
		return session.FormatJSON(os.Stdout, tax)
	}
	if tax.Categories != nil {
		printList("Categories", tax.Categories)
	}
	if tax.Areas != nil {
		printList("Areas", tax.Areas)
	}
	return nil
}

func printList(title string, names []string) {
	fmt.Printf("%s (%d):\n", title, len(names))
	if len(names) == 0 {
		fmt.Println("  (unavailable)")
		return
	}
	fmt.Printf("  %s\n", strings.Join(names, ", "))
}

func init() {
	taxonomyCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(taxonomyCmd)
}
