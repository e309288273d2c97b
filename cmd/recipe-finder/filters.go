package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/recipe-finder/internal/session"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Print the values accepted by each search filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			out := make(map[types.FilterAxis][]types.Option, len(types.Axes))
			for _, axis := range types.Axes {
				out[axis] = axis.Options()
			}
			return session.FormatJSON(os.Stdout, out)
		}

		for _, axis := range types.Axes {
			fmt.Printf("--%s\n", axis)
			for _, o := range axis.Options() {
				if o.Label != o.Value {
					fmt.Printf("  %-14s  %s\n", o.Value, o.Label)
				} else {
					fmt.Printf("  %s\n", o.Value)
				}
			}
		}
		return nil
	},
}

func init() {
	filtersCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(filtersCmd)
}
