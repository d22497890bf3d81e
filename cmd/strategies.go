package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guimove/workmap/internal/simulation"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the available mapping strategies",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range simulation.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s MAPPING\n", s.Name(), s.Label())
		}
	},
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}
