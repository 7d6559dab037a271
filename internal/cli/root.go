// Package cli wires the command-line interface using the Cobra library.
package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "finess",
		Short: "finess - FINESS registry loader",
		Long: `finess validates the FINESS establishment extract (Latin-1, ';' separated),
reports column errors and empty values, and publishes one card per
establishment into ElasticSearch, MongoDB or SQL Server.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(NewLoadCmd(), NewCheckCmd())

	return rootCmd
}
