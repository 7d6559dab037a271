package cli

import (
	"github.com/spf13/cobra"
)

type LoadOptions struct {
	DryRun bool
}

func NewLoadCmd() *cobra.Command {
	opts := &LoadOptions{}

	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Load the extract into ElasticSearch (default target)",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runLoad(c.Context(), opts, targetElastic, args[0])
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.DryRun, "dry-run", false, "Validate and report without publishing")

	elastic := &cobra.Command{
		Use:   "elastic <file>",
		Short: "Load the extract into ElasticSearch",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runLoad(c.Context(), opts, targetElastic, args[0])
		},
	}

	mongo := &cobra.Command{
		Use:   "mongo <file>",
		Short: "Load the extract into MongoDB",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runLoad(c.Context(), opts, targetMongo, args[0])
		},
	}

	sqlServer := &cobra.Command{
		Use:   "sqlserver <file>",
		Short: "Load the extract into SQL Server",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runLoad(c.Context(), opts, targetSQL, args[0])
		},
	}

	cmd.AddCommand(elastic, mongo, sqlServer)
	return cmd
}

func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate the extract and report errors without publishing",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runLoad(c.Context(), &LoadOptions{DryRun: true}, targetNone, args[0])
		},
	}
}
