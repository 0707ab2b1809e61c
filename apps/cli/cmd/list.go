package cmd

import (
	"github.com/spf13/cobra"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List request templates",
		Long: `List the names of all request templates below the root.

Names are file paths relative to the root without their extension.

Examples:
  reqq list
  reqq list --root ./api -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.openCatalog()
			if err != nil {
				return err
			}
			opts.formatter.FormatNames("requests", c.RequestNames())
			return nil
		},
	}
}

func newEnvsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "envs",
		Short: "List environments",
		Long: `List the names of all environments in the envs/ directory.

Examples:
  reqq envs
  reqq envs -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.openCatalog()
			if err != nil {
				return err
			}
			opts.formatter.FormatNames("environments", c.EnvironmentNames())
			return nil
		},
	}
}

// completeRequests offers request names for shell completion.
func completeRequests(opts *globalOptions) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		if err := opts.setup(cmd); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		c, err := opts.openCatalog()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return c.RequestNames(), cobra.ShellCompDirectiveNoFileComp
	}
}

// completeEnvironments offers environment names for shell completion.
func completeEnvironments(opts *globalOptions) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if err := opts.setup(cmd); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		c, err := opts.openCatalog()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return c.EnvironmentNames(), cobra.ShellCompDirectiveNoFileComp
	}
}
