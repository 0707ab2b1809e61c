package cmd

import (
	"github.com/spf13/cobra"
)

func newShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <request>",
		Short: "Show the placeholders of a request and which environments satisfy them",
		Long: `Show the placeholder keys a request template uses and, for every
environment, which keys are missing or hold objects/arrays instead of
scalar values.

Examples:
  reqq show users/get
  reqq show users/get -o json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeRequests(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.openCatalog()
			if err != nil {
				return err
			}
			ins, err := c.Inspect(args[0])
			if err != nil {
				return err
			}
			opts.formatter.FormatInspection(ins)
			return nil
		},
	}
}
