package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/abdul-hamid-achik/reqq/packages/history"
	"github.com/spf13/cobra"
)

func newHistoryCmd(opts *globalOptions) *cobra.Command {
	var (
		limit    int
		request  string
		envName  string
		clearAll bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded executions",
		Long: `Show executions recorded in the history database, newest first.

Executions are recorded when history.enabled is set in the config or when
exec runs with --record. Only metadata and a SHA-256 digest of the resolved
text are stored.

Examples:
  reqq history
  reqq history --request users/get --limit 5
  reqq history --clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return &usageError{msg: "--limit must not be negative"}
			}

			path := opts.historyPath()
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				opts.formatter.FormatHistory(nil)
				return nil
			}

			store, err := history.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			if clearAll {
				n, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d entries\n", n)
				return nil
			}

			entries, err := store.List(cmd.Context(), history.Filter{
				Request:     request,
				Environment: envName,
				Limit:       limit,
			})
			if err != nil {
				return err
			}
			opts.formatter.FormatHistory(entries)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries (0 for all)")
	cmd.Flags().StringVar(&request, "request", "", "Only show executions of this request")
	cmd.Flags().StringVarP(&envName, "env", "e", "", "Only show executions with this environment")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Delete all recorded executions")
	_ = cmd.RegisterFlagCompletionFunc("request", completeRequests(opts))
	_ = cmd.RegisterFlagCompletionFunc("env", completeEnvironments(opts))

	return cmd
}
