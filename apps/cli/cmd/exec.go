package cmd

import (
	"context"
	"path/filepath"
	"time"

	"github.com/abdul-hamid-achik/reqq/packages/history"
	"github.com/abdul-hamid-achik/reqq/packages/output"
	"github.com/spf13/cobra"
)

type execOptions struct {
	env    string
	noEnv  bool
	watch  bool
	record bool
}

func newExecCmd(opts *globalOptions) *cobra.Command {
	eo := &execOptions{}

	cmd := &cobra.Command{
		Use:     "exec <request>",
		Aliases: []string{"run"},
		Short:   "Resolve a request template and print it",
		Long: `Resolve the placeholders of a request template using an environment
and print the result. Without an environment the template is printed as-is.

The environment defaults to default_environment from the config file;
--no-env ignores it.

Examples:
  reqq exec users/get
  reqq exec users/get --env prod
  reqq exec users/get -e staging --watch
  reqq exec users/get -e prod | curl -K -`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeRequests(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			envName := eo.environment(cmd, opts)
			if eo.watch {
				return opts.watch(cmd.Context(), cmd, args[0], envName, eo.record)
			}
			return opts.execOnce(cmd.Context(), args[0], envName, eo.record)
		},
	}

	cmd.Flags().StringVarP(&eo.env, "env", "e", "", "Environment to resolve placeholders with")
	cmd.Flags().BoolVar(&eo.noEnv, "no-env", false, "Print the template without resolving, ignoring default_environment")
	cmd.Flags().BoolVarP(&eo.watch, "watch", "w", false, "Watch the root for changes and resolve again")
	cmd.Flags().BoolVar(&eo.record, "record", false, "Record this execution in the history database")
	cmd.MarkFlagsMutuallyExclusive("env", "no-env")
	_ = cmd.RegisterFlagCompletionFunc("env", completeEnvironments(opts))

	return cmd
}

// environment picks the environment name: --env, then the configured
// default, unless --no-env is set.
func (eo *execOptions) environment(cmd *cobra.Command, opts *globalOptions) string {
	if eo.noEnv {
		return ""
	}
	if cmd.Flags().Changed("env") {
		return eo.env
	}
	return opts.cfg.DefaultEnvironment
}

// execOnce builds a fresh catalog, resolves one request and prints it.
func (o *globalOptions) execOnce(ctx context.Context, requestName, envName string, record bool) error {
	c, err := o.openCatalog()
	if err != nil {
		return err
	}

	start := time.Now()
	text, execErr := c.Execute(requestName, envName)
	took := time.Since(start)

	if record || o.cfg.GetHistoryEnabled() {
		o.recordHistory(ctx, history.NewEntry(requestName, envName, text, execErr, took))
	}
	if execErr != nil {
		return execErr
	}

	o.formatter.FormatExecution(&output.Execution{
		Request:     requestName,
		Environment: envName,
		Text:        text,
		Duration:    took,
	})
	return nil
}

// recordHistory stores e. Failures are logged, never returned.
func (o *globalOptions) recordHistory(ctx context.Context, e history.Entry) {
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := history.Open(o.historyPath())
	if err != nil {
		o.logger.Warn("history unavailable", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(ctx, e); err != nil {
		o.logger.Warn("failed to record execution", "error", err)
	}
}

func (o *globalOptions) historyPath() string {
	if filepath.IsAbs(o.cfg.History.Path) {
		return o.cfg.History.Path
	}
	return filepath.Join(o.cfg.Root, o.cfg.History.Path)
}
