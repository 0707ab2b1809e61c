package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abdul-hamid-achik/reqq/packages/core/catalog"
	"github.com/abdul-hamid-achik/reqq/packages/core/config"
	"github.com/abdul-hamid-achik/reqq/packages/logging"
	"github.com/abdul-hamid-achik/reqq/packages/output"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// globalOptions holds persistent flags and everything derived from them
// once a command starts.
type globalOptions struct {
	root       string
	configPath string
	output     string
	noColor    bool
	verbose    int // 0=off, 1=-v (debug logs), 2=-vv
	logFormat  string

	cfg       *config.Config
	logger    *slog.Logger
	formatter output.Formatter
}

// NewRootCommand builds the reqq command tree.
func NewRootCommand() *cobra.Command {
	rootCmd, _ := newRootCommand()
	return rootCmd
}

func newRootCommand() (*cobra.Command, *globalOptions) {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "reqq",
		Short: "Request templates and environments, resolved from plain files.",
		Long: `reqq keeps HTTP request templates as plain files and fills their
{{placeholders}} from named environments stored under envs/.

Layout:
  <root>/users/get.http    request "users/get"
  <root>/envs/prod.json    environment "prod"`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.root, "root", "r", "", "Root directory of requests and envs/ (env: REQQ_ROOT)")
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default .reqq.yaml in root, cwd or home)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output format: console, json (env: REQQ_OUTPUT)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output (env: REQQ_NO_COLOR)")
	flags.CountVarP(&opts.verbose, "verbose", "v", "Verbose output (-v, -vv for debug logs)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: text, json (env: REQQ_LOG_FORMAT)")

	rootCmd.AddCommand(
		newListCmd(opts),
		newEnvsCmd(opts),
		newExecCmd(opts),
		newShowCmd(opts),
		newValidateCmd(opts),
		newHistoryCmd(opts),
		newInitCmd(opts),
		newCompletionCmd(),
		newDocsCmd(),
		newVersionCmd(),
	)

	return rootCmd, opts
}

func (o *globalOptions) setup(cmd *cobra.Command) error {
	var searchDirs []string
	if o.root != "" {
		searchDirs = append(searchDirs, o.root)
	}

	cfg, err := config.LoadConfig(o.configPath, searchDirs...)
	if err != nil {
		return &configError{err: err}
	}

	overrides := &config.Config{
		Root:      o.root,
		Output:    o.output,
		LogFormat: o.logFormat,
	}
	if cmd.Flags().Changed("no-color") {
		overrides.NoColor = config.BoolPtr(o.noColor)
	}
	if o.verbose > 1 {
		overrides.LogLevel = "debug"
	} else if o.verbose == 1 {
		overrides.LogLevel = "info"
	}
	o.cfg = cfg.Merge(overrides)

	o.logger = logging.New(o.cfg.LogLevel, o.cfg.LogFormat, cmd.ErrOrStderr())

	formatter, err := output.New(o.cfg.Output,
		output.WithWriter(cmd.OutOrStdout()),
		output.WithErrorWriter(cmd.ErrOrStderr()),
		output.WithVerbose(o.verbose > 0),
		output.WithNoColor(o.cfg.GetNoColor()),
	)
	if err != nil {
		return &configError{err: err}
	}
	o.formatter = formatter

	o.logger.Debug("configuration loaded", "root", o.cfg.Root, "output", o.cfg.Output)
	return nil
}

func (o *globalOptions) openCatalog() (*catalog.Catalog, error) {
	return catalog.New(o.cfg.Root,
		catalog.WithLogger(o.logger),
		catalog.WithRequestExtensions(o.cfg.RequestExtensions),
	)
}

// reportError prints err through the active formatter when one exists.
func (o *globalOptions) reportError(w io.Writer, err error) {
	if o.formatter != nil {
		o.formatter.FormatError(err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func Execute(v, bt string) {
	version = v
	buildTime = bt

	rootCmd, opts := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		opts.reportError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
