package cmd

import (
	"errors"
	"path/filepath"

	"github.com/abdul-hamid-achik/reqq/packages/core/env"
	"github.com/spf13/cobra"
)

var errValidationFailed = errors.New("validation failed")

func newValidateCmd(opts *globalOptions) *cobra.Command {
	var schemaFlag string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate request templates and environments",
		Long: `Validate every request template for placeholder syntax and every
environment for a well-formed document, without resolving anything.

Environments are also checked against a JSON Schema when --schema or
env_schema in the config is set. Relative schema paths are resolved
against the root.

Examples:
  reqq validate
  reqq validate --schema envs.schema.json -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.openCatalog()
			if err != nil {
				return err
			}

			schemaPath := opts.cfg.EnvSchema
			if cmd.Flags().Changed("schema") {
				schemaPath = schemaFlag
			}

			var validator *env.SchemaValidator
			if schemaPath != "" {
				if !filepath.IsAbs(schemaPath) {
					schemaPath = filepath.Join(c.Root(), schemaPath)
				}
				validator, err = env.NewSchemaValidator(schemaPath)
				if err != nil {
					return &configError{err: err}
				}
			}

			results := c.Validate(validator)
			opts.formatter.FormatValidation(results)

			for _, r := range results {
				if r.Err != nil {
					return errValidationFailed
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaFlag, "schema", "", "JSON Schema that every environment must satisfy")
	return cmd
}
