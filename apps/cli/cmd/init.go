package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/reqq/packages/core/config"
	"github.com/spf13/cobra"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new reqq root",
		Long: `Initialize a new reqq root in the given directory (default: current).

This creates:
  - .reqq.yaml          - Configuration file
  - envs/dev.json       - Development environment
  - envs/prod.yaml      - Production environment
  - health.http         - Example request
  - users/create.http   - Example request with a JSON body

Examples:
  reqq init
  reqq init ./api --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return initRoot(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")
	return cmd
}

var initFiles = []struct {
	name    string
	content string
}{
	{
		name: "envs/dev.json",
		content: `{
  "baseUrl": "http://localhost:3000",
  "token": "dev-token",
  "user": {
    "name": "Ada Lovelace",
    "email": "ada@example.com"
  }
}
`,
	},
	{
		name: "envs/prod.yaml",
		content: `baseUrl: https://api.example.com
token: replace-me
user:
  name: Grace Hopper
  email: grace@example.com
`,
	},
	{
		name: "health.http",
		content: `GET {{baseUrl}}/health
Accept: application/json
`,
	},
	{
		name: "users/create.http",
		content: `POST {{ baseUrl }}/users
Authorization: Bearer {{ token }}
Content-Type: application/json

{"name": "{{ user.name }}", "email": "{{ user.email }}"}
`,
	},
}

func initRoot(cmd *cobra.Command, dir string, force bool) error {
	configFile := filepath.Join(dir, config.ConfigName+".yaml")

	targets := []string{configFile}
	for _, f := range initFiles {
		targets = append(targets, filepath.Join(dir, filepath.FromSlash(f.name)))
	}

	if !force {
		for _, f := range targets {
			if _, err := os.Stat(f); err == nil {
				return &usageError{msg: fmt.Sprintf("file already exists: %s (use --force to overwrite)", f)}
			}
		}
	}

	cfg := config.DefaultConfig()
	cfg.Root = ""
	cfg.DefaultEnvironment = "dev"
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := cfg.SaveConfig(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)

	for i, f := range initFiles {
		path := targets[i+1]
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nreqq root initialized!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'reqq exec users/create' to resolve the example request.\n")

	return nil
}
