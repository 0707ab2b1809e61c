// Package cmd implements the reqq CLI commands using Cobra.
//
// Available commands:
//   - list, envs: Show request and environment names under the root
//   - exec: Resolve a request template against an environment
//   - show: Report placeholders and per-environment coverage
//   - validate: Check every template and environment document
//   - history: Show recorded executions
//   - init: Scaffold a new root with example files
//
// Every error kind maps to its own exit code, see exitcodes.go.
package cmd
