// Package config handles configuration loading and management for reqq.
//
// It provides functionality for:
//   - Loading configuration from .reqq.yaml, .reqq.json or .reqq.toml
//   - REQQ_* environment variable overrides
//   - Default configuration values
package config
