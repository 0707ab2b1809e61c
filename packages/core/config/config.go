package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// HistoryConfig controls the execution history database.
type HistoryConfig struct {
	Enabled *bool  `mapstructure:"enabled" yaml:"enabled,omitempty"`
	Path    string `mapstructure:"path" yaml:"path,omitempty"`
}

// Config represents the reqq configuration
type Config struct {
	Root               string        `mapstructure:"root" yaml:"root,omitempty"`
	DefaultEnvironment string        `mapstructure:"default_environment" yaml:"default_environment,omitempty"`
	RequestExtensions  []string      `mapstructure:"request_extensions" yaml:"request_extensions,omitempty"`
	EnvSchema          string        `mapstructure:"env_schema" yaml:"env_schema,omitempty"` // JSON Schema for environment documents
	Output             string        `mapstructure:"output" yaml:"output,omitempty"`         // console or json
	NoColor            *bool         `mapstructure:"no_color" yaml:"no_color,omitempty"`
	LogLevel           string        `mapstructure:"log_level" yaml:"log_level,omitempty"`
	LogFormat          string        `mapstructure:"log_format" yaml:"log_format,omitempty"`
	History            HistoryConfig `mapstructure:"history" yaml:"history,omitempty"`
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetHistoryEnabled returns whether executions are recorded, defaulting to false
func (c *Config) GetHistoryEnabled() bool {
	return getBool(c.History.Enabled, false)
}

// ConfigName is the base name searched for in each config directory; viper
// tries every supported extension.
const ConfigName = ".reqq"

// EnvPrefix is prepended to environment variable overrides, e.g.
// REQQ_DEFAULT_ENVIRONMENT or REQQ_HISTORY_ENABLED.
const EnvPrefix = "REQQ"

// LoadConfig loads configuration from the specified path or searches dirs,
// then the current directory and the home directory
func LoadConfig(path string, dirs ...string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	dirs = append(dirs, ".")
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return FindAndLoadConfig(dirs...)
}

// FindAndLoadConfig searches for a config file in the given directories, in
// order. Defaults and environment overrides apply when none is found.
func FindAndLoadConfig(dirs ...string) (*Config, error) {
	v := newViper()
	v.SetConfigName(ConfigName)
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return decode(v)
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Root != "" {
		result.Root = other.Root
	}
	if other.DefaultEnvironment != "" {
		result.DefaultEnvironment = other.DefaultEnvironment
	}
	if other.EnvSchema != "" {
		result.EnvSchema = other.EnvSchema
	}
	if other.Output != "" {
		result.Output = other.Output
	}
	if other.LogLevel != "" {
		result.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		result.LogFormat = other.LogFormat
	}
	if other.History.Path != "" {
		result.History.Path = other.History.Path
	}

	// Boolean flags - only override if explicitly set in other config
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.History.Enabled != nil {
		result.History.Enabled = other.History.Enabled
	}

	if len(other.RequestExtensions) > 0 {
		result.RequestExtensions = other.RequestExtensions
	}

	return &result
}

// SaveConfig saves the configuration to a YAML file
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
