package config

import (
	"github.com/abdul-hamid-achik/reqq/packages/core/naming"
	"github.com/spf13/viper"
)

// DefaultHistoryPath is relative to the root; the leading dot keeps the
// database out of the catalog scan.
const DefaultHistoryPath = ".reqq/history.db"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Root:               ".",
		DefaultEnvironment: "",
		RequestExtensions:  append([]string(nil), naming.DefaultRequestExtensions...),
		EnvSchema:          "",
		Output:             "console",
		NoColor:            BoolPtr(false),
		LogLevel:           "warn",
		LogFormat:          "text",
		History: HistoryConfig{
			Enabled: BoolPtr(false),
			Path:    DefaultHistoryPath,
		},
	}
}

// setDefaults registers every key with viper so that environment overrides
// are seen by Unmarshal even when no config file sets them.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("root", d.Root)
	v.SetDefault("default_environment", d.DefaultEnvironment)
	v.SetDefault("request_extensions", d.RequestExtensions)
	v.SetDefault("env_schema", d.EnvSchema)
	v.SetDefault("output", d.Output)
	v.SetDefault("no_color", *d.NoColor)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("history.enabled", *d.History.Enabled)
	v.SetDefault("history.path", d.History.Path)
}
