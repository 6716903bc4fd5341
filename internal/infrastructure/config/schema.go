// Package config loads lrucache settings from TOML files and environment variables.
package config

// Config represents the complete lrucache configuration.
type Config struct {
	// Cache controls the cache built by the CLI commands.
	Cache CacheConfig `mapstructure:"cache" toml:"cache" json:"cache"`
	// Logging controls log verbosity and format.
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Output controls how command results are rendered.
	Output OutputConfig `mapstructure:"output" toml:"output" json:"output"`
}

// CacheConfig holds cache construction settings.
type CacheConfig struct {
	// Capacity is the maximum number of entries before eviction.
	Capacity int `mapstructure:"capacity" toml:"capacity" json:"capacity" jsonschema:"minimum=1,default=128"`
	// Synchronized wraps the cache in a mutex.
	Synchronized bool `mapstructure:"synchronized" toml:"synchronized" json:"synchronized"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// OutputFormat selects how results are printed.
type OutputFormat string

const (
	OutputStyled OutputFormat = "styled"
	OutputPlain  OutputFormat = "plain"
)

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format OutputFormat `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=styled,enum=plain,default=styled"`
}
