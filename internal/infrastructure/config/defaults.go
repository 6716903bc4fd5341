package config

// Default configuration constants
const (
	defaultCapacity     = 128
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	defaultOutputFormat = OutputStyled
)

// DefaultConfig returns the configuration used when no file or env override exists.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Capacity: defaultCapacity,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Output: OutputConfig{
			Format: defaultOutputFormat,
		},
	}
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("cache.capacity", defaults.Cache.Capacity)
	m.viper.SetDefault("cache.synchronized", defaults.Cache.Synchronized)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("output.format", string(defaults.Output.Format))
}
