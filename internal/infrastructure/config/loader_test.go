package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, defaultCapacity, mgr.viper.GetInt("cache.capacity"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, "styled", mgr.viper.GetString("output.format"))
}

func TestManager_LoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, DefaultConfig(), mgr.Get())
	assert.Empty(t, mgr.ConfigFileUsed())
}

func TestManager_LoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[cache]
capacity = 3
synchronized = true

[logging]
level = "DEBUG"
format = "json"

[output]
format = "plain"
`)

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 3, cfg.Cache.Capacity)
	assert.True(t, cfg.Cache.Synchronized)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, OutputPlain, cfg.Output.Format)
	assert.Equal(t, path, mgr.ConfigFileUsed())
}

func TestManager_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[cache]\ncapacity = 3\n")
	t.Setenv("LRUCACHE_CACHE_CAPACITY", "9")
	t.Setenv("LRUCACHE_LOG_LEVEL", "warn")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, 9, mgr.Get().Cache.Capacity)
	assert.Equal(t, "warn", mgr.Get().Logging.Level)
}

func TestManager_SetOverridesEverything(t *testing.T) {
	path := writeConfig(t, "[cache]\ncapacity = 3\n")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	mgr.Set("cache.capacity", 42)
	require.NoError(t, mgr.Load())

	assert.Equal(t, 42, mgr.Get().Cache.Capacity)
}

func TestManager_RejectsInvalidCapacity(t *testing.T) {
	path := writeConfig(t, "[cache]\ncapacity = 0\n")

	mgr, err := NewManager(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache.capacity must be greater than zero")
}

func TestManager_MissingExplicitFile(t *testing.T) {
	mgr, err := NewManager(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Error(t, mgr.Load())
}

func TestManager_GetReturnsCopy(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Cache.Capacity = 1
	assert.Equal(t, defaultCapacity, mgr.Get().Cache.Capacity)
}

func TestValidateConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, validateConfig(cfg))

	cfg.Cache.Capacity = -1
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"
	cfg.Output.Format = "html"

	err := validateConfig(cfg)
	require.Error(t, err)
	for _, want := range []string{"cache.capacity", "logging.level", "logging.format", "output.format"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg := &Config{
		Logging: LoggingConfig{Level: " Info ", Format: "JSON"},
		Output:  OutputConfig{Format: "PLAIN"},
	}
	normalizeConfig(cfg)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, OutputPlain, cfg.Output.Format)
}

func TestGenerateJSONSchema(t *testing.T) {
	data, err := GenerateJSONSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "lrucache configuration", schema["title"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "cache")
	assert.Contains(t, props, "logging")
	assert.Contains(t, props, "output")
}
