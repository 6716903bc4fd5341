package config

import (
	"strconv"

	"github.com/bnema/lrucache/internal/application/port"
	"github.com/bnema/lrucache/internal/domain/entity"
	"github.com/bnema/lrucache/internal/logging"
)

// Section names for grouping config keys.
const (
	SectionCache   = "Cache"
	SectionLogging = "Logging"
	SectionOutput  = "Output"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (*SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	return []entity.ConfigKeyInfo{
		{
			Key:         "cache.capacity",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Cache.Capacity),
			Description: "Maximum number of entries before the least recently used one is evicted",
			Range:       ">= 1",
			Section:     SectionCache,
		},
		{
			Key:         "cache.synchronized",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Cache.Synchronized),
			Description: "Guard the cache with a mutex so it can be shared between goroutines",
			Section:     SectionCache,
		},
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{logging.FormatConsole, logging.FormatJSON},
			Section:     SectionLogging,
		},
		{
			Key:         "output.format",
			Type:        "string",
			Default:     string(defaults.Output.Format),
			Description: "How command results are printed",
			Values:      []string{string(OutputStyled), string(OutputPlain)},
			Section:     SectionOutput,
		},
	}
}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)
