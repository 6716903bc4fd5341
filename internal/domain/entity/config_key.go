// Package entity holds plain data types shared across layers.
package entity

// ConfigKeyInfo describes one configuration key for listings and docs.
type ConfigKeyInfo struct {
	// Key is the dotted path to the key (e.g. "cache.capacity").
	Key string `json:"key"`

	// Type is the Go type name ("string", "int", "bool").
	Type string `json:"type"`

	// Default is the default value rendered as a string.
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists the accepted values of an enum key.
	Values []string `json:"values,omitempty"`

	// Range describes a numeric constraint such as ">= 1".
	Range string `json:"range,omitempty"`

	// Section groups related keys ("Cache", "Logging").
	Section string `json:"section"`
}
