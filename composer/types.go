package composer

import (
	"errors"

	"github.com/0xalexb/hjarta-commerce/provider"
	"github.com/0xalexb/hjarta-commerce/tsconfig"
)

// CommerceKey is the BuildConfig field holding the commerce section.
const CommerceKey = "commerce"

// DefaultTSConfigPath is used when CommerceConfig.TSConfigPath is empty.
const DefaultTSConfigPath = "tsconfig.json"

var (
	// ErrInvalidCommerceConfig is returned when the commerce section is not an object or has mistyped fields.
	ErrInvalidCommerceConfig = errors.New("invalid commerce config")
	// ErrConfigRead is returned when the alias document is missing or cannot be parsed.
	ErrConfigRead = errors.New("cannot read tsconfig")
	// ErrProviderModuleNotFound is returned when the provider package is not installed.
	ErrProviderModuleNotFound = errors.New("provider module not found")
	// ErrConfigWrite is returned when the alias document cannot be formatted or persisted.
	ErrConfigWrite = errors.New("cannot write tsconfig")
	// ErrExtend is returned when the downstream extender fails.
	ErrExtend = errors.New("extending config failed")
)

// BuildConfig is the caller's build configuration. Only the "commerce" field is interpreted.
type BuildConfig map[string]any

// ExtendedConfig is what the Extender returns.
type ExtendedConfig map[string]any

// CommerceConfig is the typed view of the commerce section.
type CommerceConfig struct {
	Provider       provider.ID `json:"provider,omitempty"`
	UpdateTSConfig *bool       `json:"updateTSConfig,omitempty"`
	TSConfigPath   string      `json:"tsconfigPath,omitempty"`
}

// SetDefaults fills TSConfigPath and UpdateTSConfig.
func (c *CommerceConfig) SetDefaults() bool {
	changed := false

	if c.TSConfigPath == "" {
		c.TSConfigPath = DefaultTSConfigPath
		changed = true
	}

	if c.UpdateTSConfig == nil {
		enabled := true
		c.UpdateTSConfig = &enabled
		changed = true
	}

	return changed
}

// Validate checks the provider against the supported set.
func (c *CommerceConfig) Validate() error {
	return provider.Validate(c.Provider)
}

// ShouldUpdateTSConfig reports whether alias rewriting runs. Only an explicit false disables it.
func (c *CommerceConfig) ShouldUpdateTSConfig() bool {
	return c.UpdateTSConfig == nil || *c.UpdateTSConfig
}

// DocumentStore reads and persists the alias document.
type DocumentStore interface {
	Read(path string) (*tsconfig.Document, error)
	Write(path string, data []byte) error
}

// ModuleResolver finds the absolute entry point of an installed package.
type ModuleResolver interface {
	ResolveEntryPoint(name string) (string, error)
}

// Formatter canonicalizes serialized documents.
type Formatter interface {
	Format(data []byte, opts tsconfig.FormatOptions) ([]byte, error)
}
