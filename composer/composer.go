package composer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"

	"github.com/0xalexb/hjarta-commerce/provider"
	"github.com/0xalexb/hjarta-commerce/resolver"
	"github.com/0xalexb/hjarta-commerce/tsconfig"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

// Composer merges the resolved provider into build configurations.
// It is meant to run once per build, from a single goroutine.
type Composer struct {
	env       map[string]string
	root      string
	store     DocumentStore
	modules   ModuleResolver
	formatter Formatter
	merger    Merger
	extender  Extender
	logger    *slog.Logger
}

// New creates a Composer. Collaborators that are not set default to the OS
// filesystem, a node_modules resolver rooted at the project root, the pretty
// formatter, JSON merge patch and a pass-through extender.
func New(opts ...Option) *Composer {
	c := &Composer{
		root: ".",
	}

	for _, apply := range opts {
		apply(c)
	}

	if abs, err := filepath.Abs(c.root); err == nil {
		c.root = abs
	}

	if c.env == nil {
		c.env = map[string]string{}
	}

	if c.store == nil {
		c.store = tsconfig.NewFileStore(afero.NewOsFs())
	}

	if c.modules == nil {
		c.modules = resolver.NewNode(afero.NewOsFs(), c.root)
	}

	if c.formatter == nil {
		c.formatter = tsconfig.NewPrettyFormatter()
	}

	if c.merger == nil {
		c.merger = MergePatch{}
	}

	if c.extender == nil {
		c.extender = PassThrough{}
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Root returns the absolute project root.
func (c *Composer) Root() string {
	return c.root
}

// Resolve returns the provider implied by the Composer's environment.
func (c *Composer) Resolve() provider.ID {
	return provider.Resolve(c.env)
}

// Compose resolves and validates the provider, rewrites the tsconfig aliases
// unless updateTSConfig is false, and returns the extender's result. Fields of
// base other than "commerce" are passed through untouched.
func (c *Composer) Compose(base BuildConfig) (ExtendedConfig, error) {
	resolved := c.Resolve()
	c.logger.Debug("provider resolved from environment", slog.String("provider", resolved.String()))

	override, err := commerceSection(base)
	if err != nil {
		return nil, err
	}

	merged, err := c.merger.Merge(map[string]any{"provider": resolved.String()}, override)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCommerceConfig, err)
	}

	commerce, err := decodeCommerce(merged)
	if err != nil {
		return nil, err
	}

	commerce.SetDefaults()

	err = commerce.Validate()
	if err != nil {
		return nil, err
	}

	if commerce.ShouldUpdateTSConfig() {
		err = c.updateTSConfig(commerce)
		if err != nil {
			return nil, err
		}
	} else {
		c.logger.Info("tsconfig update skipped", slog.String("provider", commerce.Provider.String()))
	}

	composed := make(BuildConfig, len(base)+1)
	maps.Copy(composed, base)
	composed[CommerceKey] = merged

	extended, err := c.extender.Extend(composed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtend, err)
	}

	return extended, nil
}

func (c *Composer) updateTSConfig(commerce *CommerceConfig) error {
	path := filepath.Join(c.root, filepath.FromSlash(commerce.TSConfigPath))

	doc, err := c.store.Read(path)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrConfigRead, path, err)
	}

	entryPoint, err := c.modules.ResolveEntryPoint(commerce.Provider.String())
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrProviderModuleNotFound, commerce.Provider, err)
	}

	sourceDir, err := SourceDir(c.root, entryPoint)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrProviderModuleNotFound, commerce.Provider, err)
	}

	err = doc.SetAliases(Aliases(sourceDir)...)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrConfigWrite, path, err)
	}

	formatted, err := c.formatter.Format(doc.Bytes(), tsconfig.FormatOptions{Parser: tsconfig.ParserJSON})
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrConfigWrite, path, err)
	}

	err = c.store.Write(path, formatted)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrConfigWrite, path, err)
	}

	c.logger.Info("tsconfig aliases updated",
		slog.String("path", path),
		slog.String("provider", commerce.Provider.String()),
		slog.String("alias", AliasKey),
		slog.String("target", sourceDir),
	)

	return nil
}

// commerceSection returns base["commerce"] as a generic object, or nil when absent.
func commerceSection(base BuildConfig) (map[string]any, error) {
	value, ok := base[CommerceKey]
	if !ok || value == nil {
		return nil, nil
	}

	if section, isMap := value.(map[string]any); isMap {
		return section, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCommerceConfig, err)
	}

	if !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("%w: %s must be an object, got %s", ErrInvalidCommerceConfig, CommerceKey, data)
	}

	var section map[string]any

	err = json.Unmarshal(data, &section)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCommerceConfig, err)
	}

	return section, nil
}

func decodeCommerce(section map[string]any) (*CommerceConfig, error) {
	data, err := json.Marshal(section)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCommerceConfig, err)
	}

	var commerce CommerceConfig

	err = json.Unmarshal(data, &commerce)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCommerceConfig, err)
	}

	return &commerce, nil
}
