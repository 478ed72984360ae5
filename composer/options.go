package composer

import "log/slog"

// Option configures a Composer.
type Option func(*Composer)

// WithEnv sets the environment snapshot used for provider resolution.
func WithEnv(env map[string]string) Option {
	return func(c *Composer) {
		c.env = env
	}
}

// WithProjectRoot sets the directory tsconfig paths and aliases are relative to.
func WithProjectRoot(root string) Option {
	return func(c *Composer) {
		c.root = root
	}
}

// WithStore sets the alias document store.
func WithStore(store DocumentStore) Option {
	return func(c *Composer) {
		c.store = store
	}
}

// WithModuleResolver sets how provider packages are located.
func WithModuleResolver(modules ModuleResolver) Option {
	return func(c *Composer) {
		c.modules = modules
	}
}

// WithFormatter sets the formatter applied before the document is persisted.
func WithFormatter(formatter Formatter) Option {
	return func(c *Composer) {
		c.formatter = formatter
	}
}

// WithMerger sets the merge strategy for the commerce section.
func WithMerger(merger Merger) Option {
	return func(c *Composer) {
		c.merger = merger
	}
}

// WithExtender sets the collaborator receiving the composed configuration.
func WithExtender(extender Extender) Option {
	return func(c *Composer) {
		c.extender = extender
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) {
		c.logger = logger
	}
}
