package composer

import "maps"

// Extender receives the fully composed configuration.
type Extender interface {
	Extend(config BuildConfig) (ExtendedConfig, error)
}

// ExtenderFunc adapts a function to Extender.
type ExtenderFunc func(config BuildConfig) (ExtendedConfig, error)

// Extend calls f.
func (f ExtenderFunc) Extend(config BuildConfig) (ExtendedConfig, error) {
	return f(config)
}

// PassThrough returns the configuration as is.
type PassThrough struct{}

// Extend returns a shallow copy of config.
func (PassThrough) Extend(config BuildConfig) (ExtendedConfig, error) {
	return ExtendedConfig(maps.Clone(config)), nil
}
