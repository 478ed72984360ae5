package resolver

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrModuleNotFound is returned when a package cannot be located.
var ErrModuleNotFound = errors.New("cannot find module")

// ErrInvalidModuleName is returned for empty, absolute or relative names.
var ErrInvalidModuleName = errors.New("invalid module name")

// Resolver returns the absolute entry point path of an installed package.
type Resolver interface {
	ResolveEntryPoint(name string) (string, error)
}

// Static resolves names from a fixed registry of absolute paths.
type Static map[string]string

// ResolveEntryPoint returns the registered path for name.
func (s Static) ResolveEntryPoint(name string) (string, error) {
	path, ok := s[name]
	if !ok || path == "" {
		return "", fmt.Errorf("%w %q: not registered", ErrModuleNotFound, name)
	}

	return filepath.Clean(path), nil
}

// Chain tries each resolver in order and returns the first success.
type Chain []Resolver

// ResolveEntryPoint returns the first entry point found. When no resolver
// succeeds, the last ErrModuleNotFound is returned. Any other error stops the chain.
func (c Chain) ResolveEntryPoint(name string) (string, error) {
	lastErr := fmt.Errorf("%w %q: no resolvers configured", ErrModuleNotFound, name)

	for _, resolver := range c {
		path, err := resolver.ResolveEntryPoint(name)
		if err == nil {
			return path, nil
		}

		if !errors.Is(err, ErrModuleNotFound) {
			return "", err
		}

		lastErr = err
	}

	return "", lastErr
}

func validateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidModuleName)
	case filepath.IsAbs(name), strings.HasPrefix(name, "."):
		return fmt.Errorf("%w %q: not a bare package name", ErrInvalidModuleName, name)
	case strings.Contains(name, ".."):
		return fmt.Errorf("%w %q: contains parent reference", ErrInvalidModuleName, name)
	}

	return nil
}
