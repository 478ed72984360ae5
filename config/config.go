package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrFetch marks failures to read raw configuration data.
var ErrFetch = errors.New("reading data error")

// ErrParse marks failures to decode raw configuration data.
var ErrParse = errors.New("parsing error")

// ErrValidate marks configuration that decoded but failed validation.
var ErrValidate = errors.New("validating error")

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "commerce" navigates to config["commerce"]
//   - "compilerOptions:paths" navigates two levels deep
//   - "" (empty path) means parse the entire document
//
// Parser implementations are responsible for path navigation internally.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// DataWriter defines an interface for persisting configuration data.
type DataWriter interface {
	Write(data []byte) error
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Load reads, parses, sets defaults on, and validates configuration data into target.
func Load[T any](target *T, path string, parser Parser, fetcher DataFetcher, logger *slog.Logger) (*T, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	err = parser.Parse(data, target, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	err = Normalize(target, path, logger)
	if err != nil {
		return nil, err
	}

	return target, nil
}

// Normalize applies defaults and validation to target when it implements
// Defaulter or Validator. A nil logger falls back to slog.Default.
func Normalize(target any, path string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	targetDefaulter, isDefaulter := target.(Defaulter)
	if isDefaulter {
		changed := targetDefaulter.SetDefaults()
		if changed {
			logger.Debug("defaults applied", slog.String("path", path))
		}
	}

	targetValidatable, isValidatable := target.(Validator)
	if isValidatable {
		err := targetValidatable.Validate()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrValidate, err)
		}
	}

	return nil
}
