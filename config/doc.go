// Package config provides the structured-document pipeline shared by the
// commerce tooling.
//
// The package uses an interface-based design with five extension points:
//   - Parser: deserializes raw data into a target, with path navigation support
//   - DataFetcher: retrieves raw data (file, memory, etc.)
//   - DataWriter: persists raw data back to its origin
//   - Defaulter: applies default values before validation
//   - Validator: validates the target after defaults
//
// # Path Navigation
//
// Load accepts a path parameter that targets a section within a document.
// Paths use colon (:) as the separator:
//
//	"commerce"                  -> doc["commerce"]
//	"compilerOptions:paths"     -> doc["compilerOptions"]["paths"]
//	""                          -> entire document
//
// # Errors
//
// Failures are wrapped with ErrFetch, ErrParse or ErrValidate so callers can
// tell the stages apart with errors.Is.
//
// # Example
//
//	type BuildFile struct {
//	    Commerce map[string]any `yaml:"commerce"`
//	}
//
//	fetcher, err := filefetcher.NewFetcher(afero.NewOsFs(), "commerce.yaml")()
//	cfg, err := config.Load(&BuildFile{}, "", yamlparser.NewParser(), fetcher, logger)
package config
