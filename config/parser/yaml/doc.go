// Package yaml provides a YAML parser implementation for the config package.
//
// It reads the commerce tool's own configuration file (commerce.yaml, or a
// JSON file since JSON is a YAML subset) using github.com/goccy/go-yaml. The
// parser converts colon-separated paths (e.g., "commerce:features") to YAML
// path format (e.g., "$.commerce.features") internally.
//
// Usage:
//
//	parser := yaml.NewParser(yaml.WithStrict())
//	var cfg BuildFile
//	err := parser.Parse(data, &cfg, "")
//
// Path Conversion:
//   - Empty path "" -> unmarshal entire document
//   - Single key "key" -> "$.key"
//   - Nested path "commerce:features" -> "$.commerce.features"
package yaml
