package json

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrInvalidJSON is returned when the input is not valid JSON once comments are stripped.
var ErrInvalidJSON = errors.New("invalid json")

// ErrPathNotFound is returned when the specified path is not found in the document.
var ErrPathNotFound = errors.New("path not found")

// Option configures a Parser.
type Option func(*Parser)

// WithDisallowUnknownFields rejects object keys that do not map to a target field.
func WithDisallowUnknownFields() Option {
	return func(p *Parser) {
		p.disallowUnknown = true
	}
}

// Parser implements config.Parser for JSON documents that may carry comments
// and trailing commas, as tsconfig.json and jsconfig.json commonly do.
type Parser struct {
	disallowUnknown bool
}

// NewParser creates a new JSON parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse strips comments from data, navigates to path and decodes the result into target.
// Path segments are separated by colon (:) and may contain dots or slashes.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	data = jsonc.ToJSON(data)
	if !gjson.ValidBytes(data) {
		return ErrInvalidJSON
	}

	raw := data

	if path != "" {
		result := gjson.GetBytes(data, convertToGJSONPath(path))
		if !result.Exists() {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		raw = []byte(result.Raw)
	}

	decoder := stdjson.NewDecoder(bytes.NewReader(raw))
	if p.disallowUnknown {
		decoder.DisallowUnknownFields()
	}

	err := decoder.Decode(target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// convertToGJSONPath converts a colon-separated path to gjson syntax, escaping
// characters gjson would otherwise treat as operators.
// Examples:
//   - "compilerOptions:paths" -> "compilerOptions.paths"
//   - "compilerOptions:paths:@framework/*" -> "compilerOptions.paths.\@framework/\*"
func convertToGJSONPath(path string) string {
	parts := strings.Split(path, ":")

	for i, part := range parts {
		parts[i] = escapeComponent(part)
	}

	return strings.Join(parts, ".")
}

func escapeComponent(component string) string {
	var builder strings.Builder

	for _, char := range component {
		if strings.ContainsRune(`\.*?|#@!=<>%`, char) {
			builder.WriteByte('\\')
		}

		builder.WriteRune(char)
	}

	return builder.String()
}
