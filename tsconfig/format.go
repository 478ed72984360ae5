package tsconfig

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ErrUnsupportedParser is returned when FormatOptions names a syntax the formatter cannot handle.
var ErrUnsupportedParser = errors.New("unsupported formatter parser")

// ParserJSON selects JSON formatting.
const ParserJSON = "json"

// Formatting defaults, matching what prettier produces for JSON files.
const (
	DefaultIndent = "  "
	DefaultWidth  = 80
)

// FormatOptions controls canonical formatting.
type FormatOptions struct {
	// Parser names the input syntax. Only "json" is supported; empty means json.
	Parser string
	// Indent is the per-level indentation. Defaults to two spaces.
	Indent string
	// Width is the column limit under which arrays stay on one line. Defaults to 80.
	Width int
}

// PrettyFormatter canonicalizes JSON with github.com/tidwall/pretty.
// Formatting its own output again yields identical bytes.
type PrettyFormatter struct{}

// NewPrettyFormatter returns a PrettyFormatter.
func NewPrettyFormatter() *PrettyFormatter {
	return &PrettyFormatter{}
}

// Format returns data re-indented with a trailing newline. Key order is preserved.
func (f *PrettyFormatter) Format(data []byte, opts FormatOptions) ([]byte, error) {
	if opts.Parser != "" && opts.Parser != ParserJSON {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedParser, opts.Parser)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidDocument)
	}

	indent := opts.Indent
	if indent == "" {
		indent = DefaultIndent
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	return pretty.PrettyOptions(data, &pretty.Options{
		Width:    width,
		Prefix:   "",
		Indent:   indent,
		SortKeys: false,
	}), nil
}
