package tsconfig_test

import (
	"strings"
	"testing"

	"github.com/0xalexb/hjarta-commerce/tsconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const compactDocument = `{"compilerOptions":{"baseUrl":".","paths":{"@framework":["packages/local/src"],` +
	`"@framework/*":["packages/local/src/*"]}},"exclude":["node_modules"]}`

func TestPrettyFormatter_Format(t *testing.T) {
	t.Parallel()

	formatted, err := tsconfig.NewPrettyFormatter().Format([]byte(compactDocument), tsconfig.FormatOptions{
		Parser: tsconfig.ParserJSON,
	})

	require.NoError(t, err)
	assert.JSONEq(t, compactDocument, string(formatted))
	assert.True(t, strings.HasPrefix(string(formatted), "{\n  \"compilerOptions\""))
	assert.True(t, strings.HasSuffix(string(formatted), "}\n"))
}

func TestPrettyFormatter_Format_Idempotent(t *testing.T) {
	t.Parallel()

	formatter := tsconfig.NewPrettyFormatter()

	first, err := formatter.Format([]byte(compactDocument), tsconfig.FormatOptions{})
	require.NoError(t, err)

	second, err := formatter.Format(first, tsconfig.FormatOptions{})
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestPrettyFormatter_Format_CustomIndent(t *testing.T) {
	t.Parallel()

	formatted, err := tsconfig.NewPrettyFormatter().Format([]byte(`{"a":{"b":true}}`), tsconfig.FormatOptions{
		Indent: "\t",
	})

	require.NoError(t, err)
	assert.Contains(t, string(formatted), "\n\t\"a\"")
	assert.Contains(t, string(formatted), "\n\t\t\"b\"")
}

func TestPrettyFormatter_Format_Errors(t *testing.T) {
	t.Parallel()

	formatter := tsconfig.NewPrettyFormatter()

	_, err := formatter.Format([]byte(`{}`), tsconfig.FormatOptions{Parser: "yaml"})
	require.ErrorIs(t, err, tsconfig.ErrUnsupportedParser)

	_, err = formatter.Format([]byte(`{"a":`), tsconfig.FormatOptions{})
	require.ErrorIs(t, err, tsconfig.ErrInvalidDocument)
}
