package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_EmptyPath(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
reactStrictMode: true
commerce:
  provider: shopify
  tsconfigPath: tsconfig.base.json
`)

	var result struct {
		ReactStrictMode bool `yaml:"reactStrictMode"`
		Commerce        struct {
			Provider     string `yaml:"provider"`
			TSConfigPath string `yaml:"tsconfigPath"`
		} `yaml:"commerce"`
	}

	err := parser.Parse(data, &result, "")

	require.NoError(t, err)
	assert.True(t, result.ReactStrictMode)
	assert.Equal(t, "shopify", result.Commerce.Provider)
	assert.Equal(t, "tsconfig.base.json", result.Commerce.TSConfigPath)
}

func TestParser_Parse_SingleLevelPath(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
commerce:
  provider: saleor
  updateTSConfig: false
images:
  domains: [cdn.example.com]
`)

	var result struct {
		Provider       string `yaml:"provider"`
		UpdateTSConfig *bool  `yaml:"updateTSConfig"`
	}

	err := parser.Parse(data, &result, "commerce")

	require.NoError(t, err)
	assert.Equal(t, "saleor", result.Provider)
	require.NotNil(t, result.UpdateTSConfig)
	assert.False(t, *result.UpdateTSConfig)
}

func TestParser_Parse_MultiLevelPath(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
commerce:
  features:
    wishlist: true
    cart: false
`)

	var result struct {
		Wishlist bool `yaml:"wishlist"`
		Cart     bool `yaml:"cart"`
	}

	err := parser.Parse(data, &result, "commerce:features")

	require.NoError(t, err)
	assert.True(t, result.Wishlist)
	assert.False(t, result.Cart)
}

func TestParser_Parse_JSONDocument(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`{"commerce": {"provider": "swell"}, "i18n": {"locales": ["en-US", "es"]}}`)

	var result map[string]any

	err := parser.Parse(data, &result, "")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"provider": "swell"}, result["commerce"])
	assert.Contains(t, result, "i18n")
}

func TestParser_Parse_ArrayValue(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
i18n:
  locales:
    - en-US
    - es
`)

	var result []string

	err := parser.Parse(data, &result, "i18n:locales")

	require.NoError(t, err)
	assert.Equal(t, []string{"en-US", "es"}, result)
}

func TestParser_Parse_NonExistentKey(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
commerce:
  provider: shopify
`)

	var result string

	err := parser.Parse(data, &result, "nonexistent")

	require.Error(t, err)
	require.ErrorIs(t, err, ErrPathNotFound)
}

func TestParser_Parse_NonMappingIntermediate(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
commerce: "just a string"
`)

	var result string

	err := parser.Parse(data, &result, "commerce:provider")

	require.Error(t, err)
}

func TestParser_Parse_Strict(t *testing.T) {
	t.Parallel()

	data := []byte(`
provider: shopify
unknownField: true
`)

	type commerceSection struct {
		Provider string `yaml:"provider"`
	}

	var lenient commerceSection

	require.NoError(t, NewParser().Parse(data, &lenient, ""))
	assert.Equal(t, "shopify", lenient.Provider)

	var strict commerceSection

	require.Error(t, NewParser(WithStrict()).Parse(data, &strict, ""))
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	testCases := []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "whitespace only", data: []byte("  \n\t\n")},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var result struct{}

			err := parser.Parse(tc.data, &result, "")

			require.ErrorIs(t, err, ErrEmptyData)
		})
	}
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
invalid: yaml: content: [
`)

	var result struct{}

	err := parser.Parse(data, &result, "")

	require.Error(t, err)
}

func TestConvertToYAMLPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single key",
			input:    "commerce",
			expected: "$.commerce",
		},
		{
			name:     "two level path",
			input:    "commerce:features",
			expected: "$.commerce.features",
		},
		{
			name:     "three level path",
			input:    "compilerOptions:paths:alias",
			expected: "$.compilerOptions.paths.alias",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := convertToYAMLPath(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
