package composer_test

import (
	"testing"

	"github.com/0xalexb/hjarta-commerce/composer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePatch_Merge(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		base     map[string]any
		override map[string]any
		expected map[string]any
	}{
		{
			name:     "nil override keeps base",
			base:     map[string]any{"provider": "shopify"},
			override: nil,
			expected: map[string]any{"provider": "shopify"},
		},
		{
			name:     "override wins on scalars",
			base:     map[string]any{"provider": "shopify"},
			override: map[string]any{"provider": "swell"},
			expected: map[string]any{"provider": "swell"},
		},
		{
			name:     "empty string still overrides",
			base:     map[string]any{"provider": "shopify"},
			override: map[string]any{"provider": ""},
			expected: map[string]any{"provider": ""},
		},
		{
			name:     "nested objects merge recursively",
			base:     map[string]any{"features": map[string]any{"cart": true, "search": true}},
			override: map[string]any{"features": map[string]any{"cart": false}},
			expected: map[string]any{"features": map[string]any{"cart": false, "search": true}},
		},
		{
			name:     "null removes key",
			base:     map[string]any{"provider": "shopify", "tsconfigPath": "a.json"},
			override: map[string]any{"provider": nil},
			expected: map[string]any{"tsconfigPath": "a.json"},
		},
		{
			name:     "nil base",
			base:     nil,
			override: map[string]any{"provider": "spree"},
			expected: map[string]any{"provider": "spree"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			merged, err := composer.MergePatch{}.Merge(tc.base, tc.override)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, merged)
		})
	}
}

func TestMergePatch_Merge_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	base := map[string]any{"features": map[string]any{"cart": true}}
	override := map[string]any{"features": map[string]any{"cart": false}}

	_, err := composer.MergePatch{}.Merge(base, override)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"features": map[string]any{"cart": true}}, base)
	assert.Equal(t, map[string]any{"features": map[string]any{"cart": false}}, override)
}

func TestMergePatch_Merge_Unencodable(t *testing.T) {
	t.Parallel()

	_, err := composer.MergePatch{}.Merge(nil, map[string]any{"fn": func() {}})

	require.Error(t, err)
}

func TestCommerceConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	cfg := composer.CommerceConfig{Provider: "shopify"}

	require.True(t, cfg.SetDefaults())
	assert.Equal(t, composer.DefaultTSConfigPath, cfg.TSConfigPath)
	assert.True(t, cfg.ShouldUpdateTSConfig())
	assert.False(t, cfg.SetDefaults(), "second call changes nothing")

	disabled := false
	cfg = composer.CommerceConfig{UpdateTSConfig: &disabled, TSConfigPath: "custom.json"}

	require.False(t, cfg.SetDefaults())
	assert.False(t, cfg.ShouldUpdateTSConfig())
	assert.Equal(t, "custom.json", cfg.TSConfigPath)
}
