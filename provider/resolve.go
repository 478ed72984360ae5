package provider

// Environment variables consulted by Resolve.
const (
	EnvProvider    = "COMMERCE_PROVIDER"
	EnvBigCommerce = "BIGCOMMERCE_STOREFRONT_API_URL"
	EnvShopify     = "NEXT_PUBLIC_SHOPIFY_STORE_DOMAIN"
	EnvSwell       = "NEXT_PUBLIC_SWELL_STORE_ID"
)

// signal maps a provider-specific variable to the provider it implies.
type signal struct {
	key      string
	provider ID
}

// Order matters: a build carrying several providers' variables resolves to
// the first one listed.
//
//nolint:gochecknoglobals // fixed precedence table.
var signals = []signal{
	{key: EnvBigCommerce, provider: BigCommerce},
	{key: EnvShopify, provider: Shopify},
	{key: EnvSwell, provider: Swell},
}

// Resolve picks the provider implied by env. Empty values count as unset.
// The explicit override is returned as-is, even when it is not supported.
func Resolve(env map[string]string) ID {
	if override := env[EnvProvider]; override != "" {
		return ID(override)
	}

	for _, sig := range signals {
		if env[sig.key] != "" {
			return sig.provider
		}
	}

	return Default
}
