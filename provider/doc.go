// Package provider defines the closed set of commerce providers a storefront
// build can compile against and the rules for picking one from an environment
// snapshot.
//
// Resolution is a pure function of the snapshot. The first matching rule wins:
//
//	COMMERCE_PROVIDER                  -> its value, verbatim
//	BIGCOMMERCE_STOREFRONT_API_URL     -> bigcommerce
//	NEXT_PUBLIC_SHOPIFY_STORE_DOMAIN   -> shopify
//	NEXT_PUBLIC_SWELL_STORE_ID         -> swell
//	(nothing set)                      -> @vercel/commerce-local
//
// Resolve never validates. Use Validate before wiring the result anywhere.
package provider
