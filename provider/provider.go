package provider

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ID identifies a commerce provider. It doubles as the provider's package name.
type ID string

// Supported providers.
const (
	Local        ID = "@vercel/commerce-local"
	BigCommerce  ID = "bigcommerce"
	Saleor       ID = "saleor"
	Shopify      ID = "shopify"
	Swell        ID = "swell"
	Vendure      ID = "vendure"
	OrderCloud   ID = "ordercloud"
	KiboCommerce ID = "kibocommerce"
	Spree        ID = "spree"
	CommerceJS   ID = "commercejs"
)

// Default is used when the environment carries no provider signal.
const Default = Local

//nolint:gochecknoglobals // closed set, never mutated.
var supported = []ID{
	Local,
	BigCommerce,
	Saleor,
	Shopify,
	Swell,
	Vendure,
	OrderCloud,
	KiboCommerce,
	Spree,
	CommerceJS,
}

// ErrMissingProvider is returned when no provider is set after defaults are applied.
var ErrMissingProvider = errors.New(
	"the commerce provider is missing, please add a valid provider name or its environment variables")

// ErrUnknownProvider matches any *UnknownProviderError through errors.Is.
var ErrUnknownProvider = errors.New("unknown commerce provider")

// UnknownProviderError reports a provider outside the supported set.
type UnknownProviderError struct {
	Value ID
	Valid []ID
}

func (e *UnknownProviderError) Error() string {
	names := make([]string, len(e.Valid))
	for i, id := range e.Valid {
		names[i] = string(id)
	}

	return fmt.Sprintf("the commerce provider %q can't be found, please use one of %q",
		string(e.Value), strings.Join(names, ", "))
}

// Is reports whether target is ErrUnknownProvider.
func (e *UnknownProviderError) Is(target error) bool {
	return target == ErrUnknownProvider
}

// All returns the supported providers in their canonical order.
func All() []ID {
	return slices.Clone(supported)
}

// Supported reports whether id is a member of the supported set.
func (id ID) Supported() bool {
	return slices.Contains(supported, id)
}

func (id ID) String() string {
	return string(id)
}

// Validate checks that id is set and supported.
func Validate(id ID) error {
	if id == "" {
		return ErrMissingProvider
	}

	if !id.Supported() {
		return &UnknownProviderError{Value: id, Valid: All()}
	}

	return nil
}
