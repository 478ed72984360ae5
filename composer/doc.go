// Package composer wires the selected commerce provider into a build
// configuration.
//
// Compose resolves the provider from an environment snapshot, merges it under
// the caller's "commerce" section, validates it against the supported set,
// optionally points the @framework aliases of tsconfig.json at the provider's
// source tree, and finally hands the result to an Extender.
//
// Every I/O step goes through a narrow collaborator interface (DocumentStore,
// ModuleResolver, Formatter, Merger, Extender) so the decision logic can be
// exercised without a filesystem.
//
// All failures are fatal. Use errors.Is with provider.ErrMissingProvider,
// provider.ErrUnknownProvider, ErrInvalidCommerceConfig, ErrConfigRead,
// ErrProviderModuleNotFound, ErrConfigWrite or ErrExtend to tell them apart.
package composer
