// Package env builds the environment snapshot used for provider resolution.
//
// A snapshot is a plain map so it can be passed to provider.Resolve without
// touching the process environment. Load layers the process environment on
// top of dotenv files, following the lookup order Next.js uses:
//
//	.env.<mode>.local
//	.env.local        (skipped in test mode)
//	.env.<mode>
//	.env
//
// The first file defining a key wins, and the process environment wins over
// every file.
package env
