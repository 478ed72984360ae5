// Package file provides file-based DataFetcher and DataWriter implementations
// for the config package.
//
// Both work against an afero.Fs, so production code passes afero.NewOsFs()
// while tests use afero.NewMemMapFs().
//
// The Fetcher reads the file at construction time and caches it, meaning
// subsequent calls to Fetch() return the same data without re-reading the
// filesystem.
//
// Usage:
//
//	fetcher, err := file.NewFetcher(afero.NewOsFs(), "/app/tsconfig.json")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
//	err = file.NewWriter(afero.NewOsFs(), "/app/tsconfig.json").Write(data)
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
