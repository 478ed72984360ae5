package tsconfig

import (
	"fmt"

	"github.com/0xalexb/hjarta-commerce/config"
	filefetcher "github.com/0xalexb/hjarta-commerce/config/fetcher/file"

	"github.com/spf13/afero"
)

// FileStore reads and writes documents on an afero filesystem.
type FileStore struct {
	fs afero.Fs
}

// NewFileStore creates a FileStore backed by fsys.
func NewFileStore(fsys afero.Fs) *FileStore {
	return &FileStore{fs: fsys}
}

// Read loads and parses the document at path.
func (s *FileStore) Read(path string) (*Document, error) {
	fetcher, err := filefetcher.NewFetcher(s.fs, path)()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrFetch, err)
	}

	return s.parse(fetcher)
}

func (s *FileStore) parse(fetcher config.DataFetcher) (*Document, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrFetch, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrParse, err)
	}

	return doc, nil
}

// Write replaces the file at path with data.
func (s *FileStore) Write(path string, data []byte) error {
	var writer config.DataWriter = filefetcher.NewWriter(s.fs, path)

	return writer.Write(data)
}
