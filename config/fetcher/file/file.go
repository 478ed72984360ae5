package file

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// DefaultPerm is used when the Writer creates a file that did not exist.
const DefaultPerm fs.FileMode = 0o644

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It reads configuration data from a file at construction time and caches the contents.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// reading fpath from fsys. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Returns an error if the file cannot be read or if the path points to a directory.
func NewFetcher(fsys afero.Fs, fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := fsys.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := afero.ReadFile(fsys, cleanPath)
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
// A copy is returned to prevent callers from mutating the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Writer implements config.DataWriter for a single file.
type Writer struct {
	fs       afero.Fs
	filepath string
}

// NewWriter creates a Writer persisting to fpath on fsys.
func NewWriter(fsys afero.Fs, fpath string) *Writer {
	return &Writer{
		fs:       fsys,
		filepath: filepath.Clean(fpath),
	}
}

// Write replaces the file contents with data. The data goes to a temporary
// file in the same directory which is then renamed over the target, so readers
// see either the old or the new contents. An existing file keeps its
// permission bits; a new one is created with DefaultPerm.
func (w *Writer) Write(data []byte) error {
	perm := DefaultPerm

	stat, err := w.fs.Stat(w.filepath)

	switch {
	case err == nil && stat.IsDir():
		return fmt.Errorf("path %q: %w", w.filepath, ErrPathIsDirectory)
	case err == nil:
		perm = stat.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat file %q: %w", w.filepath, err)
	}

	tmp, err := afero.TempFile(w.fs, filepath.Dir(w.filepath), "."+filepath.Base(w.filepath)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %q: %w", w.filepath, err)
	}

	tmpPath := tmp.Name()

	err = writeAndClose(tmp, data)
	if err == nil {
		err = w.fs.Chmod(tmpPath, perm)
	}

	if err == nil {
		err = w.fs.Rename(tmpPath, w.filepath)
	}

	if err != nil {
		_ = w.fs.Remove(tmpPath)

		return fmt.Errorf("writing file %q: %w", w.filepath, err)
	}

	return nil
}

func writeAndClose(file afero.File, data []byte) error {
	_, err := file.Write(data)
	if err != nil {
		_ = file.Close()

		return err
	}

	err = file.Sync()
	if err != nil {
		_ = file.Close()

		return err
	}

	return file.Close()
}
