package env

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// ModeTest is the mode in which .env.local is not consulted.
const ModeTest = "test"

// Snapshot is an immutable-by-convention view of environment variables.
type Snapshot map[string]string

// FromEnviron converts a "KEY=value" list, as returned by os.Environ, into a Snapshot.
// Entries without "=" are ignored.
func FromEnviron(environ []string) Snapshot {
	snapshot := make(Snapshot, len(environ))

	for _, entry := range environ {
		key, value, found := strings.Cut(entry, "=")
		if !found || key == "" {
			continue
		}

		snapshot[key] = value
	}

	return snapshot
}

// Get returns the value for key, or "" when unset.
func (s Snapshot) Get(key string) string {
	return s[key]
}

// Merge returns a new Snapshot with entries of s overridden by other.
func (s Snapshot) Merge(other Snapshot) Snapshot {
	merged := make(Snapshot, len(s)+len(other))

	for key, value := range s {
		merged[key] = value
	}

	for key, value := range other {
		merged[key] = value
	}

	return merged
}

// Files returns the dotenv file names consulted for mode, strongest first.
func Files(mode string) []string {
	files := make([]string, 0, 4)

	if mode != "" {
		files = append(files, ".env."+mode+".local")
	}

	if mode != ModeTest {
		files = append(files, ".env.local")
	}

	if mode != "" {
		files = append(files, ".env."+mode)
	}

	return append(files, ".env")
}

// Load reads the dotenv files for mode from dir and overlays process on top.
// Missing files are skipped. A file that exists but cannot be parsed is an error.
func Load(fsys afero.Fs, dir, mode string, process Snapshot) (Snapshot, error) {
	snapshot := make(Snapshot)

	for _, name := range Files(mode) {
		values, err := readFile(fsys, filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		for key, value := range values {
			if _, exists := snapshot[key]; !exists {
				snapshot[key] = value
			}
		}
	}

	return snapshot.Merge(process), nil
}

func readFile(fsys afero.Fs, path string) (map[string]string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("opening dotenv file %q: %w", path, err)
	}
	defer file.Close()

	values, err := godotenv.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing dotenv file %q: %w", path, err)
	}

	return values, nil
}
