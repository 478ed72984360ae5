package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte(`{"compilerOptions": {"paths": {}}}`)

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/app/tsconfig.json", content, 0o600))

	fetcher, err := NewFetcher(fsys, "/app/tsconfig.json")()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, "/app/tsconfig.json", fetcher.Path())
}

func TestFetcher_Fetch_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(afero.NewMemMapFs(), "/nonexistent/path/tsconfig.json")()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "stat file")
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestFetcher_Fetch_EmptyFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/app/empty.json", []byte{}, 0o600))

	fetcher, err := NewFetcher(fsys, "/app/empty.json")()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestNewFetcher_CleansPath(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/app/tsconfig.json", []byte("{}"), 0o600))

	fetcher, err := NewFetcher(fsys, "/app/config/../tsconfig.json")()

	require.NoError(t, err)
	assert.Equal(t, "/app/tsconfig.json", fetcher.filepath)
}

func TestFetcher_Fetch_DirectoryPath(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/app/tsconfig.json", 0o755))

	fetcher, err := NewFetcher(fsys, "/app/tsconfig.json")()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestFetcher_Fetch_FileModifiedAfterConstruction_ReturnsCachedData(t *testing.T) {
	t.Parallel()

	originalContent := []byte(`{"version": "1.0"}`)
	modifiedContent := []byte(`{"version": "2.0"}`)

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/app/config.json", originalContent, 0o600))

	fetcher, err := NewFetcher(fsys, "/app/config.json")()
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fsys, "/app/config.json", modifiedContent, 0o600))

	data, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, originalContent, data, "Fetch should return cached data, not current file content")
}

func TestFetcher_Fetch_ReturnsCopy_MutationSafe(t *testing.T) {
	t.Parallel()

	content := []byte(`original: value`)

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/app/config.yaml", content, 0o600))

	fetcher, err := NewFetcher(fsys, "/app/config.yaml")()
	require.NoError(t, err)

	data1, err := fetcher.Fetch()
	require.NoError(t, err)

	data1[0] = 'X'

	data2, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, content, data2, "Fetch should return unmodified cached data")
}

func TestWriter_Write_CreatesFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/app", 0o755))

	err := NewWriter(fsys, "/app/tsconfig.json").Write([]byte("{}\n"))
	require.NoError(t, err)

	data, err := afero.ReadFile(fsys, "/app/tsconfig.json")
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestWriter_Write_ReplacesContentAndKeepsMode(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "tsconfig.json")

	require.NoError(t, os.WriteFile(configPath, []byte(`{"old": true, "padding": "longer than new"}`), 0o600))

	err := NewWriter(afero.NewOsFs(), configPath).Write([]byte(`{"new": true}`))
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"new": true}`, string(data))

	stat, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())
}

func TestWriter_Write_DirectoryPath(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/app/tsconfig.json", 0o755))

	err := NewWriter(fsys, "/app/tsconfig.json").Write([]byte("{}"))

	require.ErrorIs(t, err, ErrPathIsDirectory)
}

func TestWriter_Write_LeavesNoTemporaryFiles(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/app/tsconfig.json", []byte(`{"old": true}`), 0o640))

	writer := NewWriter(fsys, "/app/tsconfig.json")
	require.NoError(t, writer.Write([]byte(`{"first": true}`)))
	require.NoError(t, writer.Write([]byte(`{"second": true}`)))

	entries, err := afero.ReadDir(fsys, "/app")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tsconfig.json", entries[0].Name())
	assert.Equal(t, os.FileMode(0o640), entries[0].Mode().Perm())

	data, err := afero.ReadFile(fsys, "/app/tsconfig.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"second": true}`, string(data))
}

func TestWriter_Write_FailureKeepsOriginal(t *testing.T) {
	t.Parallel()

	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/app/tsconfig.json", []byte(`{"compilerOptions": {}}`), 0o644))

	err := NewWriter(afero.NewReadOnlyFs(base), "/app/tsconfig.json").Write([]byte(`{"half":`))
	require.Error(t, err)

	data, err := afero.ReadFile(base, "/app/tsconfig.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"compilerOptions": {}}`, string(data))

	entries, err := afero.ReadDir(base, "/app")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
