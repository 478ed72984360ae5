package composer

import (
	"fmt"
	"path/filepath"

	"github.com/0xalexb/hjarta-commerce/tsconfig"
)

// Alias keys owned by the composer. Both are overwritten on every run.
const (
	AliasKey         = "@framework"
	AliasWildcardKey = AliasKey + "/*"
)

// SourceDirName is the provider's source tree, a sibling of its build output directory.
const SourceDirName = "src"

// SourceDir maps an installed entry point to the provider's source directory,
// relative to root and slash separated. Packages are laid out as
// <pkg>/dist/index.js next to <pkg>/src, so the result is the entry point
// two levels up joined with SourceDirName.
func SourceDir(root, entryPoint string) (string, error) {
	rel, err := filepath.Rel(root, entryPoint)
	if err != nil {
		return "", fmt.Errorf("relativizing %q to %q: %w", entryPoint, root, err)
	}

	return filepath.ToSlash(filepath.Join(rel, "..", "..", SourceDirName)), nil
}

// Aliases returns the owned alias entries pointing at sourceDir.
func Aliases(sourceDir string) []tsconfig.Alias {
	return []tsconfig.Alias{
		{Key: AliasKey, Targets: []string{sourceDir}},
		{Key: AliasWildcardKey, Targets: []string{sourceDir + "/*"}},
	}
}
