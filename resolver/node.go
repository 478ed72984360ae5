package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

const (
	nodeModulesDir  = "node_modules"
	packageManifest = "package.json"
	defaultEntry    = "index.js"
)

//nolint:gochecknoglobals // resolution order of package.json export conditions.
var exportConditions = []string{"require", "node", "default", "import"}

// NodeOption configures a Node resolver.
type NodeOption func(*Node)

// WithRealpath replaces the function used to resolve symlinks in the final path.
func WithRealpath(realpath func(string) (string, error)) NodeOption {
	return func(n *Node) {
		n.realpath = realpath
	}
}

// Node resolves packages from node_modules directories.
type Node struct {
	fs       afero.Fs
	root     string
	realpath func(string) (string, error)
}

// NewNode creates a Node resolver searching upwards from root.
// On the OS filesystem symlinks are followed with filepath.EvalSymlinks;
// on any other filesystem paths are returned as found.
func NewNode(fsys afero.Fs, root string, opts ...NodeOption) *Node {
	node := &Node{
		fs:       fsys,
		root:     filepath.Clean(root),
		realpath: identity,
	}

	if _, isOS := fsys.(*afero.OsFs); isOS {
		node.realpath = filepath.EvalSymlinks
	}

	for _, apply := range opts {
		apply(node)
	}

	return node
}

// ResolveEntryPoint returns the absolute, symlink-free path of name's entry point.
func (n *Node) ResolveEntryPoint(name string) (string, error) {
	err := validateName(name)
	if err != nil {
		return "", err
	}

	for dir := n.root; ; dir = filepath.Dir(dir) {
		pkgDir := filepath.Join(dir, nodeModulesDir, filepath.FromSlash(name))

		isDir, _ := afero.IsDir(n.fs, pkgDir)
		if isDir {
			entry, found := n.entryPoint(pkgDir)
			if !found {
				return "", fmt.Errorf("%w %q: no entry point in %s", ErrModuleNotFound, name, pkgDir)
			}

			resolved, err := n.realpath(entry)
			if err != nil {
				return "", fmt.Errorf("resolving symlinks of %q: %w", entry, err)
			}

			return resolved, nil
		}

		if filepath.Dir(dir) == dir {
			break
		}
	}

	return "", fmt.Errorf("%w %q from %q", ErrModuleNotFound, name, n.root)
}

func (n *Node) entryPoint(pkgDir string) (string, bool) {
	var candidates []string

	manifest, err := afero.ReadFile(n.fs, filepath.Join(pkgDir, packageManifest))
	if err == nil {
		exported := exportsTarget(gjson.GetBytes(manifest, "exports"))
		if exported != "" {
			candidates = append(candidates, filepath.Join(pkgDir, filepath.FromSlash(exported)))
		}

		main := gjson.GetBytes(manifest, "main").String()
		if main != "" {
			mainPath := filepath.Join(pkgDir, filepath.FromSlash(main))
			candidates = append(candidates,
				mainPath,
				mainPath+".js",
				mainPath+".json",
				filepath.Join(mainPath, defaultEntry),
			)
		}
	}

	candidates = append(candidates, filepath.Join(pkgDir, defaultEntry))

	for _, candidate := range candidates {
		if n.isFile(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// exportsTarget returns the main export of a package.json "exports" value:
// a string, the "." entry of a subpath map, or a conditions object.
func exportsTarget(exports gjson.Result) string {
	if !exports.IsObject() {
		return conditionalTarget(exports)
	}

	var (
		root       gjson.Result
		hasSubpath bool
	)

	exports.ForEach(func(key, value gjson.Result) bool {
		if strings.HasPrefix(key.String(), ".") {
			hasSubpath = true
		}

		if key.String() == "." {
			root = value

			return false
		}

		return true
	})

	if hasSubpath {
		return conditionalTarget(root)
	}

	return conditionalTarget(exports)
}

// conditionalTarget picks the first matching condition, preferring CommonJS.
func conditionalTarget(value gjson.Result) string {
	switch {
	case value.Type == gjson.String:
		return value.String()
	case value.IsArray():
		for _, item := range value.Array() {
			if target := conditionalTarget(item); target != "" {
				return target
			}
		}
	case value.IsObject():
		for _, condition := range exportConditions {
			if target := conditionalTarget(value.Get(condition)); target != "" {
				return target
			}
		}
	}

	return ""
}

func (n *Node) isFile(path string) bool {
	stat, err := n.fs.Stat(path)

	return err == nil && !stat.IsDir()
}

func identity(path string) (string, error) {
	return path, nil
}
