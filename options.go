package commerce

import (
	"io"

	"github.com/0xalexb/hjarta-commerce/composer"

	"github.com/spf13/afero"
	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules        []fx.Option
	LogLevel       string
	LogFormat      string
	LogOutput      io.Writer
	ProjectRoot    string
	Env            map[string]string
	FS             afero.Fs
	ModuleResolver composer.ModuleResolver
	Extender       composer.Extender
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log records.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects log records, which go to stderr otherwise.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// WithProjectRoot sets the directory holding tsconfig.json and node_modules.
func WithProjectRoot(root string) Option {
	return func(opts *Options) {
		opts.ProjectRoot = root
	}
}

// WithEnv sets the environment snapshot used to pick the provider.
// Without it the snapshot is empty and the local provider is selected.
func WithEnv(env map[string]string) Option {
	return func(opts *Options) {
		opts.Env = env
	}
}

// WithFS sets the filesystem tsconfig files and packages are read from.
func WithFS(fsys afero.Fs) Option {
	return func(opts *Options) {
		opts.FS = fsys
	}
}

// WithModuleResolver adds a resolver consulted before node_modules lookup.
// Packages it does not know fall through to node_modules.
func WithModuleResolver(modules composer.ModuleResolver) Option {
	return func(opts *Options) {
		opts.ModuleResolver = modules
	}
}

// WithExtender sets the downstream configuration transformer.
func WithExtender(extender composer.Extender) Option {
	return func(opts *Options) {
		opts.Extender = extender
	}
}
