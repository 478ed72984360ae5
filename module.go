package commerce

import (
	"log/slog"

	"github.com/0xalexb/hjarta-commerce/composer"
	"github.com/0xalexb/hjarta-commerce/env"
	"github.com/0xalexb/hjarta-commerce/resolver"
	"github.com/0xalexb/hjarta-commerce/tsconfig"

	"github.com/spf13/afero"
	"go.uber.org/fx"
)

// ModuleName is the Fx module name of the composer wiring.
const ModuleName = "commerce"

// Settings carries the per-run inputs of the composer.
type Settings struct {
	ProjectRoot string
	Env         env.Snapshot
}

// ComposerParams are the dependencies NewModule consumes.
// A provided ModuleResolver is consulted before node_modules lookup; Extender defaults to pass-through.
type ComposerParams struct {
	fx.In

	Settings       Settings
	Logger         *slog.Logger
	FS             afero.Fs
	Store          composer.DocumentStore
	Formatter      composer.Formatter
	ModuleResolver composer.ModuleResolver `optional:"true"`
	Extender       composer.Extender       `optional:"true"`
}

// NewModule creates the Fx module providing the alias store, the formatter and the *composer.Composer.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule() fx.Option {
	return fx.Module(ModuleName,
		fx.Provide(
			fx.Annotate(
				tsconfig.NewFileStore,
				fx.As(new(composer.DocumentStore)),
			),
		),
		fx.Provide(
			fx.Annotate(
				tsconfig.NewPrettyFormatter,
				fx.As(new(composer.Formatter)),
			),
		),
		fx.Provide(NewComposer),
	)
}

// NewComposer builds a composer from container dependencies.
func NewComposer(params ComposerParams) *composer.Composer {
	var modules composer.ModuleResolver = resolver.NewNode(params.FS, rootOrDot(params.Settings.ProjectRoot))
	if params.ModuleResolver != nil {
		modules = resolver.Chain{params.ModuleResolver, modules}
	}

	opts := []composer.Option{
		composer.WithEnv(params.Settings.Env),
		composer.WithProjectRoot(rootOrDot(params.Settings.ProjectRoot)),
		composer.WithStore(params.Store),
		composer.WithFormatter(params.Formatter),
		composer.WithModuleResolver(modules),
		composer.WithLogger(params.Logger.With(slog.String("module", ModuleName))),
	}

	if params.Extender != nil {
		opts = append(opts, composer.WithExtender(params.Extender))
	}

	return composer.New(opts...)
}

func settingsFrom(options *Options) Settings {
	return Settings{
		ProjectRoot: rootOrDot(options.ProjectRoot),
		Env:         env.Snapshot(options.Env),
	}
}

// collaborators supplies the filesystem and any caller provided resolver or extender.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func collaborators(options *Options) fx.Option {
	fsys := options.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	provided := []fx.Option{
		fx.Provide(func() afero.Fs { return fsys }),
	}

	if options.ModuleResolver != nil {
		modules := options.ModuleResolver
		provided = append(provided, fx.Provide(func() composer.ModuleResolver { return modules }))
	}

	if options.Extender != nil {
		extender := options.Extender
		provided = append(provided, fx.Provide(func() composer.Extender { return extender }))
	}

	return fx.Options(provided...)
}

func rootOrDot(root string) string {
	if root == "" {
		return "."
	}

	return root
}
