// Package commerce wires provider resolution and tsconfig alias rewriting into an Fx application.
//
// NewApp builds the container with a slog logger, the afero filesystem and the composer.
// Callers then hand their build configuration to App.Compose:
//
//	app := commerce.NewApp(
//		commerce.WithProjectRoot("."),
//		commerce.WithEnv(env.FromEnviron(os.Environ())),
//	)
//	if err := app.Err(); err != nil {
//		return err
//	}
//	config, err := app.Compose(composer.BuildConfig{})
package commerce
