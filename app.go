package commerce

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-commerce/composer"
	"github.com/0xalexb/hjarta-commerce/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for composing build configurations using Fx.
type App struct {
	app      *fx.App
	composer *composer.Composer
}

// NewApp creates a new instance of App with Fx configured and the commerce module installed.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	app := &App{}
	app.app = configure(&options, &app.composer)

	return app
}

func configure(options *Options, target **composer.Composer) *fx.App {
	output := options.LogOutput
	if output == nil {
		output = os.Stderr
	}

	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := createLogger(loggerConfig, output)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		fx.Supply(settingsFrom(options)),
		collaborators(options),
		NewModule(),
		fx.Options(options.Modules...),
		fx.Populate(target),
	)
}

func createLogger(config logging.LoggerConfig, w io.Writer) *slog.Logger {
	return logging.NewLogger(config, w)
}

// Err reports a failure that happened while the container was built.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err()
}

// Compose runs the composer wired into the container against base.
func (app *App) Compose(base composer.BuildConfig) (composer.ExtendedConfig, error) {
	if app == nil || app.composer == nil {
		return nil, errAppNotInitialized
	}

	return app.composer.Compose(base)
}

// Composer returns the composer built by the container, or nil when construction failed.
func (app *App) Composer() *composer.Composer {
	if app == nil {
		return nil
	}

	return app.composer
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
