// Package cli implements the commerce-config command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	commerce "github.com/0xalexb/hjarta-commerce"
	"github.com/0xalexb/hjarta-commerce/env"
	"github.com/0xalexb/hjarta-commerce/logging"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment variables that configure the CLI itself.
const EnvPrefix = "COMMERCE_CONFIG"

const (
	flagProjectRoot = "project-root"
	flagMode        = "mode"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
)

// runtime is shared by every subcommand of one root command.
type runtime struct {
	settings *viper.Viper
	environ  []string
	fs       afero.Fs
}

// NewRootCommand builds the command tree. environ is the process environment
// in os.Environ form; it is overlaid on the project's dotenv files.
func NewRootCommand(environ []string) *cobra.Command {
	rt := &runtime{
		settings: viper.New(),
		environ:  environ,
		fs:       afero.NewOsFs(),
	}

	rootCmd := &cobra.Command{
		Use:   "commerce-config",
		Short: "Select the commerce provider and point the @framework alias at it",
		Long: `commerce-config resolves which commerce provider a storefront build uses,
merges it into the build configuration and rewrites the "@framework" path
aliases of tsconfig.json so imports reach the provider's sources.

The provider comes from COMMERCE_PROVIDER, from provider specific variables
(BIGCOMMERCE_STOREFRONT_API_URL, NEXT_PUBLIC_SHOPIFY_STORE_DOMAIN,
NEXT_PUBLIC_SWELL_STORE_ID) or falls back to the local provider. Variables are
read from the process and from the project's .env files.`,
		Version:       commerce.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagProjectRoot, ".", "Directory holding tsconfig.json, node_modules and .env files")
	flags.String(flagMode, "development", "Dotenv mode: selects .env.<mode> and .env.<mode>.local")
	flags.String(flagLogLevel, "info", "Log level (debug|info|warn|error)")
	flags.String(flagLogFormat, logging.FormatText, "Log format (text|json)")

	rt.settings.SetEnvPrefix(EnvPrefix)
	rt.settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	rt.settings.AutomaticEnv()
	cobra.CheckErr(rt.settings.BindPFlags(flags))

	rootCmd.SetVersionTemplate(fmt.Sprintf("commerce-config %s (%s, %s)\n",
		commerce.Version, commerce.Commit, commerce.CompiledAt))

	rootCmd.AddCommand(
		newComposeCommand(rt),
		newResolveCommand(rt),
		newAliasesCommand(rt),
		newProvidersCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

func (rt *runtime) projectRoot() (string, error) {
	root, err := filepath.Abs(rt.settings.GetString(flagProjectRoot))
	if err != nil {
		return "", fmt.Errorf("resolving project root: %w", err)
	}

	return root, nil
}

// environment returns the snapshot used for provider resolution.
func (rt *runtime) environment(root string) (env.Snapshot, error) {
	snapshot, err := env.Load(rt.fs, root, rt.settings.GetString(flagMode), env.FromEnviron(rt.environ))
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	return snapshot, nil
}

func (rt *runtime) logger(w io.Writer) *slog.Logger {
	return logging.NewLogger(rt.loggerConfig(), w)
}

func (rt *runtime) loggerConfig() logging.LoggerConfig {
	return logging.LoggerConfig{
		Level:  rt.settings.GetString(flagLogLevel),
		Format: rt.settings.GetString(flagLogFormat),
	}
}
