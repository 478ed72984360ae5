package cli

import (
	"encoding/json"
	"fmt"
	"maps"
	"path/filepath"
	"strings"

	commerce "github.com/0xalexb/hjarta-commerce"
	"github.com/0xalexb/hjarta-commerce/composer"
	"github.com/0xalexb/hjarta-commerce/config"
	filefetcher "github.com/0xalexb/hjarta-commerce/config/fetcher/file"
	jsonparser "github.com/0xalexb/hjarta-commerce/config/parser/json"
	yamlparser "github.com/0xalexb/hjarta-commerce/config/parser/yaml"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

const (
	flagConfig       = "config"
	flagTSConfig     = "tsconfig"
	flagSkipTSConfig = "skip-tsconfig"
)

func newComposeCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose the build configuration and update tsconfig aliases",
		Long: `Compose the build configuration and update tsconfig aliases.

The base configuration is read from --config when given. Files ending in
.json or .jsonc may contain comments and trailing commas; anything else is
read as YAML. Its
"commerce" section overrides the resolved provider. The composed configuration
is printed as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.compose(cmd)
		},
	}

	flags := cmd.Flags()
	flags.String(flagConfig, "", "Base build configuration file (YAML, JSON or JSONC)")
	flags.String(flagTSConfig, "", "tsconfig path relative to the project root")
	flags.Bool(flagSkipTSConfig, false, "Do not rewrite tsconfig aliases")
	cobra.CheckErr(rt.settings.BindPFlags(flags))

	return cmd
}

func (rt *runtime) compose(cmd *cobra.Command) error {
	root, err := rt.projectRoot()
	if err != nil {
		return err
	}

	snapshot, err := rt.environment(root)
	if err != nil {
		return err
	}

	logger := rt.logger(cmd.ErrOrStderr())

	base, err := rt.baseConfig()
	if err != nil {
		return err
	}

	app := commerce.NewApp(
		commerce.WithLogLevel(rt.loggerConfig().Level),
		commerce.WithLogFormat(rt.loggerConfig().Format),
		commerce.WithLogOutput(cmd.ErrOrStderr()),
		commerce.WithProjectRoot(root),
		commerce.WithEnv(snapshot),
		commerce.WithFS(rt.fs),
	)

	err = app.Err()
	if err != nil {
		return fmt.Errorf("building app: %w", err)
	}

	result, err := app.Compose(base)
	if err != nil {
		return err
	}

	logger.Debug("configuration composed", "root", root, "keys", len(result))

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding composed configuration: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(pretty.Pretty(data))

	return err
}

// baseConfig loads the --config file and applies the tsconfig flags to its commerce section.
func (rt *runtime) baseConfig() (composer.BuildConfig, error) {
	base := composer.BuildConfig{}

	path := rt.settings.GetString(flagConfig)
	if path != "" {
		fetcher, err := filefetcher.NewFetcher(rt.fs, path)()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", config.ErrFetch, err)
		}

		_, err = config.Load(&base, "", parserFor(path), fetcher, nil)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	overrides := map[string]any{}

	if tsconfigPath := rt.settings.GetString(flagTSConfig); tsconfigPath != "" {
		overrides["tsconfigPath"] = tsconfigPath
	}

	if rt.settings.GetBool(flagSkipTSConfig) {
		overrides["updateTSConfig"] = false
	}

	if len(overrides) == 0 {
		return base, nil
	}

	switch section := base[composer.CommerceKey].(type) {
	case nil:
		base[composer.CommerceKey] = overrides
	case map[string]any:
		merged := maps.Clone(section)
		maps.Copy(merged, overrides)
		base[composer.CommerceKey] = merged
	default:
		return nil, fmt.Errorf("%w: commerce section is %T", composer.ErrInvalidCommerceConfig, section)
	}

	return base, nil
}

// parserFor picks the JSONC parser for .json and .jsonc files and YAML otherwise.
//
//nolint:ireturn // callers only need the config.Parser contract
func parserFor(path string) config.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return jsonparser.NewParser()
	default:
		return yamlparser.NewParser()
	}
}
