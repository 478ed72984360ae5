package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/0xalexb/hjarta-commerce/composer"
	"github.com/0xalexb/hjarta-commerce/tsconfig"

	"github.com/spf13/cobra"
)

func newAliasesCommand(rt *runtime) *cobra.Command {
	var tsconfigPath string

	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "Print the provider aliases currently set in tsconfig",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := rt.projectRoot()
			if err != nil {
				return err
			}

			path := filepath.Join(root, filepath.FromSlash(tsconfigPath))

			doc, err := tsconfig.NewFileStore(rt.fs).Read(path)
			if err != nil {
				return fmt.Errorf("%w %q: %w", composer.ErrConfigRead, path, err)
			}

			paths, err := doc.Paths()
			if err != nil {
				return fmt.Errorf("%w %q: %w", composer.ErrConfigRead, path, err)
			}

			out := cmd.OutOrStdout()

			for _, key := range []string{composer.AliasKey, composer.AliasWildcardKey} {
				targets, found := paths[key]
				if !found {
					continue
				}

				_, err = fmt.Fprintf(out, "%s\t%s\n", key, strings.Join(targets, ", "))
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&tsconfigPath, flagTSConfig, composer.DefaultTSConfigPath, "tsconfig path relative to the project root")

	return cmd
}
