package cli

import (
	"fmt"

	"github.com/0xalexb/hjarta-commerce/provider"

	"github.com/spf13/cobra"
)

func newResolveCommand(rt *runtime) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the provider selected by the environment",
		Long: `Print the provider selected by the environment.

The explicit COMMERCE_PROVIDER value is printed as given. Use --check to fail
when it is not a supported provider.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := rt.projectRoot()
			if err != nil {
				return err
			}

			snapshot, err := rt.environment(root)
			if err != nil {
				return err
			}

			id := provider.Resolve(snapshot)
			rt.logger(cmd.ErrOrStderr()).Debug("provider resolved",
				"provider", id.String(), "root", root)

			if check {
				err = provider.Validate(id)
				if err != nil {
					return err
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)

			return err
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Fail when the provider is not supported")

	return cmd
}
