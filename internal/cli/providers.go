package cli

import (
	"fmt"

	commerce "github.com/0xalexb/hjarta-commerce"
	"github.com/0xalexb/hjarta-commerce/provider"

	"github.com/spf13/cobra"
)

func newProvidersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the supported providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			for _, id := range provider.All() {
				marker := " "
				if id == provider.Default {
					marker = "*"
				}

				_, err := fmt.Fprintf(out, "%s %s\n", marker, id)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "commerce-config %s\ncommit: %s\ncompiled at: %s\n",
				commerce.Version, commerce.Commit, commerce.CompiledAt)

			return err
		},
	}
}
