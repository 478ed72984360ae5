// Command commerce-config selects the commerce provider of a storefront build
// and rewrites its tsconfig "@framework" aliases.
package main

import (
	"fmt"
	"os"

	"github.com/0xalexb/hjarta-commerce/internal/cli"
)

func main() {
	err := cli.NewRootCommand(os.Environ()).Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
