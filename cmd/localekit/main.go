// localekit is offline tooling for Planora's translation dictionaries:
// typed key generation and cross-locale parity checking.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via -ldflags during build)
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "localekit",
		Short:         "Translation dictionary tooling",
		Long:          "localekit generates typed translation keys and checks locale dictionaries for parity with the reference locale.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newKeysCmd())
	root.AddCommand(newCheckCmd())
	return root
}
