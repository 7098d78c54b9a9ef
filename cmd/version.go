package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridable at build time:
// go build -ldflags "-X github.com/genolab/pcrmix/cmd.version=v1.2.0"
var version = "0.1.0"

// versionCmd prints the CLI version.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pcrmix version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pcrmix %s\n", version)
		},
	}
}
