package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const modulePath = "github.com/mesh-intelligence/roster"

// Version is the roster release. Overridden at build time with
// -ldflags "-X github.com/mesh-intelligence/roster/internal/cli.Version=...".
var Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the roster version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "roster v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
