package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/internal/paths"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize roster storage",
		Long:  "Create the configuration directory and config.yaml, then create the database schema.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

// runInit relies on openEnv for the work: loading settings writes the
// default config.yaml and attaching creates the schema.
func runInit(cmd *cobra.Command, args []string) error {
	env, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Roster initialized successfully")
	fmt.Fprintln(out, "  config:  ", filepath.Join(env.configDir, paths.ConfigFileName))
	fmt.Fprintln(out, "  database:", env.backend.Path())
	return nil
}
