package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/roster/pkg/types"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Write every table to JSONL files in dir",
		Long: `Export writes departments.jsonl, roles.jsonl and employees.jsonl to the
given directory, one JSON object per row, plus a manifest.json recording the
export id and row counts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			manifest, err := env.backend.Export(args[0])
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Export %s written to %s\n", manifest.ExportID, args[0])
			for _, table := range types.StandardTableNames {
				fmt.Fprintf(out, "  %-12s %d rows\n", table, manifest.Tables[table])
			}
			return nil
		},
	}
}
