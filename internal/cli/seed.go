package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load a sample organization into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			seeded, err := env.backend.Seed()
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			if !seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "Database already has data; nothing seeded")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sample data loaded")
			return nil
		},
	}
}
