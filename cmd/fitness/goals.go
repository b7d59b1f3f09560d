// ABOUTME: CLI command for printing fitness goal progress.
// ABOUTME: Non-interactive equivalent of menu option 9.
package main

import (
	"fmt"

	"github.com/harperreed/fitness/internal/shell"
	"github.com/spf13/cobra"
)

var goalsCmd = &cobra.Command{
	Use:     "goals",
	Aliases: []string{"g"},
	Short:   "Show progress towards fitness goals",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := db.ListGoals(cmd.Context())
		if err != nil {
			return err
		}

		if len(goals) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No fitness goals found.")
			return nil
		}

		shell.RenderGoals(cmd.OutOrStdout(), goals)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(goalsCmd)
}
