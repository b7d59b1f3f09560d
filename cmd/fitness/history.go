// ABOUTME: CLI command for listing logged workout sessions.
// ABOUTME: One line per session with its routine and total reps.
package main

import (
	"fmt"

	"github.com/harperreed/fitness/internal/shell"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "List recent workout sessions",
	Long: `List recent workout sessions.

Each time a routine is logged its exercises share a session ID. The Routine
column reads (deleted) when the routine has since been removed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := db.ListSessions(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		if len(sessions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No workouts logged yet.")
			return nil
		}

		shell.RenderSessions(cmd.OutOrStdout(), sessions)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "max sessions to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
