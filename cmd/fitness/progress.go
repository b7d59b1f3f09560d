// ABOUTME: CLI command for printing one exercise's progress.
// ABOUTME: Shows the log history newest first followed by aggregate stats.
package main

import (
	"fmt"
	"strconv"

	"github.com/harperreed/fitness/internal/shell"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress <exercise-id>",
	Short: "Show workout history and stats for an exercise",
	Long: `Show workout history and stats for an exercise.

Stats include the number of workouts, max sets, max reps, max total reps
(sets x reps in a single log), and average sets and reps.

EXAMPLES:

  fitness progress 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exercise ID: %s", args[0])
		}

		p, err := db.ExerciseProgress(cmd.Context(), id)
		if err != nil {
			return err
		}

		if len(p.Logs) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No workout logs found for exercise '%s'.\n", p.Exercise.Name)
			return nil
		}

		shell.RenderProgress(cmd.OutOrStdout(), p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
