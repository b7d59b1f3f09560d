// ABOUTME: Plain-text table renderers shared by the shell and CLI subcommands.
// ABOUTME: Column layouts are fixed-width so output lines up in a terminal.
package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/harperreed/fitness/internal/models"
)

// RenderRoutine writes a routine's exercises as a table.
func RenderRoutine(w io.Writer, routine *models.Routine, entries []models.RoutineEntry) {
	fmt.Fprintf(w, "\nWorkout Routine: %s\n", routine.Name)
	fmt.Fprintf(w, "Created: %s\n", routine.DateCreated)
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "%-20s %-15s %-5s %-5s\n", "Exercise", "Category", "Sets", "Reps")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, e := range entries {
		fmt.Fprintf(w, "%-20s %-15s %-5d %-5d\n", e.ExerciseName, e.CategoryName, e.Sets, e.Reps)
	}
}

// RenderProgress writes an exercise's log history followed by its stats.
func RenderProgress(w io.Writer, p *models.ExerciseProgress) {
	fmt.Fprintf(w, "\nProgress for %s:\n", p.Exercise.Name)
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintf(w, "%-12s %-5s %-5s %-5s\n", "Date", "Sets", "Reps", "Total")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, l := range p.Logs {
		fmt.Fprintf(w, "%-12s %-5d %-5d %-5d\n", l.Date, l.Sets, l.Reps, l.Total())
	}

	st := p.Stats
	fmt.Fprintln(w, "\nStats:")
	fmt.Fprintf(w, "Total workouts: %d\n", st.Count)
	fmt.Fprintf(w, "Max sets: %d\n", st.MaxSets)
	fmt.Fprintf(w, "Max reps: %d\n", st.MaxReps)
	fmt.Fprintf(w, "Max total reps: %d\n", st.MaxTotal)
	fmt.Fprintf(w, "Average sets: %.1f\n", st.AvgSets)
	fmt.Fprintf(w, "Average reps: %.1f\n", st.AvgReps)
}

// RenderGoals writes goals with their progress and deadline.
func RenderGoals(w io.Writer, goals []models.Goal) {
	fmt.Fprintln(w, "\nYour Fitness Goals:")
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintf(w, "%-4s %-20s %-15s %-20s %-12s\n", "ID", "Goal", "Category", "Progress", "Deadline")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, g := range goals {
		deadline := "None"
		if g.Deadline != nil {
			deadline = *g.Deadline
		}
		fmt.Fprintf(w, "%-4d %-20s %-15s %-20s %-12s\n", g.ID, g.Name, g.CategoryName, g.Progress(), deadline)
	}
}

// RenderSessions writes one line per logged workout session.
func RenderSessions(w io.Writer, sessions []models.Session) {
	fmt.Fprintf(w, "%-10s %-12s %-20s %-9s %-6s\n", "Session", "Date", "Routine", "Exercises", "Reps")
	fmt.Fprintln(w, strings.Repeat("-", 61))
	for _, s := range sessions {
		routine := "(deleted)"
		if s.RoutineName != nil {
			routine = *s.RoutineName
		}
		fmt.Fprintf(w, "%-10s %-12s %-20s %-9d %-6d\n", shortID(s.ID), s.Date, routine, s.Exercises, s.TotalReps)
	}
}
