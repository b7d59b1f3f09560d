// ABOUTME: Shell operations for logging workouts and viewing exercise progress.
// ABOUTME: Logging walks a routine's exercises, offering planned sets/reps as defaults.
package shell

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fitness/internal/models"
)

func (s *Shell) logWorkout(ctx context.Context) error {
	routine, err := s.pickRoutine(ctx, "Select a routine to log:", false,
		"No workout routines found. Please create a routine first.")
	if err != nil || routine == nil {
		return err
	}

	date, err := s.readLine("Enter workout date (YYYY-MM-DD) or press Enter for today: ")
	if err != nil {
		return err
	}
	if date == "" {
		date = models.Today()
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		s.fail("Invalid date. Please use YYYY-MM-DD.")
		return nil
	}

	entries, err := s.repo.RoutineEntries(ctx, routine.ID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		s.printf("No exercises found in routine '%s'.\n", routine.Name)
		return nil
	}

	s.printf("\nLogging workout for routine '%s' on %s:\n", routine.Name, date)

	logs := make([]models.LogEntry, 0, len(entries))
	for _, e := range entries {
		s.printf("\nExercise: %s\n", e.ExerciseName)
		s.printf("Default: %d sets, %d reps\n", e.Sets, e.Reps)

		sets, err := s.readIntDefault(
			fmt.Sprintf("Sets completed (press Enter for default %d): ", e.Sets), e.Sets)
		if err != nil {
			return err
		}
		reps, err := s.readIntDefault(
			fmt.Sprintf("Reps completed (press Enter for default %d): ", e.Reps), e.Reps)
		if err != nil {
			return err
		}

		logs = append(logs, models.LogEntry{ExerciseID: e.ExerciseID, Sets: sets, Reps: reps})
	}

	result, err := s.repo.LogWorkout(ctx, routine.ID, date, logs)
	if err != nil {
		return err
	}

	s.success("Workout logged successfully!")
	s.printf("%s\n", faint.Sprintf("Session %s", shortID(result.SessionID)))
	return nil
}

func (s *Shell) viewExerciseProgress(ctx context.Context) error {
	exercises, err := s.repo.ListExercises(ctx)
	if err != nil {
		return err
	}
	if len(exercises) == 0 {
		s.println("No exercises found.")
		return nil
	}

	s.println("\nAvailable Exercises:")
	for _, e := range exercises {
		s.printf("%d. %s (Category: %s)\n", e.ID, e.Name, e.CategoryName)
	}

	id, err := s.readID("\nEnter exercise ID: ")
	if err != nil {
		return err
	}

	progress, err := s.repo.ExerciseProgress(ctx, id)
	if err != nil {
		return err
	}
	if len(progress.Logs) == 0 {
		s.printf("No workout logs found for exercise '%s'.\n", progress.Exercise.Name)
		return nil
	}

	RenderProgress(s.out, progress)
	return nil
}

// shortID trims a session UUID to its first block for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
