// ABOUTME: Shell operations for workout routines.
// ABOUTME: Routine creation loops category -> exercise -> sets/reps until the user stops.
package shell

import (
	"context"
	"errors"
	"io"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/storage"
)

func (s *Shell) createRoutine(ctx context.Context) error {
	name, err := s.readLine("Enter name for the new workout routine: ")
	if err != nil {
		return err
	}

	routine, err := s.repo.CreateRoutine(ctx, name, "")
	if err != nil {
		return err
	}

	for {
		categories, err := s.repo.ListCategories(ctx)
		if err != nil {
			return err
		}
		if len(categories) == 0 {
			s.println("No categories found. Please add some categories first.")
			break
		}

		if err := s.addRoutineEntry(ctx, routine); err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			s.report(err)
		}

		more, err := s.confirm("\nAdd more exercises to routine? (y/n): ")
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	s.success("Workout routine '%s' created successfully!", routine.Name)
	return nil
}

// addRoutineEntry runs one category -> exercise -> sets/reps round.
// A duplicate exercise is reported here and does not end routine creation.
func (s *Shell) addRoutineEntry(ctx context.Context, routine *models.Routine) error {
	category, err := s.pickCategory(ctx, "Select exercises by category:",
		"\nEnter category ID to view exercises: ",
		"No categories found. Please add some categories first.")
	if err != nil || category == nil {
		return err
	}

	exercises, err := s.repo.ListExercisesByCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	if len(exercises) == 0 {
		s.printf("No exercises found in category '%s'.\n", category.Name)
		return nil
	}

	s.printf("\nExercises in category '%s':\n", category.Name)
	for _, e := range exercises {
		s.printf("%d. %s\n", e.ID, e.Name)
	}

	exerciseID, err := s.readID("\nEnter exercise ID to add to routine: ")
	if err != nil {
		return err
	}
	exercise, err := s.repo.GetExercise(ctx, exerciseID)
	if err != nil {
		return err
	}

	sets, err := s.readInt("Enter number of sets: ")
	if err != nil {
		return err
	}
	reps, err := s.readInt("Enter number of reps: ")
	if err != nil {
		return err
	}

	err = s.repo.AddRoutineExercise(ctx, models.RoutineExercise{
		RoutineID:  routine.ID,
		ExerciseID: exercise.ID,
		Sets:       sets,
		Reps:       reps,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		s.warn("Exercise already exists in this routine!")
		return nil
	}
	if err != nil {
		return err
	}

	s.success("Exercise '%s' added to routine!", exercise.Name)
	return nil
}

// pickRoutine lists routines and reads a routine ID.
// Returns nil without error when there are no routines.
func (s *Shell) pickRoutine(ctx context.Context, header string, showDates bool, empty string) (*models.Routine, error) {
	routines, err := s.repo.ListRoutines(ctx)
	if err != nil {
		return nil, err
	}
	if len(routines) == 0 {
		s.println(empty)
		return nil, nil
	}

	s.println("\n" + header)
	for _, r := range routines {
		if showDates {
			s.printf("%d. %s (Created: %s)\n", r.ID, r.Name, r.DateCreated)
		} else {
			s.printf("%d. %s\n", r.ID, r.Name)
		}
	}

	prompt := "\nEnter routine ID: "
	if showDates {
		prompt = "\nEnter routine ID to view details: "
	}
	id, err := s.readID(prompt)
	if err != nil {
		return nil, err
	}
	return s.repo.GetRoutine(ctx, id)
}

func (s *Shell) viewRoutines(ctx context.Context) error {
	routine, err := s.pickRoutine(ctx, "Available Workout Routines:", true, "No workout routines found.")
	if err != nil || routine == nil {
		return err
	}

	entries, err := s.repo.RoutineEntries(ctx, routine.ID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		s.printf("No exercises found in routine '%s'.\n", routine.Name)
		return nil
	}

	RenderRoutine(s.out, routine, entries)
	return nil
}
