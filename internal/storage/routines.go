// ABOUTME: Workout routine CRUD operations for SQLite storage.
// ABOUTME: An exercise appears at most once per routine.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fitness/internal/models"
)

// CreateRoutine stores a new, empty routine. An empty dateCreated means today.
func (d *DB) CreateRoutine(ctx context.Context, name, dateCreated string) (*models.Routine, error) {
	if dateCreated == "" {
		dateCreated = models.Today()
	}

	res, err := d.db.ExecContext(ctx,
		"INSERT INTO workout_routines (name, date_created) VALUES (?, ?)",
		name, dateCreated)
	if err != nil {
		return nil, fmt.Errorf("create routine: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create routine: %w", err)
	}

	d.log.Debug("routine created", "id", id, "name", name)
	return &models.Routine{ID: id, Name: name, DateCreated: dateCreated}, nil
}

// GetRoutine retrieves a routine by ID.
func (d *DB) GetRoutine(ctx context.Context, id int64) (*models.Routine, error) {
	var r models.Routine
	err := d.db.GetContext(ctx, &r, "SELECT id, name, date_created FROM workout_routines WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("routine", id)
		}
		return nil, fmt.Errorf("get routine: %w", err)
	}
	return &r, nil
}

// ListRoutines returns all routines ordered by ID.
func (d *DB) ListRoutines(ctx context.Context) ([]models.Routine, error) {
	var out []models.Routine
	if err := d.db.SelectContext(ctx, &out, "SELECT id, name, date_created FROM workout_routines ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}
	return out, nil
}

// AddRoutineExercise adds an exercise to a routine.
// Returns ErrDuplicate if the exercise is already in the routine.
func (d *DB) AddRoutineExercise(ctx context.Context, re models.RoutineExercise) error {
	if _, err := d.GetRoutine(ctx, re.RoutineID); err != nil {
		return err
	}
	if _, err := d.GetExercise(ctx, re.ExerciseID); err != nil {
		return err
	}

	_, err := d.db.ExecContext(ctx,
		"INSERT INTO routine_exercises (routine_id, exercise_id, sets, reps) VALUES (?, ?, ?, ?)",
		re.RoutineID, re.ExerciseID, re.Sets, re.Reps)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("exercise %d in routine %d: %w", re.ExerciseID, re.RoutineID, ErrDuplicate)
		}
		return fmt.Errorf("add routine exercise: %w", err)
	}

	d.log.Debug("routine exercise added",
		"routine_id", re.RoutineID, "exercise_id", re.ExerciseID, "sets", re.Sets, "reps", re.Reps)
	return nil
}

// RoutineEntries returns a routine's exercises joined with exercise and category names.
func (d *DB) RoutineEntries(ctx context.Context, routineID int64) ([]models.RoutineEntry, error) {
	if _, err := d.GetRoutine(ctx, routineID); err != nil {
		return nil, err
	}

	query := `
		SELECT re.exercise_id, e.name AS exercise_name, e.category_id,
		       ec.name AS category_name, re.sets, re.reps
		FROM routine_exercises re
		JOIN exercises e ON re.exercise_id = e.id
		JOIN exercise_categories ec ON e.category_id = ec.id
		WHERE re.routine_id = ?
		ORDER BY re.rowid
	`
	var out []models.RoutineEntry
	if err := d.db.SelectContext(ctx, &out, query, routineID); err != nil {
		return nil, fmt.Errorf("list routine entries: %w", err)
	}
	return out, nil
}
