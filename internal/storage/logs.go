// ABOUTME: Workout logging and progress queries for SQLite storage.
// ABOUTME: Logging an exercise adds sets*reps to every goal in its category.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fitness/internal/models"
)

// LogWorkout records one session of a routine. An empty date means today.
// Every entry inserts a workout log and adds sets*reps to each goal sharing
// the exercise's category. The whole session is one transaction.
func (d *DB) LogWorkout(ctx context.Context, routineID int64, date string, entries []models.LogEntry) (*models.LogResult, error) {
	if _, err := d.GetRoutine(ctx, routineID); err != nil {
		return nil, err
	}
	if date == "" {
		date = models.Today()
	}

	result := &models.LogResult{
		SessionID: models.NewSessionID(),
		Date:      date,
	}

	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("log workout: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, entry := range entries {
		var categoryID int64
		err := tx.GetContext(ctx, &categoryID, "SELECT category_id FROM exercises WHERE id = ?", entry.ExerciseID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, notFound("exercise", entry.ExerciseID)
			}
			return nil, fmt.Errorf("log workout: %w", err)
		}

		res, err := tx.ExecContext(ctx, `
			INSERT INTO workout_logs (exercise_id, date, sets, reps, session_id, routine_id)
			VALUES (?, ?, ?, ?, ?, ?)`,
			entry.ExerciseID, date, entry.Sets, entry.Reps, result.SessionID, routineID)
		if err != nil {
			return nil, fmt.Errorf("insert workout log: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("insert workout log: %w", err)
		}

		// Goals are assumed to measure total reps.
		res, err = tx.ExecContext(ctx,
			"UPDATE goals SET current_value = current_value + ? WHERE category_id = ?",
			entry.Sets*entry.Reps, categoryID)
		if err != nil {
			return nil, fmt.Errorf("update goals: %w", err)
		}
		updated, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("update goals: %w", err)
		}
		result.GoalsUpdated += int(updated)

		sessionID := result.SessionID
		rid := routineID
		result.Logs = append(result.Logs, models.WorkoutLog{
			ID:         id,
			ExerciseID: entry.ExerciseID,
			Date:       date,
			Sets:       entry.Sets,
			Reps:       entry.Reps,
			SessionID:  &sessionID,
			RoutineID:  &rid,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("log workout: %w", err)
	}

	d.log.Info("workout logged",
		"routine_id", routineID, "session_id", result.SessionID,
		"date", date, "exercises", len(result.Logs), "goals_updated", result.GoalsUpdated)
	return result, nil
}

// ExerciseProgress returns an exercise's logs, most recent first, with aggregate stats.
func (d *DB) ExerciseProgress(ctx context.Context, exerciseID int64) (*models.ExerciseProgress, error) {
	e, err := d.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	progress := &models.ExerciseProgress{Exercise: *e}

	query := `
		SELECT id, exercise_id, date, sets, reps, session_id, routine_id
		FROM workout_logs
		WHERE exercise_id = ?
		ORDER BY date DESC, id DESC
	`
	if err := d.db.SelectContext(ctx, &progress.Logs, query, exerciseID); err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}

	statsQuery := `
		SELECT
			COUNT(*) AS workout_count,
			COALESCE(MAX(sets), 0) AS max_sets,
			COALESCE(MAX(reps), 0) AS max_reps,
			COALESCE(MAX(sets * reps), 0) AS max_total,
			COALESCE(AVG(sets), 0.0) AS avg_sets,
			COALESCE(AVG(reps), 0.0) AS avg_reps
		FROM workout_logs
		WHERE exercise_id = ?
	`
	if err := d.db.GetContext(ctx, &progress.Stats, statsQuery, exerciseID); err != nil {
		return nil, fmt.Errorf("exercise stats: %w", err)
	}

	return progress, nil
}

// ListSessions returns workout sessions, most recent first.
// A limit of 0 or less returns all sessions.
func (d *DB) ListSessions(ctx context.Context, limit int) ([]models.Session, error) {
	query := `
		SELECT
			l.session_id,
			MIN(l.date) AS date,
			MAX(r.name) AS routine_name,
			COUNT(*) AS exercises,
			SUM(l.sets * l.reps) AS total_reps
		FROM workout_logs l
		LEFT JOIN workout_routines r ON r.id = l.routine_id
		WHERE l.session_id IS NOT NULL
		GROUP BY l.session_id
		ORDER BY MIN(l.date) DESC, MAX(l.id) DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var out []models.Session
	if err := d.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return out, nil
}
