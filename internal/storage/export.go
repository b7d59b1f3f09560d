// ABOUTME: Export functionality for fitness data.
// ABOUTME: Supports JSON and YAML backups of every table.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fitness/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for fitness data.
type ExportData struct {
	Version          string                   `json:"version" yaml:"version"`
	ExportedAt       time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool             string                   `json:"tool" yaml:"tool"`
	Categories       []models.Category        `json:"categories" yaml:"categories"`
	Exercises        []models.Exercise        `json:"exercises" yaml:"exercises"`
	Routines         []models.Routine         `json:"routines" yaml:"routines"`
	RoutineExercises []models.RoutineExercise `json:"routine_exercises" yaml:"routine_exercises"`
	Logs             []models.WorkoutLog      `json:"workout_logs" yaml:"workout_logs"`
	Goals            []models.Goal            `json:"goals" yaml:"goals"`
}

// Export retrieves all data for backup.
func (d *DB) Export(ctx context.Context) (*ExportData, error) {
	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "fitness",
	}

	var err error
	if data.Categories, err = d.ListCategories(ctx); err != nil {
		return nil, err
	}
	if data.Exercises, err = d.ListExercises(ctx); err != nil {
		return nil, err
	}
	if data.Routines, err = d.ListRoutines(ctx); err != nil {
		return nil, err
	}
	if data.Goals, err = d.ListGoals(ctx); err != nil {
		return nil, err
	}

	err = d.db.SelectContext(ctx, &data.RoutineExercises,
		"SELECT routine_id, exercise_id, sets, reps FROM routine_exercises ORDER BY routine_id, rowid")
	if err != nil {
		return nil, fmt.Errorf("list routine exercises: %w", err)
	}

	err = d.db.SelectContext(ctx, &data.Logs,
		"SELECT id, exercise_id, date, sets, reps, session_id, routine_id FROM workout_logs ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}

	return data, nil
}

// JSON encodes the export as indented JSON.
func (e *ExportData) JSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// YAML encodes the export as YAML.
func (e *ExportData) YAML() ([]byte, error) {
	return yaml.Marshal(e)
}
