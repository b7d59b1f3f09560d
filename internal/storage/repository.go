// ABOUTME: Repository interface for fitness data storage.
// ABOUTME: Defines the contract for categories, routines, logs, and goals.
package storage

import (
	"context"

	"github.com/harperreed/fitness/internal/models"
)

// Repository defines the storage interface for fitness data.
type Repository interface {
	// Category operations
	AddCategory(ctx context.Context, name string) (*models.Category, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id int64) (int, error)

	// Exercise operations
	AddExercise(ctx context.Context, e *models.Exercise) error
	GetExercise(ctx context.Context, id int64) (*models.Exercise, error)
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	ListExercisesByCategory(ctx context.Context, categoryID int64) ([]models.Exercise, error)
	CountExercises(ctx context.Context, categoryID int64) (int, error)

	// Routine operations
	CreateRoutine(ctx context.Context, name, dateCreated string) (*models.Routine, error)
	GetRoutine(ctx context.Context, id int64) (*models.Routine, error)
	ListRoutines(ctx context.Context) ([]models.Routine, error)
	AddRoutineExercise(ctx context.Context, re models.RoutineExercise) error
	RoutineEntries(ctx context.Context, routineID int64) ([]models.RoutineEntry, error)

	// Log operations
	LogWorkout(ctx context.Context, routineID int64, date string, entries []models.LogEntry) (*models.LogResult, error)
	ExerciseProgress(ctx context.Context, exerciseID int64) (*models.ExerciseProgress, error)
	ListSessions(ctx context.Context, limit int) ([]models.Session, error)

	// Goal operations
	SetGoal(ctx context.Context, g *models.Goal) error
	GetGoal(ctx context.Context, id int64) (*models.Goal, error)
	ListGoals(ctx context.Context) ([]models.Goal, error)

	// Export
	Export(ctx context.Context) (*ExportData, error)

	// Lifecycle
	Close() error
}
