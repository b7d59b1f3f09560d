// ABOUTME: Workout routine models.
// ABOUTME: A routine is a named template of exercises with planned sets and reps.
package models

import "time"

// DateLayout is the calendar date format used for storage and display.
const DateLayout = "2006-01-02"

// Today returns the current local date formatted with DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}

// Routine is a reusable workout template.
type Routine struct {
	ID          int64  `db:"id" json:"id" yaml:"id"`
	Name        string `db:"name" json:"name" yaml:"name"`
	DateCreated string `db:"date_created" json:"date_created" yaml:"date_created"`
}

// RoutineExercise links an exercise into a routine with its planned volume.
type RoutineExercise struct {
	RoutineID  int64 `db:"routine_id" json:"routine_id" yaml:"routine_id"`
	ExerciseID int64 `db:"exercise_id" json:"exercise_id" yaml:"exercise_id"`
	Sets       int   `db:"sets" json:"sets" yaml:"sets"`
	Reps       int   `db:"reps" json:"reps" yaml:"reps"`
}

// RoutineEntry is a routine exercise joined with its exercise and category names.
type RoutineEntry struct {
	ExerciseID   int64  `db:"exercise_id" json:"exercise_id"`
	ExerciseName string `db:"exercise_name" json:"exercise"`
	CategoryID   int64  `db:"category_id" json:"category_id"`
	CategoryName string `db:"category_name" json:"category"`
	Sets         int    `db:"sets" json:"sets"`
	Reps         int    `db:"reps" json:"reps"`
}
