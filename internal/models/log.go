// ABOUTME: Workout log models and derived progress statistics.
// ABOUTME: Logs from one LogWorkout call share a session ID.
package models

import "github.com/google/uuid"

// WorkoutLog records the sets and reps performed for one exercise on one date.
type WorkoutLog struct {
	ID         int64   `db:"id" json:"id" yaml:"id"`
	ExerciseID int64   `db:"exercise_id" json:"exercise_id" yaml:"exercise_id"`
	Date       string  `db:"date" json:"date" yaml:"date"`
	Sets       int     `db:"sets" json:"sets" yaml:"sets"`
	Reps       int     `db:"reps" json:"reps" yaml:"reps"`
	SessionID  *string `db:"session_id" json:"session_id,omitempty" yaml:"session_id,omitempty"`
	RoutineID  *int64  `db:"routine_id" json:"routine_id,omitempty" yaml:"routine_id,omitempty"`
}

// Total is the rep volume of the log: sets * reps.
func (l WorkoutLog) Total() int {
	return l.Sets * l.Reps
}

// LogEntry is the performed volume for one exercise when logging a workout.
type LogEntry struct {
	ExerciseID int64
	Sets       int
	Reps       int
}

// NewSessionID returns a fresh workout session identifier.
func NewSessionID() string {
	return uuid.New().String()
}

// LogResult summarizes a logged workout.
type LogResult struct {
	SessionID    string
	Date         string
	Logs         []WorkoutLog
	GoalsUpdated int
}

// ExerciseStats are aggregates over every log of one exercise.
type ExerciseStats struct {
	Count    int     `db:"workout_count" json:"workout_count"`
	MaxSets  int     `db:"max_sets" json:"max_sets"`
	MaxReps  int     `db:"max_reps" json:"max_reps"`
	MaxTotal int     `db:"max_total" json:"max_total"`
	AvgSets  float64 `db:"avg_sets" json:"avg_sets"`
	AvgReps  float64 `db:"avg_reps" json:"avg_reps"`
}

// ExerciseProgress is an exercise's log history, newest first, plus stats.
type ExerciseProgress struct {
	Exercise Exercise
	Logs     []WorkoutLog
	Stats    ExerciseStats
}

// Session groups the logs of one workout.
type Session struct {
	ID          string  `db:"session_id" json:"session_id"`
	Date        string  `db:"date" json:"date"`
	RoutineName *string `db:"routine_name" json:"routine,omitempty"`
	Exercises   int     `db:"exercises" json:"exercises"`
	TotalReps   int     `db:"total_reps" json:"total_reps"`
}
