// ABOUTME: Goal model with progress calculation.
// ABOUTME: Goals accumulate total reps logged in their category.
package models

import "fmt"

// Goal is a cumulative rep target for a category.
type Goal struct {
	ID           int64   `db:"id" json:"id" yaml:"id"`
	Name         string  `db:"name" json:"name" yaml:"name"`
	TargetValue  int     `db:"target_value" json:"target_value" yaml:"target_value"`
	CurrentValue int     `db:"current_value" json:"current_value" yaml:"current_value"`
	CategoryID   int64   `db:"category_id" json:"category_id" yaml:"category_id"`
	Deadline     *string `db:"deadline" json:"deadline,omitempty" yaml:"deadline,omitempty"`

	// CategoryName is populated by queries that join exercise_categories.
	CategoryName string `db:"category_name" json:"category,omitempty" yaml:"-"`
}

// NewGoal creates a Goal with CurrentValue 0.
func NewGoal(categoryID int64, name string, target int) *Goal {
	return &Goal{
		Name:        name,
		TargetValue: target,
		CategoryID:  categoryID,
	}
}

// WithDeadline sets the deadline (YYYY-MM-DD). An empty string clears it.
func (g *Goal) WithDeadline(deadline string) *Goal {
	if deadline == "" {
		g.Deadline = nil
		return g
	}
	g.Deadline = &deadline
	return g
}

// Percent returns progress as a percentage. A non-positive target yields 0.
func (g Goal) Percent() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	return float64(g.CurrentValue) / float64(g.TargetValue) * 100
}

// Progress renders progress as "current/target (pct%)".
func (g Goal) Progress() string {
	return fmt.Sprintf("%d/%d (%.1f%%)", g.CurrentValue, g.TargetValue, g.Percent())
}
