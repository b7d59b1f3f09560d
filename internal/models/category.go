// ABOUTME: Category and Exercise models for the exercise library.
// ABOUTME: Exercises belong to exactly one category.
package models

// Category groups related exercises, e.g. "Legs" or "Back".
type Category struct {
	ID   int64  `db:"id" json:"id" yaml:"id"`
	Name string `db:"name" json:"name" yaml:"name"`
}

// Exercise is a single movement in the library.
type Exercise struct {
	ID          int64   `db:"id" json:"id" yaml:"id"`
	Name        string  `db:"name" json:"name" yaml:"name"`
	CategoryID  int64   `db:"category_id" json:"category_id" yaml:"category_id"`
	Description *string `db:"description" json:"description,omitempty" yaml:"description,omitempty"`

	// CategoryName is populated by queries that join exercise_categories.
	CategoryName string `db:"category_name" json:"-" yaml:"-"`
}

// NewExercise creates an Exercise in the given category.
func NewExercise(categoryID int64, name string) *Exercise {
	return &Exercise{
		Name:       name,
		CategoryID: categoryID,
	}
}

// WithDescription sets the description. An empty string clears it.
func (e *Exercise) WithDescription(description string) *Exercise {
	if description == "" {
		e.Description = nil
		return e
	}
	e.Description = &description
	return e
}
