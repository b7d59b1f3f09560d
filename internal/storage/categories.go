// ABOUTME: Category and Exercise CRUD operations for SQLite storage.
// ABOUTME: Category deletion removes the category's exercises in the same transaction.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/fitness/internal/models"
)

// AddCategory stores a new category. Returns ErrDuplicate if the name is taken.
func (d *DB) AddCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)

	res, err := d.db.ExecContext(ctx, "INSERT INTO exercise_categories (name) VALUES (?)", name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("category %q: %w", name, ErrDuplicate)
		}
		return nil, fmt.Errorf("add category: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("add category: %w", err)
	}

	d.log.Debug("category added", "id", id, "name", name)
	return &models.Category{ID: id, Name: name}, nil
}

// GetCategory retrieves a category by ID.
func (d *DB) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	err := d.db.GetContext(ctx, &c, "SELECT id, name FROM exercise_categories WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("category", id)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListCategories returns all categories ordered by ID.
func (d *DB) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := d.db.SelectContext(ctx, &out, "SELECT id, name FROM exercise_categories ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// DeleteCategory removes a category and all of its exercises.
// Returns the number of exercises deleted.
func (d *DB) DeleteCategory(ctx context.Context, id int64) (int, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("delete category: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err := tx.GetContext(ctx, &exists, "SELECT COUNT(*) FROM exercise_categories WHERE id = ?", id); err != nil {
		return 0, fmt.Errorf("delete category: %w", err)
	}
	if exists == 0 {
		return 0, notFound("category", id)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM exercises WHERE category_id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("delete exercises: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete exercises: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM exercise_categories WHERE id = ?", id); err != nil {
		return 0, fmt.Errorf("delete category: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("delete category: %w", err)
	}

	d.log.Debug("category deleted", "id", id, "exercises", removed)
	return int(removed), nil
}

// AddExercise stores a new exercise and sets its ID.
// Returns ErrNotFound if the category does not exist.
func (d *DB) AddExercise(ctx context.Context, e *models.Exercise) error {
	if _, err := d.GetCategory(ctx, e.CategoryID); err != nil {
		return err
	}

	res, err := d.db.ExecContext(ctx,
		"INSERT INTO exercises (name, category_id, description) VALUES (?, ?, ?)",
		e.Name, e.CategoryID, e.Description)
	if err != nil {
		return fmt.Errorf("add exercise: %w", err)
	}

	e.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("add exercise: %w", err)
	}

	d.log.Debug("exercise added", "id", e.ID, "name", e.Name, "category_id", e.CategoryID)
	return nil
}

// GetExercise retrieves an exercise with its category name.
func (d *DB) GetExercise(ctx context.Context, id int64) (*models.Exercise, error) {
	query := `
		SELECT e.id, e.name, e.category_id, e.description, ec.name AS category_name
		FROM exercises e
		JOIN exercise_categories ec ON ec.id = e.category_id
		WHERE e.id = ?
	`
	var e models.Exercise
	if err := d.db.GetContext(ctx, &e, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("exercise", id)
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return &e, nil
}

// ListExercises returns every exercise with its category name.
func (d *DB) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	query := `
		SELECT e.id, e.name, e.category_id, e.description, ec.name AS category_name
		FROM exercises e
		JOIN exercise_categories ec ON ec.id = e.category_id
		ORDER BY e.id
	`
	var out []models.Exercise
	if err := d.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return out, nil
}

// ListExercisesByCategory returns the exercises in a category.
// Returns ErrNotFound if the category does not exist.
func (d *DB) ListExercisesByCategory(ctx context.Context, categoryID int64) ([]models.Exercise, error) {
	c, err := d.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, category_id, description
		FROM exercises
		WHERE category_id = ?
		ORDER BY id
	`
	var out []models.Exercise
	if err := d.db.SelectContext(ctx, &out, query, categoryID); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	for i := range out {
		out[i].CategoryName = c.Name
	}
	return out, nil
}

// CountExercises returns the number of exercises in a category.
func (d *DB) CountExercises(ctx context.Context, categoryID int64) (int, error) {
	var n int
	if err := d.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM exercises WHERE category_id = ?", categoryID); err != nil {
		return 0, fmt.Errorf("count exercises: %w", err)
	}
	return n, nil
}
