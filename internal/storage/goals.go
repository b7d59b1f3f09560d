// ABOUTME: Goal CRUD operations for SQLite storage.
// ABOUTME: Goal progress is advanced by LogWorkout.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fitness/internal/models"
)

// SetGoal stores a new goal with a current value of 0 and sets its ID.
// Returns ErrNotFound if the category does not exist.
func (d *DB) SetGoal(ctx context.Context, g *models.Goal) error {
	c, err := d.GetCategory(ctx, g.CategoryID)
	if err != nil {
		return err
	}

	g.CurrentValue = 0
	res, err := d.db.ExecContext(ctx, `
		INSERT INTO goals (name, target_value, current_value, category_id, deadline)
		VALUES (?, ?, 0, ?, ?)`,
		g.Name, g.TargetValue, g.CategoryID, g.Deadline)
	if err != nil {
		return fmt.Errorf("set goal: %w", err)
	}

	g.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("set goal: %w", err)
	}
	g.CategoryName = c.Name

	d.log.Debug("goal set", "id", g.ID, "name", g.Name, "target", g.TargetValue)
	return nil
}

const goalColumns = `
	SELECT g.id, g.name, g.target_value, g.current_value, g.category_id,
	       g.deadline, ec.name AS category_name
	FROM goals g
	JOIN exercise_categories ec ON g.category_id = ec.id
`

// GetGoal retrieves a goal with its category name.
func (d *DB) GetGoal(ctx context.Context, id int64) (*models.Goal, error) {
	var g models.Goal
	if err := d.db.GetContext(ctx, &g, goalColumns+" WHERE g.id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("goal", id)
		}
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return &g, nil
}

// ListGoals returns all goals with their category names.
func (d *DB) ListGoals(ctx context.Context) ([]models.Goal, error) {
	var out []models.Goal
	if err := d.db.SelectContext(ctx, &out, goalColumns+" ORDER BY g.id"); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return out, nil
}
