// ABOUTME: Shell operations for fitness goals.
// ABOUTME: Goals target cumulative reps logged in one category.
package shell

import (
	"context"
	"time"

	"github.com/harperreed/fitness/internal/models"
)

func (s *Shell) setGoal(ctx context.Context) error {
	category, err := s.pickCategory(ctx, "Available Categories:",
		"\nEnter category ID for the goal: ",
		"No categories found. Please add some categories first.")
	if err != nil || category == nil {
		return err
	}

	name, err := s.readLine("Enter goal name: ")
	if err != nil {
		return err
	}
	target, err := s.readInt("Enter target value (e.g., total reps to achieve): ")
	if err != nil {
		return err
	}
	deadline, err := s.readLine("Enter deadline (YYYY-MM-DD) or press Enter for no deadline: ")
	if err != nil {
		return err
	}
	if deadline != "" {
		if _, err := time.Parse(models.DateLayout, deadline); err != nil {
			s.fail("Invalid date. Please use YYYY-MM-DD.")
			return nil
		}
	}

	g := models.NewGoal(category.ID, name, target).WithDeadline(deadline)
	if err := s.repo.SetGoal(ctx, g); err != nil {
		return err
	}

	s.success("Fitness goal '%s' set successfully!", name)
	return nil
}

func (s *Shell) viewGoals(ctx context.Context) error {
	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		s.println("No fitness goals found.")
		return nil
	}

	RenderGoals(s.out, goals)
	return nil
}
