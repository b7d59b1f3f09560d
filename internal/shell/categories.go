// ABOUTME: Shell operations for categories and exercises.
// ABOUTME: Covers add category, view by category with inline add, and cascading delete.
package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/storage"
)

func (s *Shell) addCategory(ctx context.Context) error {
	name, err := s.readLine("Enter new exercise category name: ")
	if err != nil {
		return err
	}

	if _, err := s.repo.AddCategory(ctx, name); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			s.warn("Category '%s' already exists!", name)
			return nil
		}
		return err
	}

	s.success("Category '%s' added successfully!", name)
	return nil
}

// pickCategory lists categories and reads a category ID.
// Returns nil without error when there are no categories.
func (s *Shell) pickCategory(ctx context.Context, header, prompt, empty string) (*models.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		s.println(empty)
		return nil, nil
	}

	s.println("\n" + header)
	for _, c := range categories {
		s.printf("%d. %s\n", c.ID, c.Name)
	}

	id, err := s.readID(prompt)
	if err != nil {
		return nil, err
	}
	return s.repo.GetCategory(ctx, id)
}

func (s *Shell) viewExercisesByCategory(ctx context.Context) error {
	category, err := s.pickCategory(ctx, "Available Categories:",
		"\nEnter category ID to view exercises: ",
		"No categories found. Please add some categories first.")
	if err != nil || category == nil {
		return err
	}

	exercises, err := s.repo.ListExercisesByCategory(ctx, category.ID)
	if err != nil {
		return err
	}

	prompt := "Add another exercise to this category? (y/n): "
	if len(exercises) == 0 {
		s.printf("No exercises found in category '%s'.\n", category.Name)
		prompt = "Would you like to add exercises to this category? (y/n): "
	} else {
		s.printf("\nExercises in category '%s':\n", category.Name)
		for _, e := range exercises {
			s.printf("ID: %d, Name: %s\n", e.ID, e.Name)
			if e.Description != nil {
				s.printf("Description: %s\n", *e.Description)
			}
			s.println("-----")
		}
	}

	add, err := s.confirm(prompt)
	if err != nil || !add {
		return err
	}
	return s.addExercise(ctx, category)
}

func (s *Shell) addExercise(ctx context.Context, category *models.Category) error {
	name, err := s.readLine("Enter exercise name: ")
	if err != nil {
		return err
	}
	description, err := s.readLine("Enter exercise description (optional): ")
	if err != nil {
		return err
	}

	e := models.NewExercise(category.ID, name).WithDescription(description)
	if err := s.repo.AddExercise(ctx, e); err != nil {
		return err
	}

	s.success("Exercise '%s' added successfully!", name)
	return nil
}

func (s *Shell) deleteCategory(ctx context.Context) error {
	category, err := s.pickCategory(ctx, "Available Categories:",
		"\nEnter category ID to delete: ",
		"No categories found.")
	if err != nil || category == nil {
		return err
	}

	count, err := s.repo.CountExercises(ctx, category.ID)
	if err != nil {
		return err
	}

	if count > 0 {
		ok, err := s.confirm(fmt.Sprintf(
			"Category '%s' has %d exercises. Deleting it will also delete all exercises. Continue? (y/n): ",
			category.Name, count))
		if err != nil {
			return err
		}
		if !ok {
			s.warn("Operation cancelled.")
			return nil
		}
	}

	if _, err := s.repo.DeleteCategory(ctx, category.ID); err != nil {
		return err
	}

	s.success("Category '%s' and all its exercises have been deleted.", category.Name)
	return nil
}
