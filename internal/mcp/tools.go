// ABOUTME: MCP tool implementations for the fitness tracker.
// ABOUTME: Exposes categories, exercises, routines, workout logging, and goals.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// list_categories
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_categories",
		Description: "List exercise categories",
	}, s.handleListCategories)

	// add_category
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_category",
		Description: "Create a new exercise category",
	}, s.handleAddCategory)

	// list_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List exercises, optionally limited to one category",
	}, s.handleListExercises)

	// add_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise to a category",
	}, s.handleAddExercise)

	// list_routines
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_routines",
		Description: "List workout routines",
	}, s.handleListRoutines)

	// get_routine
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_routine",
		Description: "Get a workout routine with its exercises and planned sets/reps",
	}, s.handleGetRoutine)

	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a workout of a routine; planned sets/reps are used unless overridden",
	}, s.handleLogWorkout)

	// exercise_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "exercise_progress",
		Description: "Get the workout history and stats for one exercise",
	}, s.handleExerciseProgress)

	// list_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_history",
		Description: "List recent workout sessions",
	}, s.handleListHistory)

	// set_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_goal",
		Description: "Set a cumulative total-reps goal for a category",
	}, s.handleSetGoal)

	// list_goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List fitness goals with progress",
	}, s.handleListGoals)
}

// Tool input/output types

type emptyInput struct{}

type categoriesOutput struct {
	Categories []models.Category `json:"categories"`
}

type addCategoryInput struct {
	Name string `json:"name" jsonschema:"category name, must be unique"`
}

type categoryOutput struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type listExercisesInput struct {
	CategoryID int64 `json:"category_id,omitempty" jsonschema:"only list exercises in this category"`
}

type exerciseItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CategoryID  int64  `json:"category_id"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

type exercisesOutput struct {
	Exercises []exerciseItem `json:"exercises"`
}

type addExerciseInput struct {
	CategoryID  int64  `json:"category_id" jsonschema:"category to add the exercise to"`
	Name        string `json:"name" jsonschema:"exercise name"`
	Description string `json:"description,omitempty" jsonschema:"optional description"`
}

type exerciseOutput struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type routinesOutput struct {
	Routines []models.Routine `json:"routines"`
}

type getRoutineInput struct {
	ID int64 `json:"id" jsonschema:"routine ID"`
}

type routineOutput struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	DateCreated string                `json:"date_created"`
	Exercises   []models.RoutineEntry `json:"exercises"`
}

type logOverride struct {
	ExerciseID int64 `json:"exercise_id" jsonschema:"exercise in the routine"`
	Sets       *int  `json:"sets,omitempty" jsonschema:"sets completed, defaults to the planned sets"`
	Reps       *int  `json:"reps,omitempty" jsonschema:"reps completed, defaults to the planned reps"`
}

type logWorkoutInput struct {
	RoutineID int64         `json:"routine_id" jsonschema:"routine that was performed"`
	Date      string        `json:"date,omitempty" jsonschema:"workout date YYYY-MM-DD, defaults to today"`
	Overrides []logOverride `json:"overrides,omitempty" jsonschema:"per-exercise sets/reps that differ from the plan"`
}

type logWorkoutOutput struct {
	SessionID    string              `json:"session_id"`
	Date         string              `json:"date"`
	Logs         []models.WorkoutLog `json:"logs"`
	GoalsUpdated int                 `json:"goals_updated"`
	Message      string              `json:"message"`
}

type exerciseProgressInput struct {
	ExerciseID int64 `json:"exercise_id" jsonschema:"exercise ID"`
}

type exerciseProgressOutput struct {
	Exercise string               `json:"exercise"`
	Logs     []models.WorkoutLog  `json:"logs"`
	Stats    models.ExerciseStats `json:"stats"`
}

type listHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"max sessions (default 20)"`
}

type historyOutput struct {
	Sessions []models.Session `json:"sessions"`
}

type setGoalInput struct {
	CategoryID  int64  `json:"category_id" jsonschema:"category whose logged reps count towards the goal"`
	Name        string `json:"name" jsonschema:"goal name"`
	TargetValue int    `json:"target_value" jsonschema:"total reps to achieve"`
	Deadline    string `json:"deadline,omitempty" jsonschema:"optional deadline YYYY-MM-DD"`
}

type goalItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	TargetValue  int     `json:"target_value"`
	CurrentValue int     `json:"current_value"`
	Percent      float64 `json:"percent"`
	Deadline     *string `json:"deadline,omitempty"`
}

type goalOutput struct {
	Goal    goalItem `json:"goal"`
	Message string   `json:"message"`
}

type goalsOutput struct {
	Goals []goalItem `json:"goals"`
}

// Tool handlers

func (s *Server) handleListCategories(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, categoriesOutput, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, categoriesOutput{}, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return nil, categoriesOutput{Categories: categories}, nil
}

func (s *Server) handleAddCategory(ctx context.Context, req *mcp.CallToolRequest, input addCategoryInput) (*mcp.CallToolResult, categoryOutput, error) {
	if input.Name == "" {
		return nil, categoryOutput{}, fmt.Errorf("name is required")
	}

	c, err := s.repo.AddCategory(ctx, input.Name)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, categoryOutput{}, fmt.Errorf("category '%s' already exists", input.Name)
		}
		return nil, categoryOutput{}, fmt.Errorf("failed to add category: %w", err)
	}

	return nil, categoryOutput{
		ID:      c.ID,
		Name:    c.Name,
		Message: fmt.Sprintf("Category '%s' added", c.Name),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, exercisesOutput, error) {
	var exercises []models.Exercise
	var err error
	if input.CategoryID != 0 {
		exercises, err = s.repo.ListExercisesByCategory(ctx, input.CategoryID)
	} else {
		exercises, err = s.repo.ListExercises(ctx)
	}
	if err != nil {
		return nil, exercisesOutput{}, err
	}

	out := exercisesOutput{Exercises: make([]exerciseItem, 0, len(exercises))}
	for _, e := range exercises {
		item := exerciseItem{
			ID:         e.ID,
			Name:       e.Name,
			CategoryID: e.CategoryID,
			Category:   e.CategoryName,
		}
		if e.Description != nil {
			item.Description = *e.Description
		}
		out.Exercises = append(out.Exercises, item)
	}
	return nil, out, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	if input.Name == "" {
		return nil, exerciseOutput{}, fmt.Errorf("name is required")
	}

	e := models.NewExercise(input.CategoryID, input.Name).WithDescription(input.Description)
	if err := s.repo.AddExercise(ctx, e); err != nil {
		return nil, exerciseOutput{}, err
	}

	return nil, exerciseOutput{
		ID:      e.ID,
		Name:    e.Name,
		Message: fmt.Sprintf("Exercise '%s' added", e.Name),
	}, nil
}

func (s *Server) handleListRoutines(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, routinesOutput, error) {
	routines, err := s.repo.ListRoutines(ctx)
	if err != nil {
		return nil, routinesOutput{}, fmt.Errorf("failed to list routines: %w", err)
	}
	if routines == nil {
		routines = []models.Routine{}
	}
	return nil, routinesOutput{Routines: routines}, nil
}

func (s *Server) handleGetRoutine(ctx context.Context, req *mcp.CallToolRequest, input getRoutineInput) (*mcp.CallToolResult, routineOutput, error) {
	r, err := s.repo.GetRoutine(ctx, input.ID)
	if err != nil {
		return nil, routineOutput{}, err
	}
	entries, err := s.repo.RoutineEntries(ctx, r.ID)
	if err != nil {
		return nil, routineOutput{}, err
	}
	if entries == nil {
		entries = []models.RoutineEntry{}
	}

	return nil, routineOutput{
		ID:          r.ID,
		Name:        r.Name,
		DateCreated: r.DateCreated,
		Exercises:   entries,
	}, nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, logWorkoutOutput, error) {
	if input.Date != "" {
		if _, err := time.Parse(models.DateLayout, input.Date); err != nil {
			return nil, logWorkoutOutput{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", input.Date)
		}
	}

	entries, err := s.repo.RoutineEntries(ctx, input.RoutineID)
	if err != nil {
		return nil, logWorkoutOutput{}, err
	}
	if len(entries) == 0 {
		return nil, logWorkoutOutput{}, fmt.Errorf("routine %d has no exercises", input.RoutineID)
	}

	overrides := make(map[int64]logOverride, len(input.Overrides))
	for _, o := range input.Overrides {
		overrides[o.ExerciseID] = o
	}

	logs := make([]models.LogEntry, 0, len(entries))
	for _, e := range entries {
		entry := models.LogEntry{ExerciseID: e.ExerciseID, Sets: e.Sets, Reps: e.Reps}
		if o, ok := overrides[e.ExerciseID]; ok {
			if o.Sets != nil {
				entry.Sets = *o.Sets
			}
			if o.Reps != nil {
				entry.Reps = *o.Reps
			}
			delete(overrides, e.ExerciseID)
		}
		logs = append(logs, entry)
	}
	if len(overrides) > 0 {
		for _, o := range input.Overrides {
			if _, ok := overrides[o.ExerciseID]; ok {
				return nil, logWorkoutOutput{}, fmt.Errorf("exercise %d is not in routine %d", o.ExerciseID, input.RoutineID)
			}
		}
	}

	result, err := s.repo.LogWorkout(ctx, input.RoutineID, input.Date, logs)
	if err != nil {
		return nil, logWorkoutOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	return nil, logWorkoutOutput{
		SessionID:    result.SessionID,
		Date:         result.Date,
		Logs:         result.Logs,
		GoalsUpdated: result.GoalsUpdated,
		Message:      fmt.Sprintf("Logged %d exercises on %s", len(result.Logs), result.Date),
	}, nil
}

func (s *Server) handleExerciseProgress(ctx context.Context, req *mcp.CallToolRequest, input exerciseProgressInput) (*mcp.CallToolResult, exerciseProgressOutput, error) {
	p, err := s.repo.ExerciseProgress(ctx, input.ExerciseID)
	if err != nil {
		return nil, exerciseProgressOutput{}, err
	}
	logs := p.Logs
	if logs == nil {
		logs = []models.WorkoutLog{}
	}
	return nil, exerciseProgressOutput{
		Exercise: p.Exercise.Name,
		Logs:     logs,
		Stats:    p.Stats,
	}, nil
}

func (s *Server) handleListHistory(ctx context.Context, req *mcp.CallToolRequest, input listHistoryInput) (*mcp.CallToolResult, historyOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	sessions, err := s.repo.ListSessions(ctx, limit)
	if err != nil {
		return nil, historyOutput{}, fmt.Errorf("failed to list sessions: %w", err)
	}
	if sessions == nil {
		sessions = []models.Session{}
	}
	return nil, historyOutput{Sessions: sessions}, nil
}

func (s *Server) handleSetGoal(ctx context.Context, req *mcp.CallToolRequest, input setGoalInput) (*mcp.CallToolResult, goalOutput, error) {
	if input.Name == "" {
		return nil, goalOutput{}, fmt.Errorf("name is required")
	}
	if input.Deadline != "" {
		if _, err := time.Parse(models.DateLayout, input.Deadline); err != nil {
			return nil, goalOutput{}, fmt.Errorf("invalid deadline %q: use YYYY-MM-DD", input.Deadline)
		}
	}

	g := models.NewGoal(input.CategoryID, input.Name, input.TargetValue).WithDeadline(input.Deadline)
	if err := s.repo.SetGoal(ctx, g); err != nil {
		return nil, goalOutput{}, err
	}

	return nil, goalOutput{
		Goal:    toGoalItem(*g),
		Message: fmt.Sprintf("Goal '%s' set", g.Name),
	}, nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, goalsOutput, error) {
	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return nil, goalsOutput{}, fmt.Errorf("failed to list goals: %w", err)
	}

	out := goalsOutput{Goals: make([]goalItem, 0, len(goals))}
	for _, g := range goals {
		out.Goals = append(out.Goals, toGoalItem(g))
	}
	return nil, out, nil
}

func toGoalItem(g models.Goal) goalItem {
	return goalItem{
		ID:           g.ID,
		Name:         g.Name,
		Category:     g.CategoryName,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Percent:      g.Percent(),
		Deadline:     g.Deadline,
	}
}
