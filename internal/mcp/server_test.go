// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "fitness.db")
	db, err := storage.Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// seedLegDay creates a Legs category with Squats (3x10) in a "Leg Day" routine.
func seedLegDay(t *testing.T, db *storage.DB) (*models.Category, *models.Exercise, *models.Routine) {
	t.Helper()
	ctx := context.Background()

	c, err := db.AddCategory(ctx, "Legs")
	if err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}
	e := models.NewExercise(c.ID, "Squats")
	if err := db.AddExercise(ctx, e); err != nil {
		t.Fatalf("AddExercise failed: %v", err)
	}
	r, err := db.CreateRoutine(ctx, "Leg Day", "2026-01-05")
	if err != nil {
		t.Fatalf("CreateRoutine failed: %v", err)
	}
	if err := db.AddRoutineExercise(ctx, models.RoutineExercise{
		RoutineID: r.ID, ExerciseID: e.ID, Sets: 3, Reps: 10,
	}); err != nil {
		t.Fatalf("AddRoutineExercise failed: %v", err)
	}
	return c, e, r
}

func intPtr(n int) *int { return &n }

func TestNewServer(t *testing.T) {
	db := setupTestDB(t)

	server, err := NewServer(db, nil)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	if server == nil {
		t.Fatal("Expected non-nil server")
	}
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
	if server.log == nil {
		t.Error("Expected non-nil logger")
	}
}

func TestHandleAddCategory(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)
	ctx := context.Background()

	_, out, err := server.handleAddCategory(ctx, &mcp.CallToolRequest{}, addCategoryInput{Name: "Legs"})
	if err != nil {
		t.Fatalf("handleAddCategory failed: %v", err)
	}
	if out.ID == 0 {
		t.Error("Expected non-zero ID")
	}
	if out.Name != "Legs" {
		t.Errorf("Name = %q, want Legs", out.Name)
	}

	_, _, err = server.handleAddCategory(ctx, &mcp.CallToolRequest{}, addCategoryInput{Name: "Legs"})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Expected already exists error, got %v", err)
	}

	_, _, err = server.handleAddCategory(ctx, &mcp.CallToolRequest{}, addCategoryInput{})
	if err == nil {
		t.Error("Expected error for empty name")
	}
}

func TestHandleListCategoriesEmpty(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)

	_, out, err := server.handleListCategories(context.Background(), &mcp.CallToolRequest{}, emptyInput{})
	if err != nil {
		t.Fatalf("handleListCategories failed: %v", err)
	}
	if out.Categories == nil || len(out.Categories) != 0 {
		t.Errorf("Expected empty non-nil list, got %v", out.Categories)
	}
}

func TestHandleAddExercise(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)
	ctx := context.Background()

	c, _ := db.AddCategory(ctx, "Chest")

	_, out, err := server.handleAddExercise(ctx, &mcp.CallToolRequest{}, addExerciseInput{
		CategoryID:  c.ID,
		Name:        "Bench Press",
		Description: "Flat barbell bench",
	})
	if err != nil {
		t.Fatalf("handleAddExercise failed: %v", err)
	}
	if out.ID == 0 {
		t.Error("Expected non-zero ID")
	}

	_, list, err := server.handleListExercises(ctx, &mcp.CallToolRequest{}, listExercisesInput{CategoryID: c.ID})
	if err != nil {
		t.Fatalf("handleListExercises failed: %v", err)
	}
	if len(list.Exercises) != 1 {
		t.Fatalf("Expected 1 exercise, got %d", len(list.Exercises))
	}
	got := list.Exercises[0]
	if got.Category != "Chest" || got.Description != "Flat barbell bench" {
		t.Errorf("Unexpected exercise: %+v", got)
	}
}

func TestHandleAddExerciseUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)

	_, _, err := server.handleAddExercise(context.Background(), &mcp.CallToolRequest{}, addExerciseInput{
		CategoryID: 99,
		Name:       "Squats",
	})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestHandleListExercisesAll(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)
	seedLegDay(t, db)

	_, out, err := server.handleListExercises(context.Background(), &mcp.CallToolRequest{}, listExercisesInput{})
	if err != nil {
		t.Fatalf("handleListExercises failed: %v", err)
	}
	if len(out.Exercises) != 1 || out.Exercises[0].Category != "Legs" {
		t.Errorf("Unexpected exercises: %+v", out.Exercises)
	}
}

func TestHandleGetRoutine(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)
	_, _, r := seedLegDay(t, db)

	_, out, err := server.handleGetRoutine(context.Background(), &mcp.CallToolRequest{}, getRoutineInput{ID: r.ID})
	if err != nil {
		t.Fatalf("handleGetRoutine failed: %v", err)
	}
	if out.Name != "Leg Day" {
		t.Errorf("Name = %q, want Leg Day", out.Name)
	}
	if len(out.Exercises) != 1 {
		t.Fatalf("Expected 1 exercise, got %d", len(out.Exercises))
	}
	if e := out.Exercises[0]; e.ExerciseName != "Squats" || e.Sets != 3 || e.Reps != 10 {
		t.Errorf("Unexpected entry: %+v", e)
	}
}

func TestHandleGetRoutineNotFound(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)

	_, _, err := server.handleGetRoutine(context.Background(), &mcp.CallToolRequest{}, getRoutineInput{ID: 42})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestHandleListRoutines(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)
	seedLegDay(t, db)

	_, out, err := server.handleListRoutines(context.Background(), &mcp.CallToolRequest{}, emptyInput{})
	if err != nil {
		t.Fatalf("handleListRoutines failed: %v", err)
	}
	if len(out.Routines) != 1 || out.Routines[0].DateCreated != "2026-01-05" {
		t.Errorf("Unexpected routines: %+v", out.Routines)
	}
}

func TestHandleLogWorkoutDefaults(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)
	ctx := context.Background()
	c, e, r := seedLegDay(t, db)

	g := models.NewGoal(c.ID, "1000 leg reps", 1000)
	if err := db.SetGoal(ctx, g); err != nil {
		t.Fatalf("SetGoal failed: %v", err)
	}

	_, out, err := server.handleLogWorkout(ctx, &mcp.CallToolRequest{}, logWorkoutInput{
		RoutineID: r.ID,
		Date:      "2026-01-10",
	})
	if err != nil {
		t.Fatalf("handleLogWorkout failed: %v", err)
	}
	if out.SessionID == "" {
		t.Error("Expected session ID")
	}
	if out.GoalsUpdated != 1 {
		t.Errorf("GoalsUpdated = %d, want 1", out.GoalsUpdated)
	}
	if len(out.Logs) != 1 || out.Logs[0].ExerciseID != e.ID || out.Logs[0].Total() != 30 {
		t.Errorf("Unexpected logs: %+v", out.Logs)
	}

	got, _ := db.GetGoal(ctx, g.ID)
	if got.CurrentValue != 30 {
		t.Errorf("CurrentValue = %d, want 30", got.CurrentValue)
	}
}

func TestHandleLogWorkoutOverrides(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)
	_, e, r := seedLegDay(t, db)

	_, out, err := server.handleLogWorkout(context.Background(), &mcp.CallToolRequest{}, logWorkoutInput{
		RoutineID: r.ID,
		Overrides: []logOverride{{ExerciseID: e.ID, Reps: intPtr(12)}},
	})
	if err != nil {
		t.Fatalf("handleLogWorkout failed: %v", err)
	}
	if out.Date != models.Today() {
		t.Errorf("Date = %q, want today", out.Date)
	}
	if l := out.Logs[0]; l.Sets != 3 || l.Reps != 12 {
		t.Errorf("Expected 3x12, got %dx%d", l.Sets, l.Reps)
	}
}

func TestHandleLogWorkoutErrors(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)
	ctx := context.Background()
	_, _, r := seedLegDay(t, db)
	empty, _ := db.CreateRoutine(ctx, "Empty", "")

	tests := []struct {
		name  string
		input logWorkoutInput
	}{
		{"unknown routine", logWorkoutInput{RoutineID: 99}},
		{"empty routine", logWorkoutInput{RoutineID: empty.ID}},
		{"bad date", logWorkoutInput{RoutineID: r.ID, Date: "01/10/2026"}},
		{"override outside routine", logWorkoutInput{
			RoutineID: r.ID,
			Overrides: []logOverride{{ExerciseID: 999, Sets: intPtr(1)}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := server.handleLogWorkout(ctx, &mcp.CallToolRequest{}, tt.input)
			if err == nil {
				t.Error("Expected error")
			}
		})
	}

	sessions, _ := db.ListSessions(ctx, 0)
	if len(sessions) != 0 {
		t.Errorf("Expected no sessions logged, got %d", len(sessions))
	}
}

func TestHandleExerciseProgress(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)
	ctx := context.Background()
	_, e, r := seedLegDay(t, db)

	_, _, err := server.handleExerciseProgress(ctx, &mcp.CallToolRequest{}, exerciseProgressInput{ExerciseID: e.ID})
	if err != nil {
		t.Fatalf("handleExerciseProgress failed: %v", err)
	}

	if _, err := db.LogWorkout(ctx, r.ID, "2026-01-10", []models.LogEntry{{ExerciseID: e.ID, Sets: 3, Reps: 10}}); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}
	if _, err := db.LogWorkout(ctx, r.ID, "2026-01-12", []models.LogEntry{{ExerciseID: e.ID, Sets: 4, Reps: 8}}); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}

	_, out, err := server.handleExerciseProgress(ctx, &mcp.CallToolRequest{}, exerciseProgressInput{ExerciseID: e.ID})
	if err != nil {
		t.Fatalf("handleExerciseProgress failed: %v", err)
	}
	if out.Exercise != "Squats" {
		t.Errorf("Exercise = %q, want Squats", out.Exercise)
	}
	if len(out.Logs) != 2 || out.Logs[0].Date != "2026-01-12" {
		t.Errorf("Expected newest first, got %+v", out.Logs)
	}
	if out.Stats.Count != 2 || out.Stats.MaxSets != 4 || out.Stats.MaxReps != 10 || out.Stats.MaxTotal != 32 {
		t.Errorf("Unexpected stats: %+v", out.Stats)
	}
}

func TestHandleListHistory(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)
	ctx := context.Background()
	_, e, r := seedLegDay(t, db)

	for _, date := range []string{"2026-01-10", "2026-01-11", "2026-01-12"} {
		if _, err := db.LogWorkout(ctx, r.ID, date, []models.LogEntry{{ExerciseID: e.ID, Sets: 3, Reps: 10}}); err != nil {
			t.Fatalf("LogWorkout failed: %v", err)
		}
	}

	_, out, err := server.handleListHistory(ctx, &mcp.CallToolRequest{}, listHistoryInput{Limit: 2})
	if err != nil {
		t.Fatalf("handleListHistory failed: %v", err)
	}
	if len(out.Sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(out.Sessions))
	}
	if out.Sessions[0].Date != "2026-01-12" {
		t.Errorf("First session date = %q, want 2026-01-12", out.Sessions[0].Date)
	}
}

func TestHandleSetGoal(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)
	ctx := context.Background()
	c, _ := db.AddCategory(ctx, "Core")

	_, out, err := server.handleSetGoal(ctx, &mcp.CallToolRequest{}, setGoalInput{
		CategoryID:  c.ID,
		Name:        "Plank volume",
		TargetValue: 500,
		Deadline:    "2026-12-31",
	})
	if err != nil {
		t.Fatalf("handleSetGoal failed: %v", err)
	}
	if out.Goal.ID == 0 || out.Goal.Category != "Core" {
		t.Errorf("Unexpected goal: %+v", out.Goal)
	}
	if out.Goal.Deadline == nil || *out.Goal.Deadline != "2026-12-31" {
		t.Errorf("Deadline = %v, want 2026-12-31", out.Goal.Deadline)
	}

	tests := []struct {
		name  string
		input setGoalInput
	}{
		{"unknown category", setGoalInput{CategoryID: 99, Name: "x", TargetValue: 1}},
		{"missing name", setGoalInput{CategoryID: c.ID, TargetValue: 1}},
		{"bad deadline", setGoalInput{CategoryID: c.ID, Name: "x", TargetValue: 1, Deadline: "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := server.handleSetGoal(ctx, &mcp.CallToolRequest{}, tt.input); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestHandleListGoalsZeroTarget(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)
	ctx := context.Background()
	c, _ := db.AddCategory(ctx, "Arms")
	_ = db.SetGoal(ctx, models.NewGoal(c.ID, "Nothing", 0))

	_, out, err := server.handleListGoals(ctx, &mcp.CallToolRequest{}, emptyInput{})
	if err != nil {
		t.Fatalf("handleListGoals failed: %v", err)
	}
	if len(out.Goals) != 1 {
		t.Fatalf("Expected 1 goal, got %d", len(out.Goals))
	}
	if out.Goals[0].Percent != 0 {
		t.Errorf("Percent = %v, want 0", out.Goals[0].Percent)
	}
}

func TestHandleGoalsResource(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)
	ctx := context.Background()
	c, _ := db.AddCategory(ctx, "Legs")
	_ = db.SetGoal(ctx, models.NewGoal(c.ID, "Squat 1000", 1000))

	result, err := server.handleGoalsResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result.Contents) == 0 {
		t.Fatal("Expected non-empty contents")
	}
	if result.Contents[0].URI != "fitness://goals" {
		t.Errorf("URI = %s, want fitness://goals", result.Contents[0].URI)
	}
	if result.Contents[0].MIMEType != "application/json" {
		t.Errorf("MIMEType = %s, want application/json", result.Contents[0].MIMEType)
	}

	var body struct {
		Goals []goalItem `json:"goals"`
		Count int        `json:"count"`
	}
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body.Count != 1 || body.Goals[0].Name != "Squat 1000" {
		t.Errorf("Unexpected body: %+v", body)
	}
}

func TestHandleRoutinesResource(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)
	seedLegDay(t, db)

	result, err := server.handleRoutinesResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Contents[0].URI != "fitness://routines" {
		t.Errorf("URI = %s, want fitness://routines", result.Contents[0].URI)
	}
	if !strings.Contains(result.Contents[0].Text, "Squats") {
		t.Error("Expected routine contents to include Squats")
	}
}

func TestHandleHistoryResourceEmpty(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db, nil)

	result, err := server.handleHistoryResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("Expected non-nil result")
	}
	if !strings.Contains(result.Contents[0].Text, `"count": 0`) {
		t.Errorf("Expected zero count, got %s", result.Contents[0].Text)
	}
}
