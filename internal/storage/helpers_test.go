// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides an isolated database and small fixture builders.
package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/harperreed/fitness/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "fitness.db")
	db, err := Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func mustCategory(t *testing.T, db *DB, name string) *models.Category {
	t.Helper()
	c, err := db.AddCategory(context.Background(), name)
	if err != nil {
		t.Fatalf("AddCategory(%q) failed: %v", name, err)
	}
	return c
}

func mustExercise(t *testing.T, db *DB, categoryID int64, name string) *models.Exercise {
	t.Helper()
	e := models.NewExercise(categoryID, name)
	if err := db.AddExercise(context.Background(), e); err != nil {
		t.Fatalf("AddExercise(%q) failed: %v", name, err)
	}
	return e
}

func mustRoutine(t *testing.T, db *DB, name string, entries ...models.RoutineExercise) *models.Routine {
	t.Helper()
	ctx := context.Background()
	r, err := db.CreateRoutine(ctx, name, "2026-01-05")
	if err != nil {
		t.Fatalf("CreateRoutine(%q) failed: %v", name, err)
	}
	for _, re := range entries {
		re.RoutineID = r.ID
		if err := db.AddRoutineExercise(ctx, re); err != nil {
			t.Fatalf("AddRoutineExercise failed: %v", err)
		}
	}
	return r
}

func countRows(t *testing.T, db *DB, table string) int {
	t.Helper()
	var n int
	if err := db.db.Get(&n, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
