// ABOUTME: Tests for database initialization and connection.
// ABOUTME: Verifies schema creation, idempotent reopen, and XDG path handling.
package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenCreatesSchema(t *testing.T) {
	db := setupTestDB(t)

	tables := []string{
		"exercise_categories", "exercises", "workout_routines",
		"routine_exercises", "goals", "workout_logs",
	}
	for _, table := range tables {
		var count int
		err := db.db.Get(&count,
			"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table)
		if err != nil {
			t.Errorf("Error checking table %s: %v", table, err)
		}
		if count != 1 {
			t.Errorf("Table %s does not exist", table)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fitness.db")

	db, err := Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := db.AddCategory(context.Background(), "Legs"); err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}
	db.Close()

	db, err = Open(dbPath, nil)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer db.Close()

	cats, err := db.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(cats) != 1 || cats[0].Name != "Legs" {
		t.Errorf("expected data to survive reopen, got %+v", cats)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "nested", "fitness.db")

	db, err := Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Error("expected directory to be created")
	}
	if db.Path() != dbPath {
		t.Errorf("Path() = %s, want %s", db.Path(), dbPath)
	}
}

func TestForeignKeysEnabled(t *testing.T) {
	db := setupTestDB(t)

	var on int
	if err := db.db.Get(&on, "PRAGMA foreign_keys"); err != nil {
		t.Fatalf("PRAGMA foreign_keys failed: %v", err)
	}
	if on != 1 {
		t.Errorf("foreign_keys = %d, want 1", on)
	}
}

func TestDefaultDBPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)

	expected := filepath.Join(tmpDir, "fitness", "fitness.db")
	if got := DefaultDBPath(); got != expected {
		t.Errorf("DefaultDBPath() = %s, want %s", got, expected)
	}
}
