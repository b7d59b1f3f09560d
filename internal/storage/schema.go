// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines categories, exercises, routines, routine entries, logs, and goals.
package storage

// initSchema creates the database schema if it does not exist.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS exercise_categories (
		id INTEGER PRIMARY KEY,
		name TEXT UNIQUE NOT NULL
	);

	CREATE TABLE IF NOT EXISTS exercises (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		category_id INTEGER NOT NULL,
		description TEXT,
		FOREIGN KEY (category_id) REFERENCES exercise_categories(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS workout_routines (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		date_created TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS routine_exercises (
		routine_id INTEGER NOT NULL,
		exercise_id INTEGER NOT NULL,
		sets INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		PRIMARY KEY (routine_id, exercise_id),
		FOREIGN KEY (routine_id) REFERENCES workout_routines(id) ON DELETE CASCADE,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS goals (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		target_value INTEGER NOT NULL,
		current_value INTEGER NOT NULL DEFAULT 0,
		category_id INTEGER NOT NULL,
		deadline TEXT,
		FOREIGN KEY (category_id) REFERENCES exercise_categories(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS workout_logs (
		id INTEGER PRIMARY KEY,
		exercise_id INTEGER NOT NULL,
		date TEXT NOT NULL,
		sets INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		session_id TEXT,
		routine_id INTEGER,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE,
		FOREIGN KEY (routine_id) REFERENCES workout_routines(id) ON DELETE SET NULL
	);

	CREATE INDEX IF NOT EXISTS idx_exercises_category ON exercises(category_id);
	CREATE INDEX IF NOT EXISTS idx_goals_category ON goals(category_id);
	CREATE INDEX IF NOT EXISTS idx_logs_exercise_date ON workout_logs(exercise_id, date DESC);
	CREATE INDEX IF NOT EXISTS idx_logs_session ON workout_logs(session_id);
	`

	_, err := d.db.Exec(schema)
	return err
}
