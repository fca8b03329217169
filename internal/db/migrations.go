package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS entities (
			id       INTEGER PRIMARY KEY,
			name     TEXT NOT NULL,
			category TEXT NOT NULL,
			status   TEXT NOT NULL DEFAULT '',
			email    TEXT NOT NULL DEFAULT '',
			initials TEXT NOT NULL DEFAULT '',
			address  TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS shifts (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			worker_id      INTEGER REFERENCES entities(id),
			worker_name    TEXT NOT NULL DEFAULT '',
			service_client TEXT NOT NULL DEFAULT '',
			type           TEXT NOT NULL DEFAULT '',
			required_role  TEXT NOT NULL DEFAULT '',
			start_time     TEXT NOT NULL,
			end_time       TEXT NOT NULL,
			shift_date     TEXT NOT NULL,
			coverage       TEXT NOT NULL DEFAULT 'covered' CHECK(coverage IN ('covered', 'uncovered')),
			notes          TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_shifts_date ON shifts(shift_date);
		CREATE INDEX IF NOT EXISTS idx_shifts_worker ON shifts(worker_id);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
