// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/rota/internal/shift"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// SQLite implements shift.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	if path == "" {
		path = MemoryPath
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

const shiftColumns = `id, worker_id, worker_name, service_client, type, required_role,
	start_time, end_time, shift_date, coverage, notes`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShift(row rowScanner) (*shift.Shift, error) {
	var (
		s        shift.Shift
		workerID sql.NullInt64
		date     string
		coverage string
	)
	err := row.Scan(
		&s.ID,
		&workerID,
		&s.WorkerName,
		&s.ServiceClient,
		&s.Type,
		&s.RequiredRole,
		&s.Start,
		&s.End,
		&date,
		&coverage,
		&s.Notes,
	)
	if err != nil {
		return nil, err
	}

	s.Date, err = parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("parsing shift date: %w", err)
	}
	s.Coverage = shift.Coverage(coverage)
	if workerID.Valid {
		s.WorkerID = &workerID.Int64
	}
	return &s, nil
}

// ListShifts returns every shift in id order.
func (s *SQLite) ListShifts(ctx context.Context) ([]*shift.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying shifts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var shifts []*shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning shift: %w", err)
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shifts: %w", err)
	}

	return shifts, nil
}

// GetShift retrieves a shift by ID. Returns nil, nil if it does not exist.
func (s *SQLite) GetShift(ctx context.Context, id int64) (*shift.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = ?`

	sh, err := scanShift(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying shift: %w", err)
	}
	return sh, nil
}

// CreateShift inserts a shift built from the draft.
func (s *SQLite) CreateShift(ctx context.Context, d shift.Draft) (*shift.Shift, error) {
	entities, err := s.Entities(ctx)
	if err != nil {
		return nil, err
	}

	if d.Notes == "" {
		d.Notes = shift.DefaultNotes
	}
	if d.Coverage == "" {
		d.Coverage = shift.CoverageCovered
	}
	sh := d.Apply(0, entities)

	query := `
		INSERT INTO shifts (
			worker_id, worker_name, service_client, type, required_role,
			start_time, end_time, shift_date, coverage, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query,
		sh.WorkerID,
		sh.WorkerName,
		sh.ServiceClient,
		sh.Type,
		sh.RequiredRole,
		sh.Start,
		sh.End,
		sh.Date.Format("2006-01-02"),
		sh.Coverage,
		sh.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting shift: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting last insert id: %w", err)
	}
	sh.ID = id

	return sh, nil
}

// UpdateShift replaces all mutable fields of shift id.
// Returns nil, nil if no shift has that id.
func (s *SQLite) UpdateShift(ctx context.Context, id int64, d shift.Draft) (*shift.Shift, error) {
	existing, err := s.GetShift(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting shift: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	entities, err := s.Entities(ctx)
	if err != nil {
		return nil, err
	}
	if d.Coverage == "" {
		d.Coverage = existing.Coverage
	}
	sh := d.Apply(id, entities)

	query := `
		UPDATE shifts SET
			worker_id = ?, worker_name = ?, service_client = ?, type = ?, required_role = ?,
			start_time = ?, end_time = ?, shift_date = ?, coverage = ?, notes = ?
		WHERE id = ?
	`
	_, err = s.db.ExecContext(ctx, query,
		sh.WorkerID,
		sh.WorkerName,
		sh.ServiceClient,
		sh.Type,
		sh.RequiredRole,
		sh.Start,
		sh.End,
		sh.Date.Format("2006-01-02"),
		sh.Coverage,
		sh.Notes,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating shift: %w", err)
	}

	return sh, nil
}

// Entities returns every entity in id order.
func (s *SQLite) Entities(ctx context.Context) ([]shift.Entity, error) {
	query := `SELECT id, name, category, status, email, initials, address FROM entities ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying entities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entities []shift.Entity
	for rows.Next() {
		var e shift.Entity
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.Status, &e.Email, &e.Initials, &e.Address); err != nil {
			return nil, fmt.Errorf("scanning entity: %w", err)
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entities: %w", err)
	}

	return entities, nil
}

// Seed inserts entities and shifts with their explicit ids in one
// transaction. Rows whose id already exists are left alone, so reopening a
// file database does not duplicate the fixtures.
func (s *SQLite) Seed(ctx context.Context, entities []shift.Entity, shifts []*shift.Shift) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	entityStmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO entities (id, name, category, status, email, initials, address)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = entityStmt.Close() }()

	for _, e := range entities {
		if _, err := entityStmt.ExecContext(ctx, e.ID, e.Name, e.Category, e.Status, e.Email, e.Initials, e.Address); err != nil {
			return fmt.Errorf("inserting entity %q: %w", e.Name, err)
		}
	}

	shiftStmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO shifts (`+shiftColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = shiftStmt.Close() }()

	for _, sh := range shifts {
		_, err := shiftStmt.ExecContext(ctx,
			sh.ID,
			sh.WorkerID,
			sh.WorkerName,
			sh.ServiceClient,
			sh.Type,
			sh.RequiredRole,
			sh.Start,
			sh.End,
			sh.Date.Format("2006-01-02"),
			sh.Coverage,
			sh.Notes,
		)
		if err != nil {
			return fmt.Errorf("inserting shift %d: %w", sh.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// parseDate parses a date string in various formats SQLite might return.
// Date-only values (midnight) are parsed in local timezone to match time.Now() behavior.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}

	// SQLite returns DATE columns as "2006-01-02T00:00:00Z"; keep the day, drop the zone.
	if len(s) == 20 && s[10] == 'T' && s[19] == 'Z' {
		if t, err := time.ParseInLocation("2006-01-02", s[:10], time.Local); err == nil {
			return t, nil
		}
	}

	formats := []string{
		"2006-01-02 15:04:05",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
