package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/amishk599/applykit/internal/model"
)

var _ model.ApplicationStore = (*SQLiteStore)(nil)

// SQLiteStore keeps the application log in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures the
// applications table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS applications (
		id              TEXT PRIMARY KEY,
		company         TEXT NOT NULL,
		role            TEXT NOT NULL,
		status          TEXT NOT NULL,
		job_description TEXT NOT NULL,
		folder          TEXT NOT NULL,
		created_at      DATETIME NOT NULL
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating applications table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Record inserts an application. Recording the same ID twice is an error.
func (s *SQLiteStore) Record(app model.Application) error {
	_, err := s.db.Exec(
		`INSERT INTO applications (id, company, role, status, job_description, folder, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		app.ID, app.Company, app.Role, app.Status, app.JobDescription, app.Folder, app.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording application %s: %w", app.ID, err)
	}
	return nil
}

// List returns every logged application, newest first.
func (s *SQLiteStore) List() ([]model.Application, error) {
	rows, err := s.db.Query(
		`SELECT id, company, role, status, job_description, folder, created_at
		 FROM applications
		 ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	defer rows.Close()

	var out []model.Application
	for rows.Next() {
		var a model.Application
		var created time.Time
		if err := rows.Scan(&a.ID, &a.Company, &a.Role, &a.Status, &a.JobDescription, &a.Folder, &created); err != nil {
			return nil, fmt.Errorf("scanning application: %w", err)
		}
		a.CreatedAt = created
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	return out, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
