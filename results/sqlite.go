package results

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps results in a SQLite table. Every row gets a fresh UUID,
// so re-analyzed articles are stored again rather than replaced.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the results table if it doesn't exist.
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS results (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		primary_label TEXT NOT NULL,
		sub_category TEXT NOT NULL,
		url TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Append inserts one result.
func (s *SQLiteStore) Append(r Result) error {
	query := `
	INSERT INTO results (id, title, primary_label, sub_category, url, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		uuid.New().String(),
		r.Title,
		r.PrimaryLabel,
		r.SubCategory,
		r.URL,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}
	return nil
}

// List returns every result in insertion order.
func (s *SQLiteStore) List() ([]Result, error) {
	query := `
	SELECT id, title, primary_label, sub_category, url, created_at
	FROM results
	ORDER BY rowid
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	results := []Result{}
	for rows.Next() {
		var (
			r         Result
			idStr     string
			createdAt string
		)
		if err := rows.Scan(&idStr, &r.Title, &r.PrimaryLabel, &r.SubCategory, &r.URL, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse result id: %w", err)
		}
		r.ID = &id

		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		r.CreatedAt = &ts

		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate results: %w", err)
	}

	return results, nil
}
