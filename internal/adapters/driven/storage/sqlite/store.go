// Package sqlite provides a SQLite-backed resume store. The search
// core never touches SQL: this adapter only supplies the ordered
// corpus and persists imports between runs.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/hiresift/hiresift/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/hiresift/hiresift/internal/core/domain"
	"github.com/hiresift/hiresift/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ResumeStore = (*Store)(nil)

// Store is a SQLite-based implementation of driven.ResumeStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.hiresift/data/corpus.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".hiresift", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "corpus.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Save stores a resume. An existing row with the same URI is updated
// in place, keeping its corpus position and creation time.
func (s *Store) Save(ctx context.Context, resume *domain.Resume) error {
	fieldsJSON, err := json.Marshal(resume.Fields)
	if err != nil {
		return fmt.Errorf("marshalling fields: %w", err)
	}

	now := time.Now().UTC()
	createdAt := resume.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO resumes (id, uri, fields, position, created_at, updated_at)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM resumes), ?, ?)
		ON CONFLICT(uri) DO UPDATE SET
			id = excluded.id,
			fields = excluded.fields,
			updated_at = excluded.updated_at
	`, resume.ID, resume.URI, string(fieldsJSON), createdAt, now)

	if err != nil {
		return fmt.Errorf("saving resume: %w", err)
	}
	return nil
}

// Get retrieves a resume by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Resume, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, uri, fields, position, created_at, updated_at
		FROM resumes WHERE id = ?
	`, id)

	resume, err := scanResume(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return resume, nil
}

// Delete removes a resume by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM resumes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting resume: %w", err)
	}
	return nil
}

// DeleteByURI removes all resumes imported from a URI, including the
// per-element URIs of array imports (uri#0, uri#1, ...).
func (s *Store) DeleteByURI(ctx context.Context, uri string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM resumes WHERE uri = ?1 OR uri LIKE ?1 || '#%'", uri)
	if err != nil {
		return fmt.Errorf("deleting resumes by uri: %w", err)
	}
	return nil
}

// List returns the full corpus ordered by position.
func (s *Store) List(ctx context.Context) ([]domain.Resume, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, uri, fields, position, created_at, updated_at
		FROM resumes ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying resumes: %w", err)
	}
	defer rows.Close()

	var resumes []domain.Resume //nolint:prealloc // size unknown from query
	for rows.Next() {
		resume, err := scanResume(rows.Scan)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, *resume)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resumes: %w", err)
	}

	return resumes, nil
}

// scanResume reads one resume row through the given scan function.
func scanResume(scan func(...any) error) (*domain.Resume, error) {
	var resume domain.Resume
	var fieldsJSON string
	var createdAt, updatedAt sql.NullTime

	if err := scan(&resume.ID, &resume.URI, &fieldsJSON,
		&resume.Position, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning resume: %w", err)
	}

	if err := json.Unmarshal([]byte(fieldsJSON), &resume.Fields); err != nil {
		return nil, fmt.Errorf("unmarshaling fields: %w", err)
	}
	if createdAt.Valid {
		resume.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		resume.UpdatedAt = updatedAt.Time
	}

	return &resume, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
