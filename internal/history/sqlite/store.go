// Package sqlite stores analysis history in a local SQLite database.
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

	"textlens/internal/domain"
	"textlens/internal/history"
	"textlens/internal/history/sqlite/migrations"
)

// Store is a history.Store backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

var _ history.Store = (*Store)(nil)

// NewStore opens (creating if needed) the database at path. An empty path
// defaults to ~/.local/share/textlens/history.db.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".local", "share", "textlens", "history.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Init runs pending migrations.
func (s *Store) Init(ctx context.Context) error {
	if err := s.migrate(ctx, migrations.FS); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

func (s *Store) migrate(ctx context.Context, fsys embed.FS) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
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
		// "001_analyses.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}

// Save stores or replaces an analysis.
func (s *Store) Save(ctx context.Context, a domain.Analysis) error {
	words, err := json.Marshal(a.Words)
	if err != nil {
		return fmt.Errorf("marshalling words: %w", err)
	}
	chunks, err := json.Marshal(a.SummaryChunks)
	if err != nil {
		return fmt.Errorf("marshalling summary chunks: %w", err)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, source, digest, summary, polarity, score, sentence_count, words,
			document_id, summary_chunks, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source = excluded.source,
			digest = excluded.digest,
			summary = excluded.summary,
			polarity = excluded.polarity,
			score = excluded.score,
			sentence_count = excluded.sentence_count,
			words = excluded.words,
			document_id = excluded.document_id,
			summary_chunks = excluded.summary_chunks
	`, a.ID, a.Source, a.Digest, a.Summary, a.Polarity, a.Score, a.SentenceCount, string(words),
		a.DocumentID, string(chunks), a.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("saving analysis: %w", err)
	}
	return nil
}

const selectColumns = `id, source, digest, summary, polarity, score, sentence_count, words,
	document_id, summary_chunks, created_at`

// List returns up to limit analyses, newest first. limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]domain.Analysis, error) {
	query := `SELECT ` + selectColumns + ` FROM analyses ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	var out []domain.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// Get returns the analysis with the given ID or history.ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*domain.Analysis, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM analyses WHERE id = ?`, id)
	a, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, history.ErrNotFound
	}
	return a, err
}

// Clear deletes every stored analysis.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM analyses`); err != nil {
		return fmt.Errorf("clearing analyses: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (*domain.Analysis, error) {
	var (
		a         domain.Analysis
		words     string
		chunks    string
		createdAt int64
	)
	err := row.Scan(&a.ID, &a.Source, &a.Digest, &a.Summary, &a.Polarity, &a.Score, &a.SentenceCount, &words,
		&a.DocumentID, &chunks, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning analysis: %w", err)
	}
	if err := json.Unmarshal([]byte(words), &a.Words); err != nil {
		return nil, fmt.Errorf("unmarshalling words: %w", err)
	}
	if err := json.Unmarshal([]byte(chunks), &a.SummaryChunks); err != nil {
		return nil, fmt.Errorf("unmarshalling summary chunks: %w", err)
	}
	a.CreatedAt = time.Unix(0, createdAt).UTC()
	return &a, nil
}
