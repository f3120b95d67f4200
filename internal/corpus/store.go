// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus persists the document collection in SQLite and loads
// it into memory for the recommendation engine. Papers and their
// abstracts live in separate tables, mirroring the split snapshot the
// corpus is distributed as; a count mismatch between the two is fatal.
package corpus

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// ErrMissingResource means a required on-disk resource (the corpus
// database or a dump file) is absent. The wrapped message names it.
var ErrMissingResource = errors.New("missing resource")

// ErrDataConsistency means the papers and abstracts tables disagree in
// count. The corpus cannot be trusted; no retrieval runs against it.
var ErrDataConsistency = errors.New("corpus data inconsistent")

// Store manages the corpus SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens an existing corpus database. A missing file is
// ErrMissingResource: the corpus must be fetched or loaded first.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: corpus database %s (run `paper-scout corpus fetch` or `paper-scout corpus load`)",
				ErrMissingResource, path)
		}
		return nil, fmt.Errorf("checking corpus database %s: %w", path, err)
	}
	return open(path)
}

// Create opens the corpus database at path, creating the file and its
// parent directory if needed. Used by ingestion.
func Create(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating corpus directory: %w", err)
		}
	}
	return open(path)
}

func open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening corpus database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			authors TEXT,
			year INTEGER,
			journal TEXT,
			url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS abstracts (
			paper_id TEXT PRIMARY KEY REFERENCES papers(id),
			abstract TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_year ON papers(year)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Load reads the whole corpus into memory, joining abstracts onto
// papers in insertion order. A count mismatch between the two tables is
// ErrDataConsistency and aborts before any document is returned.
func (s *Store) Load(ctx context.Context) ([]types.Document, error) {
	var nPapers, nAbstracts int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM papers`).Scan(&nPapers); err != nil {
		return nil, fmt.Errorf("counting papers: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM abstracts`).Scan(&nAbstracts); err != nil {
		return nil, fmt.Errorf("counting abstracts: %w", err)
	}
	if nPapers != nAbstracts {
		return nil, fmt.Errorf("%w: %d papers but %d abstracts", ErrDataConsistency, nPapers, nAbstracts)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.title, p.authors, p.year, p.journal, p.url, a.abstract
		 FROM papers p JOIN abstracts a ON a.paper_id = p.id
		 ORDER BY p.rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying corpus: %w", err)
	}
	defer rows.Close()

	docs := make([]types.Document, 0, nPapers)
	for rows.Next() {
		var (
			doc         types.Document
			authorsJSON sql.NullString
			journal     sql.NullString
			url         sql.NullString
		)
		if err := rows.Scan(&doc.ID, &doc.Title, &authorsJSON, &doc.Year, &journal, &url, &doc.Abstract); err != nil {
			return nil, fmt.Errorf("scanning corpus row: %w", err)
		}
		if authorsJSON.Valid {
			json.Unmarshal([]byte(authorsJSON.String), &doc.Authors)
		}
		doc.Journal = journal.String
		doc.URL = url.String
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Ingest upserts documents into the store in one transaction. Each
// document writes one papers row and one abstracts row, so Load's
// consistency check holds after any successful ingest.
func (s *Store) Ingest(ctx context.Context, docs []types.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	paperStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (id, title, authors, year, journal, url)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, authors=excluded.authors, year=excluded.year,
			journal=excluded.journal, url=excluded.url`)
	if err != nil {
		return fmt.Errorf("preparing paper insert: %w", err)
	}
	defer paperStmt.Close()

	abstractStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO abstracts (paper_id, abstract) VALUES (?, ?)
		 ON CONFLICT(paper_id) DO UPDATE SET abstract=excluded.abstract`)
	if err != nil {
		return fmt.Errorf("preparing abstract insert: %w", err)
	}
	defer abstractStmt.Close()

	for _, doc := range docs {
		authorsJSON, _ := json.Marshal(doc.Authors)
		if _, err := paperStmt.ExecContext(ctx,
			doc.ID, doc.Title, string(authorsJSON), doc.Year, doc.Journal, doc.URL); err != nil {
			return fmt.Errorf("inserting paper %s: %w", doc.ID, err)
		}
		if _, err := abstractStmt.ExecContext(ctx, doc.ID, doc.Abstract); err != nil {
			return fmt.Errorf("inserting abstract for %s: %w", doc.ID, err)
		}
	}

	return tx.Commit()
}

// Stats summarizes the stored corpus.
type Stats struct {
	Papers    int
	Abstracts int
	MinYear   int
	MaxYear   int
}

// Stats returns row counts and the publication-year range.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM papers`).Scan(&st.Papers); err != nil {
		return st, fmt.Errorf("counting papers: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM abstracts`).Scan(&st.Abstracts); err != nil {
		return st, fmt.Errorf("counting abstracts: %w", err)
	}
	if st.Papers > 0 {
		if err := s.db.QueryRowContext(ctx,
			`SELECT min(year), max(year) FROM papers WHERE year > 0`,
		).Scan(&st.MinYear, &st.MaxYear); err != nil && err != sql.ErrNoRows {
			return st, fmt.Errorf("querying year range: %w", err)
		}
	}
	return st, nil
}

// ReadDump parses a YAML corpus dump (a list of documents) for
// ingestion. A missing file is ErrMissingResource.
func ReadDump(path string) ([]types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: corpus dump %s", ErrMissingResource, path)
		}
		return nil, fmt.Errorf("reading corpus dump: %w", err)
	}
	var docs []types.Document
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parsing corpus dump %s: %w", path, err)
	}
	return docs, nil
}
