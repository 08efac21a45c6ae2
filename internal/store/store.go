// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists parsed papers and their embedding vectors in a
// SQLite database and serves reads from an in-memory cache.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

// ErrUnknownPaper reports a paper ID with no stored record.
var ErrUnknownPaper = errors.New("unknown paper")

// record is one cached paper with everything the assistant needs.
type record struct {
	paper      *types.ParsedPaper
	vectors    *types.PaperVectors
	uploadedAt time.Time
}

// Store manages the paper database. All reads are answered from the
// in-memory cache, which is loaded once on Open and kept in sync with
// every write. A coarse RWMutex guards the cache; contention is
// negligible at the corpus sizes this serves.
type Store struct {
	db *sql.DB

	mu     sync.RWMutex
	papers map[string]record
}

// Open opens or creates the SQLite database at dbPath, creates the
// schema if needed, and loads every stored paper into memory.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, papers: make(map[string]record)}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	if err := s.loadAll(); err != nil {
		db.Close()
		return nil, fmt.Errorf("loading papers: %w", err)
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
			title TEXT,
			uploaded_at TEXT NOT NULL,
			paper TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS embeddings (
			paper_id TEXT PRIMARY KEY REFERENCES papers(id) ON DELETE CASCADE,
			vectors TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// loadAll populates the cache from disk. Called once, before the store
// is shared, so no locking.
func (s *Store) loadAll() error {
	rows, err := s.db.Query(
		`SELECT p.id, p.uploaded_at, p.paper, e.vectors
		 FROM papers p LEFT JOIN embeddings e ON e.paper_id = p.id`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          string
			uploadedAt  string
			paperJSON   string
			vectorsJSON sql.NullString
		)
		if err := rows.Scan(&id, &uploadedAt, &paperJSON, &vectorsJSON); err != nil {
			return err
		}

		var paper types.ParsedPaper
		if err := json.Unmarshal([]byte(paperJSON), &paper); err != nil {
			return fmt.Errorf("decoding paper %s: %w", id, err)
		}

		rec := record{paper: &paper}
		if vectorsJSON.Valid {
			var vectors types.PaperVectors
			if err := json.Unmarshal([]byte(vectorsJSON.String), &vectors); err != nil {
				return fmt.Errorf("decoding vectors for %s: %w", id, err)
			}
			rec.vectors = &vectors
		}
		if t, err := time.Parse(time.RFC3339Nano, uploadedAt); err == nil {
			rec.uploadedAt = t
		}

		s.papers[id] = rec
	}
	return rows.Err()
}

// Put stores a paper and its vectors under id, replacing any previous
// record wholesale. The paper row and embedding row are written in one
// transaction; the cache is updated only after commit.
func (s *Store) Put(ctx context.Context, id string, paper *types.ParsedPaper, vectors *types.PaperVectors, uploadedAt time.Time) error {
	paperJSON, err := json.Marshal(paper)
	if err != nil {
		return fmt.Errorf("encoding paper: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO papers (id, title, uploaded_at, paper) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, uploaded_at=excluded.uploaded_at, paper=excluded.paper`,
		id, paper.Metadata.Title, uploadedAt.UTC().Format(time.RFC3339Nano), string(paperJSON),
	)
	if err != nil {
		return fmt.Errorf("upserting paper: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM embeddings WHERE paper_id = ?`, id); err != nil {
		return fmt.Errorf("deleting old vectors: %w", err)
	}
	if vectors != nil {
		vectorsJSON, err := json.Marshal(vectors)
		if err != nil {
			return fmt.Errorf("encoding vectors: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO embeddings (paper_id, vectors) VALUES (?, ?)`,
			id, string(vectorsJSON),
		)
		if err != nil {
			return fmt.Errorf("inserting vectors: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	s.mu.Lock()
	s.papers[id] = record{paper: paper, vectors: vectors, uploadedAt: uploadedAt}
	s.mu.Unlock()
	return nil
}

// Get returns the parsed paper stored under id.
func (s *Store) Get(id string) (*types.ParsedPaper, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.papers[id]
	if !ok {
		return nil, fmt.Errorf("paper %s: %w", id, ErrUnknownPaper)
	}
	return rec.paper, nil
}

// Vectors returns the embedding vectors stored under id. A paper stored
// without vectors yields nil, nil.
func (s *Store) Vectors(id string) (*types.PaperVectors, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.papers[id]
	if !ok {
		return nil, fmt.Errorf("paper %s: %w", id, ErrUnknownPaper)
	}
	return rec.vectors, nil
}

// UploadedAt returns when the paper was stored.
func (s *Store) UploadedAt(id string) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.papers[id]
	if !ok {
		return time.Time{}, fmt.Errorf("paper %s: %w", id, ErrUnknownPaper)
	}
	return rec.uploadedAt, nil
}

// Delete removes a paper and its vectors.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.papers[id]; !ok {
		return fmt.Errorf("paper %s: %w", id, ErrUnknownPaper)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM papers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting paper: %w", err)
	}

	delete(s.papers, id)
	return nil
}

// List returns the IDs of every stored paper in ascending order.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.papers))
	for id := range s.papers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AbstractVectors returns the abstract embedding of every paper that has
// one, keyed by paper ID.
func (s *Store) AbstractVectors() map[string][]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]float64)
	for id, rec := range s.papers {
		if rec.vectors != nil && len(rec.vectors.Abstract) > 0 {
			out[id] = rec.vectors.Abstract
		}
	}
	return out
}

// Len returns the number of stored papers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.papers)
}
