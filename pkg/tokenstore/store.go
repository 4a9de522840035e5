// Package tokenstore persists tokenized runs in a local SQLite database so a
// token stream can be inspected or diffed after the fact.
package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/agenthands/minijava/pkg/compiler/lexer"
)

// ErrRunNotFound is returned by Load for an unknown run id.
var ErrRunNotFound = errors.New("tokenstore: run not found")

// Run describes one stored tokenization.
type Run struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Tokens    int
	Errors    int
}

// Store is a SQLite-backed token repository.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// A single connection keeps :memory: databases coherent.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if err := createSchemas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schemas: %w", err)
	}
	return &Store{db: db}, nil
}

func createSchemas(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			token_count INTEGER NOT NULL,
			error_count INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS tokens (
			run_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			kind TEXT NOT NULL,
			text TEXT NOT NULL,
			byte_offset INTEGER NOT NULL,
			line INTEGER NOT NULL,
			col INTEGER NOT NULL,
			PRIMARY KEY (run_id, seq),
			FOREIGN KEY (run_id) REFERENCES runs(run_id)
		);`,
	}

	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores toks under a fresh run id in a single transaction.
func (s *Store) Save(ctx context.Context, name string, toks []lexer.Token) (Run, error) {
	run := Run{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Tokens:    len(toks),
		Errors:    lexer.ErrorCount(toks),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, name, created_at, token_count, error_count) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Name, run.CreatedAt, run.Tokens, run.Errors,
	)
	if err != nil {
		return Run{}, fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO tokens (run_id, seq, kind, text, byte_offset, line, col) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, fmt.Errorf("failed to prepare token insert: %w", err)
	}
	defer stmt.Close()

	for i, tok := range toks {
		if _, err := stmt.ExecContext(ctx, run.ID, i, tok.Kind.String(), tok.Text, tok.Offset, tok.Line, tok.Column); err != nil {
			return Run{}, fmt.Errorf("failed to insert token %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("failed to commit run: %w", err)
	}
	return run, nil
}

// Load returns the tokens of run id in scan order.
func (s *Store) Load(ctx context.Context, id string) ([]lexer.Token, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE run_id = ?`, id).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, text, byte_offset, line, col FROM tokens WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query tokens: %w", err)
	}
	defer rows.Close()

	var toks []lexer.Token
	for rows.Next() {
		var (
			tok  lexer.Token
			kind string
		)
		if err := rows.Scan(&kind, &tok.Text, &tok.Offset, &tok.Line, &tok.Column); err != nil {
			return nil, err
		}
		k, ok := lexer.ParseKind(kind)
		if !ok {
			return nil, fmt.Errorf("run %s: unknown token kind %q", id, kind)
		}
		tok.Kind = k
		toks = append(toks, tok)
	}
	return toks, rows.Err()
}

// List returns all stored runs, newest first.
func (s *Store) List(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, name, created_at, token_count, error_count FROM runs ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Name, &r.CreatedAt, &r.Tokens, &r.Errors); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
