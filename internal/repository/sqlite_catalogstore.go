package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"virtual-team-planner/backend/internal/catalog"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

const sqliteSchema = `CREATE TABLE IF NOT EXISTS catalog_documents (
	kind     TEXT    NOT NULL,
	id       TEXT    NOT NULL,
	position INTEGER NOT NULL,
	body     TEXT    NOT NULL,
	PRIMARY KEY (kind, id)
)`

// SQLiteCatalogStore is a SQLite implementation of the Store interface.
type SQLiteCatalogStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database file at path.
func OpenSQLite(path string) (*SQLiteCatalogStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("sqlite: create data dir: %w", err)
		}
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open database: %w", err)
	}
	for _, p := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite: pragma %q: %w", p, err)
		}
	}
	return &SQLiteCatalogStore{db: db}, nil
}

// Migrate creates the catalog_documents table.
func (s *SQLiteCatalogStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("sqlite: migrate: %w", err)
	}
	return nil
}

// Save replaces every stored document with the rows of t.
func (s *SQLiteCatalogStore) Save(ctx context.Context, t catalog.Tables) error {
	docs, err := encodeTables(t)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM catalog_documents"); err != nil {
		return fmt.Errorf("sqlite: clear: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO catalog_documents (kind, id, position, body) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("sqlite: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range docs {
		if _, err := stmt.ExecContext(ctx, d.Kind, d.ID, d.Position, string(d.Body)); err != nil {
			return fmt.Errorf("sqlite: insert %s %q: %w", d.Kind, d.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}

// Load reads every stored document and reassembles the tables.
func (s *SQLiteCatalogStore) Load(ctx context.Context) (catalog.Tables, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT kind, id, position, body FROM catalog_documents ORDER BY kind, position")
	if err != nil {
		return catalog.Tables{}, fmt.Errorf("sqlite: query: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			d    Document
			body string
		)
		if err := rows.Scan(&d.Kind, &d.ID, &d.Position, &body); err != nil {
			return catalog.Tables{}, fmt.Errorf("sqlite: scan: %w", err)
		}
		d.Body = []byte(body)
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return catalog.Tables{}, fmt.Errorf("sqlite: read rows: %w", err)
	}

	return decodeTables(docs)
}

// Close closes the database.
func (s *SQLiteCatalogStore) Close() error {
	return s.db.Close()
}
