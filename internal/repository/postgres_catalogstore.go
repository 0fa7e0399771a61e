package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"virtual-team-planner/backend/internal/catalog"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS catalog_documents (
	kind     TEXT  NOT NULL,
	id       TEXT  NOT NULL,
	position INT   NOT NULL,
	body     JSONB NOT NULL,
	PRIMARY KEY (kind, id)
)`

// PostgresCatalogStore is a PostgreSQL implementation of the Store interface.
type PostgresCatalogStore struct {
	db *pgxpool.Pool
}

// NewPostgresCatalogStore creates a new PostgresCatalogStore over an open pool.
func NewPostgresCatalogStore(db *pgxpool.Pool) *PostgresCatalogStore {
	return &PostgresCatalogStore{db: db}
}

// OpenPostgres connects to connStr and verifies the connection.
func OpenPostgres(ctx context.Context, connStr string) (*PostgresCatalogStore, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return NewPostgresCatalogStore(pool), nil
}

// Migrate creates the catalog_documents table.
func (s *PostgresCatalogStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("migrate catalog_documents: %w", err)
	}
	return nil
}

// Save replaces every stored document with the rows of t.
func (s *PostgresCatalogStore) Save(ctx context.Context, t catalog.Tables) error {
	docs, err := encodeTables(t)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM catalog_documents"); err != nil {
		return fmt.Errorf("clear catalog_documents: %w", err)
	}

	rows := make([][]any, len(docs))
	for i, d := range docs {
		rows[i] = []any{d.Kind, d.ID, d.Position, d.Body}
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"catalog_documents"},
		[]string{"kind", "id", "position", "body"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("copy catalog_documents: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Load reads every stored document and reassembles the tables.
func (s *PostgresCatalogStore) Load(ctx context.Context) (catalog.Tables, error) {
	rows, err := s.db.Query(ctx, "SELECT kind, id, position, body FROM catalog_documents ORDER BY kind, position")
	if err != nil {
		return catalog.Tables{}, fmt.Errorf("query catalog_documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.Kind, &d.ID, &d.Position, &d.Body); err != nil {
			return catalog.Tables{}, fmt.Errorf("scan catalog_documents: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return catalog.Tables{}, fmt.Errorf("read catalog_documents: %w", err)
	}

	return decodeTables(docs)
}

// Close closes the pool.
func (s *PostgresCatalogStore) Close() error {
	s.db.Close()
	return nil
}
