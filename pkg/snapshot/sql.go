package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLStore is a SQL-backed snapshot store.
// It works with any database/sql compatible driver (SQLite, PostgreSQL).
// Requires a table with schema:
//
//	CREATE TABLE weft_snapshots (
//	    id TEXT PRIMARY KEY,
//	    seq INTEGER NOT NULL,
//	    html TEXT NOT NULL,
//	    created_at TIMESTAMP NOT NULL
//	);
type SQLStore struct {
	db        *sql.DB
	tableName string
	dialect   SQLDialect
	closed    bool
}

// SQLDialect represents the SQL dialect for query generation.
type SQLDialect int

const (
	// DialectSQLite uses SQLite syntax (? placeholders).
	DialectSQLite SQLDialect = iota
	// DialectPostgreSQL uses PostgreSQL syntax ($1, $2 placeholders).
	DialectPostgreSQL
)

// SQLStoreOption configures SQLStore behavior.
type SQLStoreOption func(*sqlStoreConfig)

type sqlStoreConfig struct {
	tableName string
	dialect   SQLDialect
}

// WithSQLTableName sets the table name for snapshot storage.
// Default: "weft_snapshots".
func WithSQLTableName(name string) SQLStoreOption {
	return func(c *sqlStoreConfig) {
		c.tableName = name
	}
}

// WithSQLDialect sets the SQL dialect for query generation.
// Default: DialectSQLite.
func WithSQLDialect(dialect SQLDialect) SQLStoreOption {
	return func(c *sqlStoreConfig) {
		c.dialect = dialect
	}
}

// NewSQLStore creates a new SQL-backed snapshot store. The table is
// created if it doesn't exist.
func NewSQLStore(db *sql.DB, opts ...SQLStoreOption) (*SQLStore, error) {
	cfg := &sqlStoreConfig{
		tableName: "weft_snapshots",
		dialect:   DialectSQLite,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	store := &SQLStore{
		db:        db,
		tableName: cfg.tableName,
		dialect:   cfg.dialect,
	}

	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			seq INTEGER NOT NULL,
			html TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`, store.tableName)
	if _, err := db.Exec(ddl); err != nil {
		return nil, fmt.Errorf("create snapshot table: %w", err)
	}
	return store, nil
}

// placeholder returns the placeholder syntax for the dialect.
func (s *SQLStore) placeholder(n int) string {
	if s.dialect == DialectPostgreSQL {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Save persists a snapshot, overwriting any previous one with the same ID.
func (s *SQLStore) Save(ctx context.Context, snap *Snapshot) error {
	if s.closed {
		return ErrStoreClosed{}
	}

	var query string
	switch s.dialect {
	case DialectPostgreSQL:
		query = fmt.Sprintf(`
			INSERT INTO %s (id, seq, html, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE
			SET seq = EXCLUDED.seq, html = EXCLUDED.html, created_at = EXCLUDED.created_at`,
			s.tableName)
	default:
		query = fmt.Sprintf(`
			INSERT OR REPLACE INTO %s (id, seq, html, created_at)
			VALUES (?, ?, ?, ?)`, s.tableName)
	}

	_, err := s.db.ExecContext(ctx, query, snap.ID, int64(snap.Seq), snap.HTML, snap.CreatedAt)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load retrieves a snapshot by ID.
func (s *SQLStore) Load(ctx context.Context, id string) (*Snapshot, error) {
	if s.closed {
		return nil, ErrStoreClosed{}
	}

	query := fmt.Sprintf(`SELECT seq, html, created_at FROM %s WHERE id = %s`,
		s.tableName, s.placeholder(1))

	var (
		seq       int64
		html      string
		createdAt time.Time
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(&seq, &html, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	return &Snapshot{ID: id, Seq: uint64(seq), HTML: html, CreatedAt: createdAt}, nil
}

// Delete removes a snapshot.
func (s *SQLStore) Delete(ctx context.Context, id string) error {
	if s.closed {
		return ErrStoreClosed{}
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = %s`, s.tableName, s.placeholder(1))
	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

// Close marks the store closed. It does not close the *sql.DB, which is
// owned by the caller.
func (s *SQLStore) Close() error {
	s.closed = true
	return nil
}
