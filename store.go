package sqltutor

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists manual chunks in a SQLite database so the index
// survives restarts and can be rebuilt per source document.
type Store struct {
	db *sql.DB
}

// OpenStore opens the chunk database at path, creating it and its
// schema if needed.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqltutor: failed to open chunk database: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS chunks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		seq INTEGER NOT NULL,
		content TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqltutor: failed to create chunk schema: %w", err)
	}
	return &Store{db: db}, nil
}

// ReplaceChunks replaces all stored chunks for the given source in one
// transaction. Chunk order is preserved.
func (s *Store) ReplaceChunks(ctx context.Context, source string, chunks []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqltutor: failed to begin transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM chunks WHERE source = ?`, source); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("sqltutor: failed to clear chunks for %q: %w", source, err)
	}
	for i, chunk := range chunks {
		if _, err := tx.ExecContext(ctx, `INSERT INTO chunks (source, seq, content) VALUES (?, ?, ?)`, source, i, chunk); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("sqltutor: failed to insert chunk %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqltutor: failed to commit chunks: %w", err)
	}
	return nil
}

// Chunks returns all stored chunk contents grouped by source, in
// ingestion order.
func (s *Store) Chunks(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT content FROM chunks ORDER BY source, seq`)
	if err != nil {
		return nil, fmt.Errorf("sqltutor: failed to query chunks: %w", err)
	}
	defer rows.Close()

	var chunks []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("sqltutor: failed to scan chunk: %w", err)
		}
		chunks = append(chunks, content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqltutor: failed to read chunks: %w", err)
	}
	return chunks, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
