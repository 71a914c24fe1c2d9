package colorstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteStore is the SQLite-backed implementation of Store. The similarity
// scan evaluates the color_dist SQL function registered by
// engine.RegisterColorFunctions; register it before opening the database so
// every pooled connection sees it.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed Store. It ensures the colors
// schema exists in the provided database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("colorstore: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, fmt.Errorf("colorstore: ensure schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Get returns the name stored at key, or ErrNotFound when absent.
func (s *SQLiteStore) Get(ctx context.Context, key Key) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var name string
	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM colors WHERE r = ? AND g = ? AND b = ? LIMIT 1`,
		key.R, key.G, key.B,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("colorstore: get %s: %w", FormatKey(key), err)
	}
	return name, nil
}

// Upsert inserts or replaces the record at key.
func (s *SQLiteStore) Upsert(ctx context.Context, key Key, name string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO colors(r, g, b, name) VALUES (?, ?, ?, ?)
		 ON CONFLICT(r, g, b) DO UPDATE SET name = excluded.name`,
		key.R, key.G, key.B, name,
	)
	if err != nil {
		return fmt.Errorf("colorstore: upsert %s: %w", FormatKey(key), err)
	}
	return nil
}

// BulkUpsert applies all records in one transaction. On any failure the
// transaction rolls back and the store keeps its prior state.
func (s *SQLiteStore) BulkUpsert(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("colorstore: begin bulk upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO colors(r, g, b, name) VALUES (?, ?, ?, ?)
		 ON CONFLICT(r, g, b) DO UPDATE SET name = excluded.name`)
	if err != nil {
		return fmt.Errorf("colorstore: prepare bulk upsert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.Key.R, rec.Key.G, rec.Key.B, rec.Name); err != nil {
			return fmt.Errorf("colorstore: bulk upsert %s: %w", FormatKey(rec.Key), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("colorstore: commit bulk upsert: %w", err)
	}
	return nil
}

// ScanSimilar returns every record within threshold Manhattan distance of
// center, ascending by distance with (r, g, b) as the tie-break. The scan
// is linear over the table; for tables in the thousands of rows this is
// the intended baseline.
func (s *SQLiteStore) ScanSimilar(ctx context.Context, center Key, threshold int) ([]Match, error) {
	if threshold < 0 {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT r, g, b, name, color_dist(r, g, b, ?, ?, ?) AS dist
		 FROM colors
		 WHERE color_dist(r, g, b, ?, ?, ?) <= ?
		 ORDER BY dist, r, g, b`,
		center.R, center.G, center.B,
		center.R, center.G, center.B, threshold,
	)
	if err != nil {
		return nil, fmt.Errorf("colorstore: scan similar to %s: %w", FormatKey(center), err)
	}
	defer rows.Close()

	var out []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.Key.R, &m.Key.G, &m.Key.B, &m.Name, &m.Distance); err != nil {
			return nil, fmt.Errorf("colorstore: scan similar row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("colorstore: scan similar to %s: %w", FormatKey(center), err)
	}
	return out, nil
}

// Count reports the number of stored records.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM colors`).Scan(&n); err != nil {
		return 0, fmt.Errorf("colorstore: count: %w", err)
	}
	return n, nil
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
