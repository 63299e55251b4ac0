// Package studytime tracks accumulated study minutes per calendar day.
package studytime

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hammamikhairi/lingodrill/internal/logger"
)

// Store is the SQLite-backed daily study ledger. One row per calendar day;
// reading a day that has no row yields zero minutes, so a new day starts
// fresh without explicit reset.
type Store struct {
	db    *sql.DB
	log   *logger.Logger
	clock func() time.Time
}

// Open initializes the ledger database at path, creating parent directories
// and the schema as needed.
func Open(ctx context.Context, path string, log *logger.Logger) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	s := &Store{db: db, log: log, clock: time.Now}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS study_days (
	day     TEXT PRIMARY KEY,
	minutes INTEGER NOT NULL DEFAULT 0
);`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// day formats a time as the ledger's ISO date key.
func day(t time.Time) string {
	return t.Format("2006-01-02")
}

// Today returns the minutes recorded for the current day. A record from an
// earlier day never carries over.
func (s *Store) Today(ctx context.Context) (int, error) {
	var minutes int
	err := s.db.QueryRowContext(ctx,
		`SELECT minutes FROM study_days WHERE day = ?`, day(s.clock())).Scan(&minutes)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read study minutes: %w", err)
	}
	return minutes, nil
}

// Add increments today's minutes and returns the new total.
func (s *Store) Add(ctx context.Context, minutes int) (int, error) {
	today := day(s.clock())
	_, err := s.db.ExecContext(ctx, `
INSERT INTO study_days (day, minutes) VALUES (?, ?)
ON CONFLICT(day) DO UPDATE SET minutes = minutes + excluded.minutes`,
		today, minutes)
	if err != nil {
		return 0, fmt.Errorf("record study minutes: %w", err)
	}
	return s.Today(ctx)
}

// History returns the most recent days of the ledger, newest first.
func (s *Store) History(ctx context.Context, limit int) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT day, minutes FROM study_days ORDER BY day DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("read study history: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var d string
		var m int
		if err := rows.Scan(&d, &m); err != nil {
			return nil, fmt.Errorf("scan study history: %w", err)
		}
		out[d] = m
	}
	return out, rows.Err()
}
