// Giftwise - Gift Suggestion and Discovery Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/giftwise

// Package feedback persists purchase and rejection history in DuckDB and
// implements the engine's FeedbackStore interface.
//
// Writes are serialized by database/sql; the engine never retries feedback
// I/O errors, so failures surface to the caller.
package feedback

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // registers the duckdb driver
	"github.com/rs/zerolog"

	"github.com/tomtom215/giftwise/internal/metrics"
	"github.com/tomtom215/giftwise/internal/suggest"
)

// Config holds feedback store configuration.
type Config struct {
	// Path is the DuckDB database file. Empty means in-memory, which is
	// useful for tests and ephemeral deployments.
	Path string
}

// Store is a DuckDB-backed feedback store.
type Store struct {
	conn   *sql.DB
	logger zerolog.Logger
}

// Compile-time interface check.
var _ suggest.FeedbackStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS rejections (
	person_id   VARCHAR NOT NULL,
	category_id VARCHAR NOT NULL,
	reason      VARCHAR NOT NULL,
	created_at  TIMESTAMP NOT NULL,
	PRIMARY KEY (person_id, category_id)
);
CREATE TABLE IF NOT EXISTS purchases (
	person_id   VARCHAR NOT NULL,
	category_id VARCHAR NOT NULL,
	price       DOUBLE,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_purchases_person ON purchases (person_id, created_at);
`

// Open opens (or creates) the feedback database and initializes the schema.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func Open(cfg Config, logger zerolog.Logger) (*Store, error) {
	conn, err := sql.Open("duckdb", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open feedback db: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping feedback db: %w", err)
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("init feedback schema: %w", err)
	}

	s := &Store{
		conn:   conn,
		logger: logger.With().Str("component", "feedback").Logger(),
	}
	s.logger.Info().Str("path", cfg.Path).Msg("feedback store opened")
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.conn.Close()
}

// RecentlyPurchasedCategoryIDs returns ids of categories the person
// purchased at or after since.
func (s *Store) RecentlyPurchasedCategoryIDs(ctx context.Context, personID string, since time.Time) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT DISTINCT category_id FROM purchases WHERE person_id = ? AND created_at >= ?`,
		personID, since)
	if err != nil {
		return nil, fmt.Errorf("query purchases: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	return scanIDs(rows)
}

// RejectedCategoryIDs returns ids of categories with any rejection record
// for the person. Expiry is handled by the purge service, not here: any
// existing record counts.
func (s *Store) RejectedCategoryIDs(ctx context.Context, personID string) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT category_id FROM rejections WHERE person_id = ?`,
		personID)
	if err != nil {
		return nil, fmt.Errorf("query rejections: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	return scanIDs(rows)
}

// InsertRejection persists a rejection record, replacing any existing one
// for the same (person, category) pair.
func (s *Store) InsertRejection(ctx context.Context, personID, categoryID string, reason suggest.RejectionReason, at time.Time) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO rejections (person_id, category_id, reason, created_at) VALUES (?, ?, ?, ?)`,
		personID, categoryID, reason.String(), at)
	if err != nil {
		return fmt.Errorf("insert rejection: %w", err)
	}
	return nil
}

// ClearRejection removes the rejection record for the pair, if any.
func (s *Store) ClearRejection(ctx context.Context, personID, categoryID string) error {
	_, err := s.conn.ExecContext(ctx,
		`DELETE FROM rejections WHERE person_id = ? AND category_id = ?`,
		personID, categoryID)
	if err != nil {
		return fmt.Errorf("clear rejection: %w", err)
	}
	return nil
}

// RecordPurchase stores a purchase so the category is suppressed for the
// lookback window. Price is optional.
func (s *Store) RecordPurchase(ctx context.Context, personID, categoryID string, price *float64, at time.Time) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO purchases (person_id, category_id, price, created_at) VALUES (?, ?, ?, ?)`,
		personID, categoryID, price, at)
	if err != nil {
		return fmt.Errorf("record purchase: %w", err)
	}
	return nil
}

// PurgeExpiredRejections deletes rejection records created before cutoff and
// returns the number removed.
func (s *Store) PurgeExpiredRejections(ctx context.Context, cutoff time.Time) (int64, error) {
	start := time.Now()
	res, err := s.conn.ExecContext(ctx,
		`DELETE FROM rejections WHERE created_at < ?`, cutoff)
	metrics.ObserveFeedbackQuery("purge", err, time.Since(start))
	if err != nil {
		return 0, fmt.Errorf("purge rejections: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, nil //nolint:nilerr // delete succeeded; count is best-effort
	}
	if n > 0 {
		metrics.RejectionsPurged.Add(float64(n))
		s.logger.Info().Int64("purged", n).Time("cutoff", cutoff).Msg("purged expired rejections")
	}
	return n, nil
}

// scanIDs drains a single-column id cursor.
func scanIDs(rows *sql.Rows) ([]string, error) {
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ids: %w", err)
	}
	return ids, nil
}
