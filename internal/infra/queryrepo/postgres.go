package queryrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sadiya-27/Customer-support-bot/internal/domain/querylog"
)

// PostgresStore appends query records through pgx. The table is insert-only
// from this service's point of view; retention is handled elsewhere.
type PostgresStore struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresStore constructs the store over the configured table.
func NewPostgresStore(pool *pgxpool.Pool, table string) *PostgresStore {
	if table == "" {
		table = "user_queries"
	}
	return &PostgresStore{pool: pool, table: table}
}

// Append implements querylog.Store.
func (s *PostgresStore) Append(ctx context.Context, record querylog.Record) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (query_id, query_text, created_at, matched_faq_id, match_score, sent_to_human, location, user_email)
		VALUES ($1, $2, to_timestamp($3), $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''))
	`, s.table)
	_, err := s.pool.Exec(ctx, query,
		record.ID,
		record.QueryText,
		record.Timestamp,
		record.MatchedFAQID,
		record.MatchScore,
		record.SentToHuman,
		record.Location,
		record.UserEmail,
	)
	return err
}

var _ querylog.Store = (*PostgresStore)(nil)
