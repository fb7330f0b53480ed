package faqrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sadiya-27/Customer-support-bot/internal/domain/faq"
)

// PostgresRepository reads the knowledge base through pgx using keyset
// pagination, so a base larger than one page is scanned transparently.
type PostgresRepository struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresRepository constructs the repository over the configured table.
func NewPostgresRepository(pool *pgxpool.Pool, table string) *PostgresRepository {
	if table == "" {
		table = "faq_entries"
	}
	return &PostgresRepository{pool: pool, table: table}
}

// List implements faq.Repository. The cursor is the last faq_id of the
// previous page; faq_id ordering is the base's enumeration order.
func (r *PostgresRepository) List(ctx context.Context, cursor string, limit int) ([]faq.Entry, string, error) {
	if limit <= 0 {
		limit = 100
	}
	query := fmt.Sprintf(`
		SELECT faq_id, keywords, answer
		FROM %s
		WHERE faq_id > $1
		ORDER BY faq_id
		LIMIT $2
	`, r.table)

	rows, err := r.pool.Query(ctx, query, cursor, limit)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	entries := make([]faq.Entry, 0, limit)
	for rows.Next() {
		var entry faq.Entry
		if err := rows.Scan(&entry.ID, &entry.Keywords, &entry.Answer); err != nil {
			return nil, "", err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	next := ""
	if len(entries) == limit {
		next = entries[len(entries)-1].ID
	}
	return entries, next, nil
}

var _ faq.Repository = (*PostgresRepository)(nil)
