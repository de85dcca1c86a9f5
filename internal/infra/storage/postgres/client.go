// Package postgres implements the transaction ledger storage on PostgreSQL
// using a pgx connection pool. Idempotence is enforced at the storage layer:
// the identifier is the primary key and writes go through an
// insert-or-replace upsert.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema bootstraps the ledger table and the two lookup indexes used by the
// address history query.
const schema = `
CREATE TABLE IF NOT EXISTS transaction_records (
	identifier   TEXT PRIMARY KEY,
	sender       TEXT NOT NULL,
	recipient    TEXT NOT NULL,
	amount       TEXT NOT NULL,
	asset_name   TEXT NOT NULL,
	block_height BIGINT NOT NULL,
	status       TEXT NOT NULL,
	observed_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS transaction_records_sender_idx
	ON transaction_records (sender, observed_at DESC);
CREATE INDEX IF NOT EXISTS transaction_records_recipient_idx
	ON transaction_records (recipient, observed_at DESC);
`

type client struct {
	pool *pgxpool.Pool
}

// Close releases the underlying connection pool.
func (c *client) Close() {
	c.pool.Close()
}

// NewClient connects to PostgreSQL with the given connection string, verifies
// the connection, and bootstraps the ledger schema.
func NewClient(ctx context.Context, connString string) (*client, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("bootstrap ledger schema: %w", err)
	}

	return &client{
		pool: pool,
	}, nil
}
