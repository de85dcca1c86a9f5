package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sahilsutar/txledger/internal/txhistory"
	"github.com/sahilsutar/txledger/internal/txledger"
)

// upsertQuery inserts or replaces the row keyed by identifier in a single
// atomic statement and returns the stored row. ON CONFLICT gives
// last-write-wins semantics, so concurrent duplicate ingestions converge
// without a duplicate-key error ever reaching a caller.
const upsertQuery = `
INSERT INTO transaction_records
	(identifier, sender, recipient, amount, asset_name, block_height, status, observed_at)
VALUES
	($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (identifier) DO UPDATE SET
	sender       = EXCLUDED.sender,
	recipient    = EXCLUDED.recipient,
	amount       = EXCLUDED.amount,
	asset_name   = EXCLUDED.asset_name,
	block_height = EXCLUDED.block_height,
	status       = EXCLUDED.status,
	observed_at  = EXCLUDED.observed_at
RETURNING identifier, sender, recipient, amount, asset_name, block_height, status, observed_at`

const existsQuery = `
SELECT EXISTS (SELECT 1 FROM transaction_records WHERE identifier = $1)`

// listByAddressQuery matches the canonical address on either side of the
// transfer, most recent confirming time first.
const listByAddressQuery = `
SELECT identifier, sender, recipient, amount, asset_name, block_height, status, observed_at
FROM transaction_records
WHERE sender = $1 OR recipient = $1
ORDER BY observed_at DESC
LIMIT $2`

// Exists implements the txledger.LedgerStorage existence check.
func (c *client) Exists(ctx context.Context, identifier string) (bool, error) {
	var exists bool
	err := c.pool.QueryRow(ctx, existsQuery, identifier).Scan(&exists)
	return exists, err
}

// Upsert implements the txledger.LedgerStorage idempotent write.
func (c *client) Upsert(ctx context.Context, record txledger.TransactionRecord) (txledger.TransactionRecord, error) {
	row := c.pool.QueryRow(ctx, upsertQuery,
		record.Identifier,
		record.Sender,
		record.Recipient,
		record.Amount,
		record.AssetName,
		record.BlockHeight,
		string(record.Status),
		record.ObservedAt,
	)

	return scanRecord(row)
}

// ListByAddress implements the txhistory.LedgerStorage query.
func (c *client) ListByAddress(ctx context.Context, address string, limit int) ([]txledger.TransactionRecord, error) {
	rows, err := c.pool.Query(ctx, listByAddressQuery, address, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]txledger.TransactionRecord, 0, limit)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// scanRecord maps a ledger row onto a txledger.TransactionRecord.
func scanRecord(row pgx.Row) (txledger.TransactionRecord, error) {
	var (
		record txledger.TransactionRecord
		status string
	)

	err := row.Scan(
		&record.Identifier,
		&record.Sender,
		&record.Recipient,
		&record.Amount,
		&record.AssetName,
		&record.BlockHeight,
		&status,
		&record.ObservedAt,
	)
	if err != nil {
		return txledger.TransactionRecord{}, err
	}

	record.Status = txledger.TransactionStatus(status)
	return record, nil
}

// Compile-time interface checks.
var (
	_ txledger.LedgerStorage  = (*client)(nil)
	_ txhistory.LedgerStorage = (*client)(nil)
)
