package txledger

import "context"

// LedgerStorage is the append-only, idempotent persistence backing the
// transaction ledger, keyed uniquely by transaction identifier.
type LedgerStorage interface {
	// Exists reports whether a record is already stored for the given
	// identifier.
	Exists(ctx context.Context, identifier string) (bool, error)

	// Upsert inserts or replaces the record keyed by its identifier, atomic
	// at the storage layer, and returns the stored row. It must be safe to
	// call repeatedly with the same identifier and produce a single stored
	// record (last-write-wins), including under concurrent duplicate
	// ingestion. A duplicate key must never surface as an error.
	Upsert(ctx context.Context, record TransactionRecord) (TransactionRecord, error)
}
