package txhistory

import (
	"context"

	"github.com/sahilsutar/txledger/internal/txledger"
)

// LedgerStorage is the read side of the transaction ledger consumed by the
// history service.
type LedgerStorage interface {
	// ListByAddress returns up to limit records where the given canonical
	// (lowercase) address appears as either sender or recipient, ordered by
	// observed time descending (most recent confirming block first).
	ListByAddress(ctx context.Context, address string, limit int) ([]txledger.TransactionRecord, error)
}
