package txledger

import (
	"context"
	"errors"

	"github.com/sahilsutar/txledger/internal/pkg/types"
)

// ErrTransactionNotMined indicates that no receipt exists for the requested
// transaction hash: the transaction has not been confirmed yet. This is a
// recoverable condition, not a system fault; callers are expected to retry
// ingestion later.
var ErrTransactionNotMined = errors.New("transaction not yet mined")

// Log is a single event log entry emitted during a transaction's execution.
type Log struct {
	Address string   // Contract that emitted the log
	Topics  []string // Indexed topics; Topics[0] is the event signature hash
	Data    string   // Hex-encoded non-indexed payload
}

// Receipt is the chain's record of a transaction's execution outcome.
type Receipt struct {
	TransactionHash string    // Hash of the executed transaction
	From            string    // Sender address
	To              string    // Top-level recipient (may be a contract)
	Status          types.Hex // Execution outcome flag; "0x1" means success
	BlockNumber     types.Hex // Confirming block height
	Logs            []Log     // Event logs emitted during execution
}

// TransactionBody is the originally submitted transaction payload.
type TransactionBody struct {
	Hash  string    // Transaction hash
	From  string    // Sender address
	To    string    // Declared recipient
	Input string    // Call data; "0x" for a plain value transfer
	Value types.Hex // Native value in wei
}

// BlockHeader carries the block metadata the classifier needs; the full block
// body is never fetched.
type BlockHeader struct {
	Number    types.Hex // Block height
	Timestamp types.Hex // Block timestamp in Unix seconds
}

// ChainReader retrieves immutable on-chain facts for a given transaction
// identifier. All reads are pure lookups against an external chain node:
// no local state, no caching, every call re-queries.
type ChainReader interface {
	// TransactionReceipt fetches the execution receipt for the given hash.
	// It returns ErrTransactionNotMined when the node has no receipt for the
	// hash (the transaction is unknown or still pending).
	TransactionReceipt(ctx context.Context, hash string) (Receipt, error)

	// TransactionByHash fetches the originally submitted transaction body.
	TransactionByHash(ctx context.Context, hash string) (TransactionBody, error)

	// BlockByNumber fetches the header of the block at the given height.
	BlockByNumber(ctx context.Context, number types.Hex) (BlockHeader, error)
}
