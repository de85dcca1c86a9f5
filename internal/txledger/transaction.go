package txledger

import "time"

// TransactionStatus is the terminal execution outcome of a recorded
// transaction, derived from the receipt's status flag.
type TransactionStatus string

const (
	StatusSuccess TransactionStatus = "Success"
	StatusFailed  TransactionStatus = "Failed"
)

// Sentinel asset names used when a transaction cannot be classified as a
// recognizable transfer.
const (
	// assetNameContractCall labels contract interactions that emit no
	// recognizable token transfer event.
	assetNameContractCall = "Contract Call"

	// assetNameUnknown labels token transfers whose contract could not be
	// resolved (symbol or decimals lookup failed).
	assetNameUnknown = "Unknown"
)

// nativeCoinDecimals is the fixed decimal precision of the chain's native
// coin (wei-style 18 decimals on EVM chains).
const nativeCoinDecimals = 18

// TransactionRecord is the ledger's unit of storage: one classified
// transaction, keyed by its chain-assigned hash.
//
// Sender and Recipient are always stored lowercased so that later equality
// lookups are case-insensitive by construction. Amount is the human-readable
// decimal string produced by scaling the raw on-chain value by the asset's
// decimals; it is kept as a string to preserve full precision.
type TransactionRecord struct {
	Identifier  string            // Chain-assigned transaction hash, unique
	Sender      string            // Canonical (lowercase) sender address
	Recipient   string            // Canonical (lowercase) beneficiary address
	Amount      string            // Decimal string of the transferred quantity
	AssetName   string            // Native symbol, resolved token symbol, or a sentinel
	BlockHeight int64             // Confirming block number
	Status      TransactionStatus // Execution outcome
	ObservedAt  time.Time         // Confirming block's timestamp (chain time)
}
