package txledger

import (
	"context"
	"errors"
)

// ErrAssetResolutionFailed indicates that the symbol or decimals lookup
// against a token contract failed. The classifier recovers from it locally by
// falling back to a sentinel asset name; classification still succeeds and the
// record is still persisted.
var ErrAssetResolutionFailed = errors.New("asset resolution failed")

// Asset describes a token contract's display properties.
type Asset struct {
	Symbol   string // Display symbol (e.g., "USDT")
	Decimals uint8  // Decimal precision used to scale raw values
}

// AssetResolver resolves a token contract address into its display symbol and
// decimal precision. The two underlying reads are independent and
// implementations may issue them concurrently; both must succeed or the
// resolution fails with ErrAssetResolutionFailed.
type AssetResolver interface {
	ResolveAsset(ctx context.Context, contractAddress string) (Asset, error)
}
