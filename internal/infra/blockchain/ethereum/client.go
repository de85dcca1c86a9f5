// Package ethereum implements the ledger's chain reader and asset resolver
// for Ethereum-compatible nodes using a JSON-RPC client.
package ethereum

import (
	"github.com/sahilsutar/txledger/internal/pkg/transport/jsonrpc"
	"github.com/sahilsutar/txledger/internal/txledger"
)

// client talks to an Ethereum-compatible node via JSON-RPC. It implements
// both chain-facing ports of the ledger: transaction/receipt/block reads and
// ERC-20 symbol/decimals resolution.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to interact with the node
}

// Compile-time interface checks.
var (
	_ txledger.ChainReader   = (*client)(nil)
	_ txledger.AssetResolver = (*client)(nil)
)

// NewClient creates a new Ethereum client using the provided JSON-RPC
// connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
