package ethereum

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/sahilsutar/txledger/internal/pkg/types"
	"github.com/sahilsutar/txledger/internal/txledger"
)

type (
	// LogResponse represents a single event log entry as returned by the
	// Ethereum JSON-RPC API.
	LogResponse struct {
		Address          string   `json:"address"`
		Topics           []string `json:"topics"`
		Data             string   `json:"data"`
		BlockNumber      string   `json:"blockNumber"`
		TransactionHash  string   `json:"transactionHash"`
		TransactionIndex string   `json:"transactionIndex"`
		BlockHash        string   `json:"blockHash"`
		LogIndex         string   `json:"logIndex"`
		Removed          bool     `json:"removed"`
	}

	// ReceiptResponse represents a transaction receipt as returned by the
	// Ethereum JSON-RPC API.
	ReceiptResponse struct {
		TransactionHash   string        `json:"transactionHash"`
		TransactionIndex  string        `json:"transactionIndex"`
		BlockHash         string        `json:"blockHash"`
		BlockNumber       types.Hex     `json:"blockNumber"`
		From              string        `json:"from"`
		To                string        `json:"to"`
		CumulativeGasUsed string        `json:"cumulativeGasUsed"`
		GasUsed           string        `json:"gasUsed"`
		ContractAddress   string        `json:"contractAddress"`
		Logs              []LogResponse `json:"logs"`
		LogsBloom         string        `json:"logsBloom"`
		Type              string        `json:"type"`
		EffectiveGasPrice string        `json:"effectiveGasPrice"`
		Status            types.Hex     `json:"status"`
	}

	// TransactionResponse represents a raw transaction object as returned by
	// the Ethereum JSON-RPC API.
	TransactionResponse struct {
		Hash             string    `json:"hash"`
		Nonce            string    `json:"nonce"`
		BlockHash        string    `json:"blockHash"`
		BlockNumber      string    `json:"blockNumber"`
		TransactionIndex string    `json:"transactionIndex"`
		From             string    `json:"from"`
		To               string    `json:"to"`
		Value            types.Hex `json:"value"`
		Gas              string    `json:"gas"`
		GasPrice         string    `json:"gasPrice"`
		Input            string    `json:"input"`
	}

	// BlockResponse represents the header fields of a block as returned by
	// the Ethereum JSON-RPC API. Transaction bodies are never requested.
	BlockResponse struct {
		Hash       string    `json:"hash"`
		ParentHash string    `json:"parentHash"`
		Number     types.Hex `json:"number"`
		Timestamp  types.Hex `json:"timestamp"`
		Miner      string    `json:"miner"`
		GasLimit   string    `json:"gasLimit"`
		GasUsed    string    `json:"gasUsed"`
	}
)

// toLog converts a LogResponse to a txledger.Log.
func (l LogResponse) toLog() txledger.Log {
	return txledger.Log{
		Address: l.Address,
		Topics:  l.Topics,
		Data:    l.Data,
	}
}

// toReceipt converts a ReceiptResponse to a txledger.Receipt.
func (r ReceiptResponse) toReceipt() txledger.Receipt {
	logs := make([]txledger.Log, len(r.Logs))
	for i, l := range r.Logs {
		logs[i] = l.toLog()
	}

	return txledger.Receipt{
		TransactionHash: r.TransactionHash,
		From:            r.From,
		To:              r.To,
		Status:          r.Status,
		BlockNumber:     r.BlockNumber,
		Logs:            logs,
	}
}

// toTransactionBody converts a TransactionResponse to a txledger.TransactionBody.
func (t TransactionResponse) toTransactionBody() txledger.TransactionBody {
	return txledger.TransactionBody{
		Hash:  t.Hash,
		From:  t.From,
		To:    t.To,
		Input: t.Input,
		Value: t.Value,
	}
}

// toBlockHeader converts a BlockResponse to a txledger.BlockHeader.
func (b BlockResponse) toBlockHeader() txledger.BlockHeader {
	return txledger.BlockHeader{
		Number:    b.Number,
		Timestamp: b.Timestamp,
	}
}

// isNullResult reports whether the JSON-RPC result payload is the null
// literal, which Ethereum nodes return for unknown hashes.
func isNullResult(data json.RawMessage) bool {
	return len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// TransactionReceipt implements txledger.ChainReader.
// It returns txledger.ErrTransactionNotMined when the node has no receipt for
// the hash.
func (c *client) TransactionReceipt(ctx context.Context, hash string) (txledger.Receipt, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionReceipt", hash)
	if err != nil {
		return txledger.Receipt{}, err
	}

	if isNullResult(data) {
		return txledger.Receipt{}, txledger.ErrTransactionNotMined
	}

	var res ReceiptResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return txledger.Receipt{}, err
	}

	return res.toReceipt(), nil
}

// TransactionByHash implements txledger.ChainReader. A null result maps to
// txledger.ErrTransactionNotMined, since a hash without a body is simply not
// known to the chain yet.
func (c *client) TransactionByHash(ctx context.Context, hash string) (txledger.TransactionBody, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionByHash", hash)
	if err != nil {
		return txledger.TransactionBody{}, err
	}

	if isNullResult(data) {
		return txledger.TransactionBody{}, txledger.ErrTransactionNotMined
	}

	var res TransactionResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return txledger.TransactionBody{}, err
	}

	return res.toTransactionBody(), nil
}

// BlockByNumber implements txledger.ChainReader. Only the header is
// requested; transaction bodies are left out of the response.
func (c *client) BlockByNumber(ctx context.Context, number types.Hex) (txledger.BlockHeader, error) {
	data, err := c.conn.Fetch(ctx, "eth_getBlockByNumber", number, false)
	if err != nil {
		return txledger.BlockHeader{}, err
	}

	var res BlockResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return txledger.BlockHeader{}, err
	}

	return res.toBlockHeader(), nil
}
