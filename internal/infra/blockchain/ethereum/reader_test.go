package ethereum

import (
	"encoding/json"
	"errors"
	"testing"

	jsonrpctest "github.com/sahilsutar/txledger/internal/pkg/transport/jsonrpc/mocks"
	"github.com/sahilsutar/txledger/internal/pkg/types"
	"github.com/sahilsutar/txledger/internal/txledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReceiptResponse_toReceipt(t *testing.T) {
	t.Run("converts ReceiptResponse to txledger.Receipt", func(t *testing.T) {
		resp := ReceiptResponse{
			TransactionHash: "0xabc123",
			From:            "0xfrom",
			To:              "0xto",
			Status:          types.Hex("0x1"),
			BlockNumber:     types.Hex("0x10"),
			Logs: []LogResponse{
				{Address: "0xtoken", Topics: []string{"0xt0", "0xt1", "0xt2"}, Data: "0x01"},
			},
		}

		expected := txledger.Receipt{
			TransactionHash: "0xabc123",
			From:            "0xfrom",
			To:              "0xto",
			Status:          types.Hex("0x1"),
			BlockNumber:     types.Hex("0x10"),
			Logs: []txledger.Log{
				{Address: "0xtoken", Topics: []string{"0xt0", "0xt1", "0xt2"}, Data: "0x01"},
			},
		}

		assert.Equal(t, expected, resp.toReceipt())
	})
}

func TestClient_TransactionReceipt(t *testing.T) {
	const hash = "0x3b198bfd5d2907285af009e9ae84a0ecd63677110d89d7e030251acb87f6487e"

	t.Run("returns receipt successfully", func(t *testing.T) {
		mockClient := new(jsonrpctest.Client)
		raw := json.RawMessage(`{
			"transactionHash": "` + hash + `",
			"from": "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			"to": "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
			"blockNumber": "0x10",
			"status": "0x1",
			"logs": []
		}`)

		mockClient.
			On("Fetch", mock.Anything, "eth_getTransactionReceipt", hash).
			Return(raw, nil)

		c := NewClient(mockClient)
		receipt, err := c.TransactionReceipt(t.Context(), hash)

		assert.NoError(t, err)
		assert.Equal(t, hash, receipt.TransactionHash)
		assert.Equal(t, types.Hex("0x10"), receipt.BlockNumber)
		assert.Equal(t, types.Hex("0x1"), receipt.Status)
		assert.Empty(t, receipt.Logs)

		mockClient.AssertExpectations(t)
	})

	t.Run("returns not mined for a null result", func(t *testing.T) {
		mockClient := new(jsonrpctest.Client)

		mockClient.
			On("Fetch", mock.Anything, "eth_getTransactionReceipt", hash).
			Return(json.RawMessage(`null`), nil)

		c := NewClient(mockClient)
		_, err := c.TransactionReceipt(t.Context(), hash)

		assert.ErrorIs(t, err, txledger.ErrTransactionNotMined)

		mockClient.AssertExpectations(t)
	})

	t.Run("returns error when fetch fails", func(t *testing.T) {
		mockClient := new(jsonrpctest.Client)

		mockClient.
			On("Fetch", mock.Anything, "eth_getTransactionReceipt", hash).
			Return(nil, errors.New("fetch error"))

		c := NewClient(mockClient)
		_, err := c.TransactionReceipt(t.Context(), hash)

		assert.Error(t, err)

		mockClient.AssertExpectations(t)
	})

	t.Run("returns error on invalid response", func(t *testing.T) {
		mockClient := new(jsonrpctest.Client)

		mockClient.
			On("Fetch", mock.Anything, "eth_getTransactionReceipt", hash).
			Return(json.RawMessage(`not-json`), nil)

		c := NewClient(mockClient)
		_, err := c.TransactionReceipt(t.Context(), hash)

		assert.Error(t, err)

		mockClient.AssertExpectations(t)
	})
}

func TestClient_TransactionByHash(t *testing.T) {
	const hash = "0x3b198bfd5d2907285af009e9ae84a0ecd63677110d89d7e030251acb87f6487e"

	t.Run("returns transaction body successfully", func(t *testing.T) {
		mockClient := new(jsonrpctest.Client)
		raw := json.RawMessage(`{
			"hash": "` + hash + `",
			"from": "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			"to": "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
			"input": "0x",
			"value": "0x14d1120d7b160000"
		}`)

		mockClient.
			On("Fetch", mock.Anything, "eth_getTransactionByHash", hash).
			Return(raw, nil)

		c := NewClient(mockClient)
		body, err := c.TransactionByHash(t.Context(), hash)

		assert.NoError(t, err)
		assert.Equal(t, hash, body.Hash)
		assert.Equal(t, "0x", body.Input)
		assert.Equal(t, types.Hex("0x14d1120d7b160000"), body.Value)

		mockClient.AssertExpectations(t)
	})

	t.Run("returns not mined for a null result", func(t *testing.T) {
		mockClient := new(jsonrpctest.Client)

		mockClient.
			On("Fetch", mock.Anything, "eth_getTransactionByHash", hash).
			Return(json.RawMessage(`null`), nil)

		c := NewClient(mockClient)
		_, err := c.TransactionByHash(t.Context(), hash)

		assert.ErrorIs(t, err, txledger.ErrTransactionNotMined)

		mockClient.AssertExpectations(t)
	})
}

func TestClient_BlockByNumber(t *testing.T) {
	t.Run("returns block header without transaction bodies", func(t *testing.T) {
		mockClient := new(jsonrpctest.Client)
		raw := json.RawMessage(`{
			"hash": "0xblockhash",
			"number": "0x10",
			"timestamp": "0x68b1a2c0"
		}`)

		mockClient.
			On("Fetch", mock.Anything, "eth_getBlockByNumber", types.Hex("0x10"), false).
			Return(raw, nil)

		c := NewClient(mockClient)
		header, err := c.BlockByNumber(t.Context(), types.Hex("0x10"))

		assert.NoError(t, err)
		assert.Equal(t, types.Hex("0x10"), header.Number)
		assert.Equal(t, types.Hex("0x68b1a2c0"), header.Timestamp)

		mockClient.AssertExpectations(t)
	})

	t.Run("returns error when fetch fails", func(t *testing.T) {
		mockClient := new(jsonrpctest.Client)

		mockClient.
			On("Fetch", mock.Anything, "eth_getBlockByNumber", types.Hex("0x10"), false).
			Return(nil, errors.New("fetch error"))

		c := NewClient(mockClient)
		_, err := c.BlockByNumber(t.Context(), types.Hex("0x10"))

		assert.Error(t, err)

		mockClient.AssertExpectations(t)
	})
}
