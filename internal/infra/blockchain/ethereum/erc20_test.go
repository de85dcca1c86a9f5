package ethereum

import (
	"encoding/json"
	"errors"
	"testing"

	jsonrpctest "github.com/sahilsutar/txledger/internal/pkg/transport/jsonrpc/mocks"
	"github.com/sahilsutar/txledger/internal/txledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTokenContract = "0x55d398326f99059ff775485246999027b3197955"

// ABI return payloads captured from real ERC-20 contracts.
const (
	// symbol() returning the dynamic string "USDT".
	symbolReturnDynamic = `"0x0000000000000000000000000000000000000000000000000000000000000020` +
		`0000000000000000000000000000000000000000000000000000000000000004` +
		`5553445400000000000000000000000000000000000000000000000000000000"`

	// symbol() returning the bytes32 value "MKR" on a pre-dynamic-string contract.
	symbolReturnBytes32 = `"0x4d4b520000000000000000000000000000000000000000000000000000000000"`

	// decimals() returning 6.
	decimalsReturn = `"0x0000000000000000000000000000000000000000000000000000000000000006"`
)

func symbolCallArgs() map[string]string {
	return map[string]string{
		"to":   testTokenContract,
		"data": erc20SymbolSelector,
	}
}

func decimalsCallArgs() map[string]string {
	return map[string]string{
		"to":   testTokenContract,
		"data": erc20DecimalsSelector,
	}
}

func TestClient_ResolveAsset(t *testing.T) {
	t.Run("resolves symbol and decimals successfully", func(t *testing.T) {
		mockClient := new(jsonrpctest.Client)

		mockClient.
			On("Fetch", mock.Anything, "eth_call", symbolCallArgs(), "latest").
			Return(json.RawMessage(symbolReturnDynamic), nil)
		mockClient.
			On("Fetch", mock.Anything, "eth_call", decimalsCallArgs(), "latest").
			Return(json.RawMessage(decimalsReturn), nil)

		c := NewClient(mockClient)
		asset, err := c.ResolveAsset(t.Context(), testTokenContract)

		require.NoError(t, err)
		assert.Equal(t, txledger.Asset{Symbol: "USDT", Decimals: 6}, asset)

		mockClient.AssertExpectations(t)
	})

	t.Run("resolves a bytes32 symbol from an older contract", func(t *testing.T) {
		mockClient := new(jsonrpctest.Client)

		mockClient.
			On("Fetch", mock.Anything, "eth_call", symbolCallArgs(), "latest").
			Return(json.RawMessage(symbolReturnBytes32), nil)
		mockClient.
			On("Fetch", mock.Anything, "eth_call", decimalsCallArgs(), "latest").
			Return(json.RawMessage(decimalsReturn), nil)

		c := NewClient(mockClient)
		asset, err := c.ResolveAsset(t.Context(), testTokenContract)

		require.NoError(t, err)
		assert.Equal(t, "MKR", asset.Symbol)

		mockClient.AssertExpectations(t)
	})

	t.Run("fails resolution when the symbol call fails", func(t *testing.T) {
		mockClient := new(jsonrpctest.Client)

		mockClient.
			On("Fetch", mock.Anything, "eth_call", symbolCallArgs(), "latest").
			Return(nil, errors.New("execution reverted"))
		mockClient.
			On("Fetch", mock.Anything, "eth_call", decimalsCallArgs(), "latest").
			Return(json.RawMessage(decimalsReturn), nil)

		c := NewClient(mockClient)
		_, err := c.ResolveAsset(t.Context(), testTokenContract)

		assert.ErrorIs(t, err, txledger.ErrAssetResolutionFailed)

		mockClient.AssertExpectations(t)
	})

	t.Run("fails resolution when the decimals call fails", func(t *testing.T) {
		mockClient := new(jsonrpctest.Client)

		mockClient.
			On("Fetch", mock.Anything, "eth_call", symbolCallArgs(), "latest").
			Return(json.RawMessage(symbolReturnDynamic), nil)
		mockClient.
			On("Fetch", mock.Anything, "eth_call", decimalsCallArgs(), "latest").
			Return(nil, errors.New("execution reverted"))

		c := NewClient(mockClient)
		_, err := c.ResolveAsset(t.Context(), testTokenContract)

		assert.ErrorIs(t, err, txledger.ErrAssetResolutionFailed)

		mockClient.AssertExpectations(t)
	})

	t.Run("fails resolution when decimals does not fit in uint8", func(t *testing.T) {
		mockClient := new(jsonrpctest.Client)

		mockClient.
			On("Fetch", mock.Anything, "eth_call", symbolCallArgs(), "latest").
			Return(json.RawMessage(symbolReturnDynamic), nil)
		mockClient.
			On("Fetch", mock.Anything, "eth_call", decimalsCallArgs(), "latest").
			Return(json.RawMessage(`"0x0000000000000000000000000000000000000000000000000000000000000100"`), nil)

		c := NewClient(mockClient)
		_, err := c.ResolveAsset(t.Context(), testTokenContract)

		assert.ErrorIs(t, err, txledger.ErrAssetResolutionFailed)

		mockClient.AssertExpectations(t)
	})
}

func TestDecodeStringReturn(t *testing.T) {
	t.Run("decodes a dynamic string", func(t *testing.T) {
		data := "0x" +
			"0000000000000000000000000000000000000000000000000000000000000020" +
			"0000000000000000000000000000000000000000000000000000000000000004" +
			"5553445400000000000000000000000000000000000000000000000000000000"

		s, err := decodeStringReturn(data)

		require.NoError(t, err)
		assert.Equal(t, "USDT", s)
	})

	t.Run("decodes a right padded bytes32 word", func(t *testing.T) {
		s, err := decodeStringReturn("0x4d4b520000000000000000000000000000000000000000000000000000000000")

		require.NoError(t, err)
		assert.Equal(t, "MKR", s)
	})

	t.Run("rejects data too short for a dynamic string", func(t *testing.T) {
		_, err := decodeStringReturn("0x1234")

		assert.Error(t, err)
	})

	t.Run("rejects an out of range offset", func(t *testing.T) {
		data := "0x" +
			"00000000000000000000000000000000000000000000000000000000000000ff" +
			"0000000000000000000000000000000000000000000000000000000000000004"

		_, err := decodeStringReturn(data)

		assert.Error(t, err)
	})

	t.Run("rejects an out of range length", func(t *testing.T) {
		data := "0x" +
			"0000000000000000000000000000000000000000000000000000000000000020" +
			"00000000000000000000000000000000000000000000000000000000000000ff"

		_, err := decodeStringReturn(data)

		assert.Error(t, err)
	})
}

func TestDecodeUint8Return(t *testing.T) {
	t.Run("decodes a single word value", func(t *testing.T) {
		v, err := decodeUint8Return("0x0000000000000000000000000000000000000000000000000000000000000012")

		require.NoError(t, err)
		assert.Equal(t, uint8(18), v)
	})

	t.Run("rejects a value wider than uint8", func(t *testing.T) {
		_, err := decodeUint8Return("0x0000000000000000000000000000000000000000000000000000000000000100")

		assert.Error(t, err)
	})

	t.Run("rejects empty return data", func(t *testing.T) {
		_, err := decodeUint8Return("0x")

		assert.Error(t, err)
	})

	t.Run("rejects malformed hex", func(t *testing.T) {
		_, err := decodeUint8Return("0xzz")

		assert.Error(t, err)
	})
}
