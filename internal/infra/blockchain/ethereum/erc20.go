package ethereum

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/sahilsutar/txledger/internal/txledger"
)

// Function selectors (first four bytes of the keccak-256 hash of the
// canonical signature) for the two ERC-20 views the resolver needs.
const (
	erc20SymbolSelector   = "0x95d89b41" // symbol()
	erc20DecimalsSelector = "0x313ce567" // decimals()
)

// abiWordSize is the width of a single ABI-encoded word in bytes.
const abiWordSize = 32

// ethCall performs a read-only contract call against the latest block and
// returns the hex-encoded return data.
func (c *client) ethCall(ctx context.Context, contractAddress, callData string) (string, error) {
	data, err := c.conn.Fetch(ctx, "eth_call", map[string]string{
		"to":   contractAddress,
		"data": callData,
	}, "latest")
	if err != nil {
		return "", err
	}

	var out string
	return out, json.Unmarshal(data, &out)
}

// ResolveAsset implements txledger.AssetResolver.
//
// The symbol and decimals reads are independent, so they are issued
// concurrently and joined before decoding. Either failure fails the whole
// resolution with txledger.ErrAssetResolutionFailed; the caller decides how
// to degrade.
func (c *client) ResolveAsset(ctx context.Context, contractAddress string) (txledger.Asset, error) {
	type callResult struct {
		data string
		err  error
	}

	symbolCh := make(chan callResult, 1)
	go func() {
		data, err := c.ethCall(ctx, contractAddress, erc20SymbolSelector)
		symbolCh <- callResult{data: data, err: err}
	}()

	decimalsData, decimalsErr := c.ethCall(ctx, contractAddress, erc20DecimalsSelector)
	symbolRes := <-symbolCh

	if err := errors.Join(symbolRes.err, decimalsErr); err != nil {
		return txledger.Asset{}, fmt.Errorf("%w: %v", txledger.ErrAssetResolutionFailed, err)
	}

	symbol, err := decodeStringReturn(symbolRes.data)
	if err != nil {
		return txledger.Asset{}, fmt.Errorf("%w: symbol: %v", txledger.ErrAssetResolutionFailed, err)
	}

	decimals, err := decodeUint8Return(decimalsData)
	if err != nil {
		return txledger.Asset{}, fmt.Errorf("%w: decimals: %v", txledger.ErrAssetResolutionFailed, err)
	}

	return txledger.Asset{
		Symbol:   symbol,
		Decimals: decimals,
	}, nil
}

// decodeUint8Return decodes a single ABI-encoded word into a uint8.
func decodeUint8Return(data string) (uint8, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(data, "0x"))
	if err != nil {
		return 0, err
	}

	if len(raw) == 0 {
		return 0, errors.New("empty return data")
	}

	v := new(big.Int).SetBytes(raw)
	if !v.IsUint64() || v.Uint64() > math.MaxUint8 {
		return 0, fmt.Errorf("value %s does not fit in uint8", v)
	}

	return uint8(v.Uint64()), nil
}

// decodeStringReturn decodes an ABI-encoded dynamic string (offset word,
// length word, then the bytes). A handful of older token contracts declare
// symbol() as bytes32 instead; a single right-padded word is accepted for
// those.
func decodeStringReturn(data string) (string, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(data, "0x"))
	if err != nil {
		return "", err
	}

	if len(raw) == abiWordSize {
		return string(bytes.TrimRight(raw, "\x00")), nil
	}

	if len(raw) < 2*abiWordSize {
		return "", errors.New("return data too short for a dynamic string")
	}

	offset := new(big.Int).SetBytes(raw[:abiWordSize])
	if !offset.IsInt64() || offset.Int64()+abiWordSize > int64(len(raw)) {
		return "", errors.New("string offset out of range")
	}
	start := offset.Int64()

	length := new(big.Int).SetBytes(raw[start : start+abiWordSize])
	if !length.IsInt64() || start+abiWordSize+length.Int64() > int64(len(raw)) {
		return "", errors.New("string length out of range")
	}

	return string(raw[start+abiWordSize : start+abiWordSize+length.Int64()]), nil
}
