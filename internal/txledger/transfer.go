package txledger

import (
	"math/big"
	"strings"
)

// transferEventTopic is the keccak-256 hash of the canonical ERC-20
// "Transfer(address,address,uint256)" event signature.
const transferEventTopic = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"

// addressHexLength is the length of an address without the 0x prefix.
const addressHexLength = 40

// transferEvent is a decoded ERC-20 Transfer log.
type transferEvent struct {
	From     string   // Indexed sender address
	To       string   // Indexed beneficiary address
	RawValue *big.Int // Unscaled transferred value
}

// findTransferLog scans the receipt's logs in their given order and returns
// the first entry carrying the ERC-20 Transfer signature with both indexed
// address topics. When a transaction emits several Transfer events (fee-on-
// transfer tokens, multi-leg swaps) only this first one is captured, so the
// ledger records the primary transfer and nothing else.
func findTransferLog(receipt Receipt) (Log, bool) {
	for _, entry := range receipt.Logs {
		if len(entry.Topics) >= 3 && strings.EqualFold(entry.Topics[0], transferEventTopic) {
			return entry, true
		}
	}

	return Log{}, false
}

// decodeTransferLog extracts the typed fields from a Transfer log. It must
// only be called on logs pre-filtered by findTransferLog; decoding an
// arbitrary log is undefined.
//
// The two address arguments are indexed, so they arrive left-padded to 32
// bytes in Topics[1] and Topics[2]; the value is the single word in Data.
func decodeTransferLog(entry Log) transferEvent {
	value := new(big.Int)
	if data := strings.TrimPrefix(entry.Data, "0x"); data != "" {
		value.SetString(data, 16)
	}

	return transferEvent{
		From:     addressFromTopic(entry.Topics[1]),
		To:       addressFromTopic(entry.Topics[2]),
		RawValue: value,
	}
}

// addressFromTopic recovers an address from a 32-byte indexed topic by taking
// its last 20 bytes.
func addressFromTopic(topic string) string {
	hexPart := strings.TrimPrefix(strings.TrimPrefix(topic, "0x"), "0X")
	if len(hexPart) < addressHexLength {
		return ""
	}

	return "0x" + hexPart[len(hexPart)-addressHexLength:]
}
