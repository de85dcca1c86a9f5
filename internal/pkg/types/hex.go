package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Hex represents a hexadecimal-encoded quantity as a string (e.g., "0x1a"),
// the way Ethereum JSON-RPC encodes block numbers, timestamps, and values.
// It provides validation, JSON marshaling/unmarshaling, and conversion to
// int64 or big.Int for quantities wider than 64 bits.
type Hex string

// HexFromString validates the input string and returns a Hex value if valid.
func HexFromString(s string) (Hex, error) {
	if err := validateHex(s); err != nil {
		return "", err
	}
	return Hex(s), nil
}

// HexFromInt encodes n as a Hex quantity.
func HexFromInt(n int64) Hex {
	return Hex(fmt.Sprintf("0x%x", n))
}

// validateHex checks whether a string is a valid hexadecimal quantity starting with "0x" or "0X".
// Quantities of arbitrary width are accepted, since token amounts routinely exceed 64 bits.
func validateHex(s string) error {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return fmt.Errorf("hex string must start with 0x")
	}

	if _, ok := new(big.Int).SetString(s[2:], 16); !ok {
		return fmt.Errorf("invalid hexadecimal value: %q", s)
	}

	return nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if err := validateHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// Int returns the decoded int64 value from the hexadecimal string.
// If parsing fails or the quantity does not fit in int64, it returns zero.
func (h Hex) Int() int64 {
	if len(h) < 2 {
		return 0
	}
	v, _ := strconv.ParseInt(string(h)[2:], 16, 64)
	return v
}

// BigInt returns the decoded arbitrary-width value from the hexadecimal string.
// If parsing fails, it returns zero.
func (h Hex) BigInt() *big.Int {
	v := new(big.Int)
	if len(h) >= 2 {
		v.SetString(string(h)[2:], 16)
	}
	return v
}
