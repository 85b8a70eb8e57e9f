package serial

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

// DecodeHexPayload converts hexadecimal text into raw bytes. All whitespace
// is stripped first, then consecutive two-character groups are decoded as
// base-16 byte values, so "48 65 6C 6C 6F" and "48656C6C6F" are equivalent.
// An odd number of hex digits or a non-hex character yields an error
// wrapping ErrInvalidHex. The conversion is backend-agnostic: real and
// virtual writes share it.
func DecodeHexPayload(s string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if len(cleaned)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of hex digits", ErrInvalidHex)
	}
	b, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return b, nil
}
