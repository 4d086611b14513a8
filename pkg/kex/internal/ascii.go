package internal

import (
	"github.com/mr-tron/base58"
)

// ASCIIEncode encodes the given bytes as base58 text.
func ASCIIEncode(b []byte) []byte {
	return []byte(base58.Encode(b))
}

// ASCIIDecode decodes the given base58 text.
func ASCIIDecode(text []byte) ([]byte, error) {
	return base58.Decode(string(text))
}
