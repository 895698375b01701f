package keyhex

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/cryptwalk/cryptwalk/pkg/rc4"
)

// separators users paste between key bytes
var stripSeparators = strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "", ",", "", ":", "", "-", "")

// Parse decodes a key written as hexadecimal text. Accepted forms:
// a contiguous hex string ("4b8e2987"), per-byte 0x prefixes
// ("0x4b 0x8e 0x29 0x87"), and space/comma/colon/dash separated pairs.
// The decoded length must be within the cipher's accepted key range.
func Parse(s string) ([]byte, error) {
	cleaned := stripSeparators.Replace(s)
	cleaned = strings.ReplaceAll(cleaned, "0X", "")
	cleaned = strings.ReplaceAll(cleaned, "0x", "")
	if cleaned == "" {
		return nil, fmt.Errorf("empty key")
	}
	if len(cleaned)%2 != 0 {
		return nil, fmt.Errorf("key has odd number of hex digits (%d)", len(cleaned))
	}
	key, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("key is not valid hex: %w", err)
	}
	if len(key) < rc4.MinKeyLen || len(key) > rc4.MaxKeyLen {
		return nil, rc4.KeySizeError(len(key))
	}
	return key, nil
}

// ParseFile reads a hex key from path. Surrounding whitespace is
// ignored so trailing newlines from editors do not break decoding.
func ParseFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	key, err := Parse(strings.TrimSpace(string(b)))
	if err != nil {
		return nil, fmt.Errorf("key file %s: %w", path, err)
	}
	return key, nil
}
