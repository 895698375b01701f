package engine

import "github.com/cryptwalk/cryptwalk/internal/types"

// printableThreshold splits plaintext from ciphertext: text files sit
// well above it, keystream output almost never reaches it.
const printableThreshold = 0.7

func isPrintableASCII(b byte) bool {
	return (b >= 0x21 && b <= 0x7e) || b == ' ' || b == '\n' || b == '\r'
}

// printableRatio is the share of printable ASCII bytes in b.
// An empty input counts as fully printable.
func printableRatio(b []byte) float64 {
	if len(b) == 0 {
		return 1
	}
	n := 0
	for _, c := range b {
		if isPrintableASCII(c) {
			n++
		}
	}
	return float64(n) / float64(len(b))
}

// labelFor names the run direction the ratio implies: mostly-printable
// input was plaintext going in (encrypting), the rest was ciphertext
// coming back (decrypting).
func labelFor(ratio float64) types.Label {
	if ratio > printableThreshold {
		return types.LabelEncrypted
	}
	return types.LabelDecrypted
}
