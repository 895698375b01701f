package rc4

import "fmt"

// Accepted key sizes, 40 to 2048 bits.
const (
	MinKeyLen = 5
	MaxKeyLen = 256
)

// KeySizeError reports a key whose byte length falls outside
// [MinKeyLen, MaxKeyLen].
type KeySizeError int

func (k KeySizeError) Error() string {
	return fmt.Sprintf("rc4: invalid key size %d (want %d-%d bytes)", int(k), MinKeyLen, MaxKeyLen)
}

// Cipher is the keystream generator state: a permutation of the 256
// byte values plus two cursors. The permutation is a bijection of
// {0..255} from construction onward; scheduling and generation mutate
// it through swaps only. A Cipher is owned by a single caller and is
// not safe for concurrent use; callers processing independent buffers
// in parallel must schedule one Cipher each.
type Cipher struct {
	s    [256]byte
	i, j byte
}

// NewCipher runs the key schedule and returns a cipher positioned at
// the start of the keystream. Identical keys yield identical ciphers.
// Keys shorter than MinKeyLen or longer than MaxKeyLen are rejected
// with a KeySizeError before any state is built.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) < MinKeyLen || len(key) > MaxKeyLen {
		return nil, KeySizeError(len(key))
	}
	c := new(Cipher)
	for n := range c.s {
		c.s[n] = byte(n)
	}
	// The schedule walks its own scratch cursor; the persistent c.j
	// stays zero until the first keystream byte is drawn.
	var j byte
	for n := 0; n < 256; n++ {
		j += c.s[n] + key[n%len(key)]
		c.s[n], c.s[j] = c.s[j], c.s[n]
	}
	return c, nil
}

// NextByte advances the generator one step and returns the next
// keystream byte. Cursor arithmetic wraps at 256 via native uint8
// overflow.
func (c *Cipher) NextByte() byte {
	c.i++
	c.j += c.s[c.i]
	c.s[c.i], c.s[c.j] = c.s[c.j], c.s[c.i]
	return c.s[c.s[c.i]+c.s[c.j]]
}

// XORKeyStream XORs buf in place with the next len(buf) keystream
// bytes, consuming exactly one generator step per byte. Encrypting
// and decrypting are the same operation: a second pass over the
// output with a freshly scheduled cipher for the same key restores
// the input.
func (c *Cipher) XORKeyStream(buf []byte) {
	for n := range buf {
		buf[n] ^= c.NextByte()
	}
}

// Apply schedules key, XORs buf in place once and discards the state.
// It is the one-shot form for single-buffer use and propagates the
// key schedule's KeySizeError unchanged; buf is untouched on error.
func Apply(key, buf []byte) error {
	c, err := NewCipher(key)
	if err != nil {
		return err
	}
	c.XORKeyStream(buf)
	return nil
}
