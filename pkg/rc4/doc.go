// Package rc4 implements the RC4 stream cipher for cryptwalk's file
// encryption engine. RC4 has well-known statistical biases and is kept
// here for compatibility and instruction, not for protecting new data;
// there is no authentication or integrity checking, only keystream XOR.
//
// Example:
//
//	c, err := rc4.NewCipher(key)
//	if err != nil { /* handle */ }
//	c.XORKeyStream(buf) // buf is now ciphertext, c has advanced
//
// or one-shot:
//
//	_ = rc4.Apply(key, buf)
package rc4
