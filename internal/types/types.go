package types

// Label names the direction the printable-ratio heuristic inferred for
// a processed file: mostly-printable input was plaintext being
// encrypted, anything else was ciphertext being decrypted.
type Label string

const (
	LabelEncrypted Label = "encrypted"
	LabelDecrypted Label = "decrypted"
)

// FileResult describes one file processed by the engine, including the
// inferred direction, the printable ratio that drove it, and content
// digests from before and after the keystream pass.
type FileResult struct {
	Path           string  `json:"path"`
	Label          Label   `json:"label"`
	Size           int64   `json:"size"`
	PrintableRatio float64 `json:"printable_ratio"`
	DigestBefore   string  `json:"digest_before"` // xxhash64 hex of input bytes
	DigestAfter    string  `json:"digest_after"`  // xxhash64 hex of output bytes
	Err            string  `json:"error,omitempty"`
}
