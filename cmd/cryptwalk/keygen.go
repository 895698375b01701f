package cryptwalk

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/cryptwalk/cryptwalk/pkg/rc4"
)

var (
	flagKeyBytes int
	flagKeyCopy  bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random key",
		Long:  "Keygen prints a fresh random key as hex, sized for the cipher's accepted range.",
		RunE:  runKeygen,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVarP(&flagKeyBytes, "bytes", "n", 16, "key length in bytes")
	cmd.Flags().BoolVar(&flagKeyCopy, "copy", false, "also copy the key to the clipboard")
}

func runKeygen(_ *cobra.Command, _ []string) error {
	if flagKeyBytes < rc4.MinKeyLen || flagKeyBytes > rc4.MaxKeyLen {
		return fmt.Errorf("key length %d out of range (%d-%d bytes)", flagKeyBytes, rc4.MinKeyLen, rc4.MaxKeyLen)
	}
	key := make([]byte, flagKeyBytes)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("entropy source: %w", err)
	}
	out := hex.EncodeToString(key)
	fmt.Println(out)
	if flagKeyCopy {
		if err := clipboard.WriteAll(out); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "clipboard warning:", err)
		}
	}
	return nil
}
