package cryptwalk

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptwalk/cryptwalk/internal/keyhex"
	"github.com/cryptwalk/cryptwalk/pkg/rc4"
)

var (
	flagStreamKey   string
	flagStreamCount int
)

func init() {
	cmd := &cobra.Command{
		Use:   "keystream",
		Short: "Dump raw keystream bytes for a key",
		Long:  "Keystream prints the first N keystream bytes for a key as hex, useful for checking a key against published vectors.",
		RunE:  runKeystream,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagStreamKey, "key", "k", "", "key as hex")
	cmd.Flags().IntVarP(&flagStreamCount, "count", "n", 16, "number of keystream bytes")
	_ = cmd.MarkFlagRequired("key")
}

func runKeystream(_ *cobra.Command, _ []string) error {
	key, err := keyhex.Parse(flagStreamKey)
	if err != nil {
		return err
	}
	if flagStreamCount <= 0 {
		return fmt.Errorf("count must be positive")
	}
	// XOR over zeros leaves the bare keystream
	buf := make([]byte, flagStreamCount)
	if err := rc4.Apply(key, buf); err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(buf))
	return nil
}
