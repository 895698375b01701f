package cryptwalk

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagNoColor       bool
	flagThreads       int
	flagDryRun        bool
	flagNoUpdateCheck bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the cryptwalk CLI.
var rootCmd = &cobra.Command{
	Use:           "cryptwalk",
	Short:         "RC4 file encryption",
	Long:          "Cryptwalk applies an RC4 keystream to files in place, one file or a whole tree at a time. The same command encrypts and decrypts.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the cryptwalk CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "show what would be processed without touching files")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
}
