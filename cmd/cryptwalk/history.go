package cryptwalk

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cryptwalk/cryptwalk/internal/audit"
)

var flagHistoryPath string

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs from the audit log",
		RunE:  runHistory,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagHistoryPath, "path", "p", ".", "root whose audit log to read")
}

func runHistory(_ *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagHistoryPath)
	records, err := audit.NewLog(abs).LoadHistory()
	if err != nil {
		return fmt.Errorf("no audit history at %s (runs record only with --audit)", abs)
	}
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	for _, r := range records {
		fmt.Printf("%s  %s  %d files (%d encrypted, %d decrypted, %d failed) in %s\n",
			r.Timestamp.Format("2006-01-02 15:04:05"), r.RunID,
			r.FilesProcessed, r.Encrypted, r.Decrypted, r.Failed, r.Duration)
	}
	return nil
}
