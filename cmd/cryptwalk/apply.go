package cryptwalk

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cryptwalk/cryptwalk/internal/audit"
	"github.com/cryptwalk/cryptwalk/internal/config"
	"github.com/cryptwalk/cryptwalk/internal/engine"
	"github.com/cryptwalk/cryptwalk/internal/keyhex"
	"github.com/cryptwalk/cryptwalk/internal/report"
	"github.com/cryptwalk/cryptwalk/internal/update"
)

var (
	flagPath      string
	flagKey       string
	flagKeyFile   string
	flagRecursive bool
	flagInclude   string
	flagExclude   string
	flagMaxBytes  int64
	flagBackup    bool
	flagAudit     bool
	flagText      bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Encrypt or decrypt files in place",
		Long:  "Apply XORs file contents with the RC4 keystream for the given key. Running apply twice with the same key restores the original bytes.",
		RunE:  runApply,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", "", "file or directory to process")
	cmd.Flags().StringVarP(&flagKey, "key", "k", "", "key as hex (e.g. '0x4b 0x8e 0x29 0x87 0x80' or '4b8e298780')")
	cmd.Flags().StringVar(&flagKeyFile, "key-file", "", "read the hex key from this file")
	cmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "recursively process files in directories")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (0 = no limit)")
	cmd.Flags().BoolVar(&flagBackup, "backup", false, "write <file>.bak before overwriting")
	cmd.Flags().BoolVar(&flagAudit, "audit", false, "append a run record to the audit log")
	cmd.Flags().BoolVar(&flagText, "text", false, "plain text columnar output instead of a table")
	_ = cmd.MarkFlagRequired("path")
}

func runApply(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)

	// Load configs: CLI > local > global. Local config sits at the
	// target root (or next to the target file).
	cfgDir := abs
	if st, err := os.Stat(abs); err == nil && !st.IsDir() {
		cfgDir = filepath.Dir(abs)
	}
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(cfgDir); err == nil {
		lcfg = c
	}

	key, err := resolveKey(lcfg, gcfg)
	if err != nil {
		return err
	}

	cfg := engine.Config{
		Root:         abs,
		Recursive:    flagRecursive,
		IncludeGlobs: pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:     pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		Threads:      pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		DryRun:       flagDryRun,
		Backup:       pickBool(flagBackup, lcfg.Backup, gcfg.Backup),
	}
	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor) || !report.StdoutIsTerminal()
	auditOn := pickBool(flagAudit, lcfg.Audit, gcfg.Audit)

	if !flagJSON {
		if !flagNoUpdateCheck {
			if latest, newer, _ := update.Check(version, false); newer && latest != "" {
				_, _ = fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'cryptwalk update' to upgrade\n", latest)
			}
		}
	}

	// Simple textual progress for larger trees
	total := engine.CountTargets(cfg)
	progressed := 0
	if total > 1 && !flagJSON {
		cfg.Progress = func() {
			progressed++
			if progressed%10 == 0 || progressed == total {
				pct := float64(progressed) / float64(total) * 100
				_, _ = fmt.Fprintf(os.Stderr, "\r[%d/%d] %.0f%%", progressed, total, pct)
			}
		}
	}

	res, err := engine.ProcessWithStats(cfg, key)
	if err != nil {
		return err
	}
	if total > 1 && !flagJSON {
		_, _ = fmt.Fprintln(os.Stderr)
	}

	opts := report.PrintOptions{
		NoColor:        noColor,
		Duration:       res.Duration,
		FilesProcessed: res.FilesProcessed,
		DryRun:         flagDryRun,
	}
	switch {
	case flagJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Files); err != nil {
			return err
		}
	case flagText:
		report.PrintText(os.Stdout, res.Files, opts)
	default:
		report.PrintTable(os.Stdout, res.Files, opts)
	}

	if auditOn && !flagDryRun {
		rec := audit.NewRunRecord(abs, res.Files, res.Duration)
		if err := audit.NewLog(abs).LogRun(rec); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "audit warning:", err)
		}
	}

	if len(res.Errors) > 0 {
		os.Exit(1)
	}
	return nil
}

// resolveKey picks the key source: --key, then --key-file, then a
// key_file from local/global config. The raw key bytes never come from
// config directly; only a path to them can.
func resolveKey(lcfg, gcfg config.FileConfig) ([]byte, error) {
	if flagKey != "" {
		return keyhex.Parse(flagKey)
	}
	if flagKeyFile != "" {
		return keyhex.ParseFile(flagKeyFile)
	}
	if p := pickString("", lcfg.KeyFile, gcfg.KeyFile); p != "" {
		return keyhex.ParseFile(p)
	}
	return nil, fmt.Errorf("no key given (use --key or --key-file)")
}
