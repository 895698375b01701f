package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cryptwalk/cryptwalk/internal/types"
)

// LogName is the JSONL file appended at the processed root. The walker
// knows this name and never feeds it back into the cipher.
const LogName = ".cryptwalk_audit.jsonl"

// RunRecord is one engine run: when, where, how many files went which
// direction, and per-file digests so a run can be audited after the
// originals are unreadable.
type RunRecord struct {
	Timestamp      time.Time     `json:"timestamp"`
	RunID          string        `json:"run_id"`
	Root           string        `json:"root"`
	FilesProcessed int           `json:"files_processed"`
	Encrypted      int           `json:"encrypted"`
	Decrypted      int           `json:"decrypted"`
	Failed         int           `json:"failed"`
	Duration       string        `json:"duration"`
	Files          []FileSummary `json:"files,omitempty"`
}

// FileSummary is the per-file slice of a RunRecord.
type FileSummary struct {
	Path         string `json:"path"`
	Label        string `json:"label"`
	DigestBefore string `json:"digest_before,omitempty"`
	DigestAfter  string `json:"digest_after,omitempty"`
	Err          string `json:"error,omitempty"`
}

type Log struct {
	path string
}

// NewLog returns the audit log rooted at the directory containing
// root (or root itself when it is a directory).
func NewLog(root string) *Log {
	dir := root
	if st, err := os.Stat(root); err != nil || !st.IsDir() {
		dir = filepath.Dir(root)
	}
	return &Log{path: filepath.Join(dir, LogName)}
}

// LogRun appends one record. The log is owner-only: it names every
// file a key was applied to.
func (l *Log) LogRun(rec RunRecord) error {
	if rec.RunID == "" {
		rec.RunID = fmt.Sprintf("run_%d", time.Now().UnixNano())
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}
	return nil
}

// LoadHistory returns recorded runs, newest first. Malformed lines are
// skipped rather than failing the whole history.
func (l *Log) LoadHistory() ([]RunRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec RunRecord
		if err := dec.Decode(&rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// NewRunRecord summarizes an engine run for the log.
func NewRunRecord(root string, files []types.FileResult, duration time.Duration) RunRecord {
	rec := RunRecord{
		Timestamp:      time.Now(),
		Root:           root,
		FilesProcessed: len(files),
		Duration:       duration.String(),
	}
	for _, f := range files {
		switch {
		case f.Err != "":
			rec.Failed++
		case f.Label == types.LabelEncrypted:
			rec.Encrypted++
		default:
			rec.Decrypted++
		}
		rec.Files = append(rec.Files, FileSummary{
			Path:         f.Path,
			Label:        string(f.Label),
			DigestBefore: f.DigestBefore,
			DigestAfter:  f.DigestAfter,
			Err:          f.Err,
		})
	}
	return rec
}
