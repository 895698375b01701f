package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cryptwalk/cryptwalk/internal/types"
)

func TestLogRunAndHistory(t *testing.T) {
	dir := t.TempDir()
	l := NewLog(dir)

	files := []types.FileResult{
		{Path: "a.txt", Label: types.LabelEncrypted, DigestBefore: "11", DigestAfter: "22"},
		{Path: "b.bin", Label: types.LabelDecrypted},
		{Path: "c.txt", Err: "boom"},
	}
	rec := NewRunRecord(dir, files, 42*time.Millisecond)
	if rec.Encrypted != 1 || rec.Decrypted != 1 || rec.Failed != 1 {
		t.Fatalf("bad counts: %+v", rec)
	}
	if err := l.LogRun(rec); err != nil {
		t.Fatal(err)
	}
	if err := l.LogRun(NewRunRecord(dir, nil, time.Millisecond)); err != nil {
		t.Fatal(err)
	}

	// 0600 on a log that names every touched file
	st, err := os.Stat(filepath.Join(dir, LogName))
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode().Perm() != 0600 {
		t.Fatalf("audit log perm = %v, want 0600", st.Mode().Perm())
	}

	hist, err := l.LoadHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(hist) != 2 {
		t.Fatalf("history length = %d, want 2", len(hist))
	}
	// newest first
	if hist[0].FilesProcessed != 0 || hist[1].FilesProcessed != 3 {
		t.Fatalf("history not newest-first: %+v", hist)
	}
	if hist[1].Files[0].Path != "a.txt" || hist[1].Files[0].DigestAfter != "22" {
		t.Fatalf("file summary lost: %+v", hist[1].Files)
	}
}

func TestLoadHistoryMissing(t *testing.T) {
	l := NewLog(t.TempDir())
	if _, err := l.LoadHistory(); err == nil {
		t.Fatal("expected error for missing log")
	}
}

func TestNewLogFileRoot(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	l := NewLog(p)
	if err := l.LogRun(RunRecord{}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, LogName)); err != nil {
		t.Fatalf("log should land next to the file: %v", err)
	}
}
