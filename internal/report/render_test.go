package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/cryptwalk/cryptwalk/internal/types"
)

func sample() []types.FileResult {
	return []types.FileResult{
		{Path: "b.txt", Label: types.LabelDecrypted, Size: 10, PrintableRatio: 0.1},
		{Path: "a.txt", Label: types.LabelEncrypted, Size: 20, PrintableRatio: 0.98, DigestAfter: "00aabbccddeeff11"},
		{Path: "c.txt", Err: "write: permission denied"},
	}
}

func TestPrintText(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, sample(), PrintOptions{NoColor: true, Duration: 12 * time.Millisecond, FilesProcessed: 3})
	out := buf.String()

	for _, want := range []string{"encrypted", "decrypted", "a.txt", "b.txt", "error", "permission denied", "3 files processed", "1 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// sorted by path: a before b
	if strings.Index(out, "a.txt") > strings.Index(out, "b.txt") {
		t.Error("results not sorted by path")
	}
}

func TestPrintTextDryRunFooter(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, nil, PrintOptions{NoColor: true, DryRun: true})
	if !strings.Contains(buf.String(), "dry run") {
		t.Fatalf("footer should mention dry run:\n%s", buf.String())
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sample(), PrintOptions{NoColor: true, FilesProcessed: 3})
	out := buf.String()
	for _, want := range []string{"a.txt", "encrypted", "00aabbccddeeff11", "0.98"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
