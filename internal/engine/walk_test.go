package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		p := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func relTargets(t *testing.T, cfg Config) map[string]bool {
	t.Helper()
	paths, err := Targets(cfg)
	if err != nil {
		t.Fatalf("Targets: %v", err)
	}
	out := map[string]bool{}
	for _, p := range paths {
		rel, _ := filepath.Rel(cfg.Root, p)
		out[filepath.ToSlash(rel)] = true
	}
	return out
}

func TestTargetsSingleFile(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.txt": "hi"})
	p := filepath.Join(dir, "a.txt")

	paths, err := Targets(Config{Root: p})
	if err != nil {
		t.Fatalf("Targets: %v", err)
	}
	if len(paths) != 1 || paths[0] != p {
		t.Fatalf("unexpected targets: %v", paths)
	}
}

func TestTargetsDirectoryRequiresRecursive(t *testing.T) {
	dir := t.TempDir()
	if _, err := Targets(Config{Root: dir}); err == nil {
		t.Fatal("expected error for directory without Recursive")
	}
}

func TestTargetsWalkFilters(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.txt":                  "aaa",
		"sub/b.txt":              "bbb",
		"sub/c.log":              "ccc",
		"d.txt.bak":              "old",
		".cryptwalk_audit.jsonl": "{}",
		".cryptwalk.yml":         "backup: true",
	})

	got := relTargets(t, Config{Root: dir, Recursive: true})
	for _, want := range []string{"a.txt", "sub/b.txt", "sub/c.log"} {
		if !got[want] {
			t.Errorf("missing target %s (got %v)", want, got)
		}
	}
	for _, skip := range []string{"d.txt.bak", ".cryptwalk_audit.jsonl", ".cryptwalk.yml"} {
		if got[skip] {
			t.Errorf("%s should be skipped", skip)
		}
	}
}

func TestTargetsGlobs(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.txt":     "aaa",
		"sub/b.txt": "bbb",
		"sub/c.log": "ccc",
	})

	got := relTargets(t, Config{Root: dir, Recursive: true, IncludeGlobs: "**/*.txt"})
	if !got["a.txt"] || !got["sub/b.txt"] || got["sub/c.log"] {
		t.Fatalf("include glob mismatch: %v", got)
	}

	got = relTargets(t, Config{Root: dir, Recursive: true, ExcludeGlobs: "*.log"})
	if !got["a.txt"] || got["sub/c.log"] {
		t.Fatalf("exclude glob mismatch: %v", got)
	}
}

func TestTargetsMaxBytes(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"small.txt": "abc",
		"big.txt":   "abcdefghijklmnopqrstuvwxyz",
	})
	got := relTargets(t, Config{Root: dir, Recursive: true, MaxBytes: 10})
	if !got["small.txt"] || got["big.txt"] {
		t.Fatalf("size gate mismatch: %v", got)
	}
}

func TestCountTargets(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.txt": "a", "b.txt": "b"})
	if n := CountTargets(Config{Root: dir, Recursive: true}); n != 2 {
		t.Fatalf("CountTargets = %d, want 2", n)
	}
}
