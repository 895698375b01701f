package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// names the walker never feeds back into the cipher
const (
	backupSuffix = ".bak"
	auditLogName = ".cryptwalk_audit.jsonl"
)

var skipConfigNames = map[string]bool{
	".cryptwalk.yml":  true,
	".cryptwalk.yaml": true,
	"cryptwalk.yml":   true,
	"cryptwalk.yaml":  true,
}

// Targets resolves cfg.Root to the list of files a run will touch.
// A regular file is returned as-is (globs do not apply; the user named
// it explicitly). A directory requires Recursive and is walked,
// keeping regular files that pass the include/exclude globs and the
// size gate. Backups, the audit log, and config files are skipped so a
// second run cannot eat the tool's own artifacts.
func Targets(cfg Config) ([]string, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%s: not a regular file", cfg.Root)
		}
		return []string{cfg.Root}, nil
	}
	if !cfg.Recursive {
		return nil, fmt.Errorf("%s is a directory (use --recursive)", cfg.Root)
	}

	var out []string
	err = filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		name := d.Name()
		if strings.HasSuffix(name, backupSuffix) || name == auditLogName || skipConfigNames[name] {
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if cfg.MaxBytes > 0 {
			info, _ := d.Info()
			if info != nil && info.Size() > cfg.MaxBytes {
				return nil
			}
		}
		out = append(out, p)
		return nil
	})
	return out, err
}

// CountTargets reports how many files a run would touch, for progress
// display. It mirrors the selection in Targets without reading content.
func CountTargets(cfg Config) int {
	paths, err := Targets(cfg)
	if err != nil {
		return 0
	}
	return len(paths)
}

func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
			out = append(out, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
