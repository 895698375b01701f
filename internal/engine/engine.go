package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/cryptwalk/cryptwalk/internal/types"
	"github.com/cryptwalk/cryptwalk/pkg/rc4"
)

// Config controls which files are processed and how.
type Config struct {
	Root         string // file or directory
	Recursive    bool   // required when Root is a directory
	IncludeGlobs string // comma-separated doublestar patterns
	ExcludeGlobs string
	MaxBytes     int64 // skip files larger than this (0 = no limit)
	Threads      int   // worker count (0 = GOMAXPROCS)
	DryRun       bool  // select and label, but leave files untouched
	Backup       bool  // write <path>.bak before overwriting
	Progress     func()
}

// Result contains per-file outcomes and basic run statistics.
type Result struct {
	Files          []types.FileResult
	FilesProcessed int
	Duration       time.Duration
	Errors         []error
}

// Process runs a pass and returns only per-file results.
func Process(cfg Config, key []byte) ([]types.FileResult, error) {
	res, err := ProcessWithStats(cfg, key)
	if err != nil {
		return nil, err
	}
	return res.Files, nil
}

// ProcessWithStats applies the keystream to every selected file in
// place. The key is validated by the cipher's schedule before any file
// is opened, so a bad key never leaves a tree half-processed. Files
// are independent units: each gets a freshly scheduled cipher, which
// is what lets them run on parallel workers.
func ProcessWithStats(cfg Config, key []byte) (Result, error) {
	var result Result

	if _, err := rc4.NewCipher(key); err != nil {
		return result, err
	}

	paths, err := Targets(cfg)
	if err != nil {
		return result, err
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads > len(paths) && len(paths) > 0 {
		threads = len(paths)
	}

	started := time.Now()
	jobs := make(chan string)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				fr := processFile(cfg, key, p)
				mu.Lock()
				result.Files = append(result.Files, fr)
				result.FilesProcessed++
				if fr.Err != "" {
					result.Errors = append(result.Errors, fmt.Errorf("%s: %s", fr.Path, fr.Err))
				}
				if cfg.Progress != nil {
					cfg.Progress()
				}
				mu.Unlock()
			}
		}()
	}
	for _, p := range paths {
		jobs <- p
	}
	close(jobs)
	wg.Wait()

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})
	result.Duration = time.Since(started)
	return result, nil
}

// processFile reads path, applies one freshly keyed cipher pass in
// memory, and rewrites the file. Write and close errors are surfaced
// on the result rather than dropped.
func processFile(cfg Config, key []byte, path string) types.FileResult {
	fr := types.FileResult{Path: displayPath(cfg, path)}

	info, err := os.Stat(path)
	if err != nil {
		fr.Err = err.Error()
		return fr
	}
	fr.Size = info.Size()

	data, err := os.ReadFile(path)
	if err != nil {
		fr.Err = err.Error()
		return fr
	}

	fr.PrintableRatio = printableRatio(data)
	fr.Label = labelFor(fr.PrintableRatio)
	fr.DigestBefore = fmt.Sprintf("%016x", xxhash.Sum64(data))

	if cfg.DryRun {
		return fr
	}

	if cfg.Backup {
		if err := os.WriteFile(path+".bak", data, info.Mode().Perm()); err != nil {
			fr.Err = fmt.Sprintf("backup: %v", err)
			return fr
		}
	}

	if err := rc4.Apply(key, data); err != nil {
		fr.Err = err.Error()
		return fr
	}
	fr.DigestAfter = fmt.Sprintf("%016x", xxhash.Sum64(data))

	if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
		fr.Err = fmt.Sprintf("write: %v", err)
		return fr
	}
	return fr
}

func displayPath(cfg Config, path string) string {
	if rel, err := filepath.Rel(cfg.Root, path); err == nil && rel != "." {
		return rel
	}
	return path
}
