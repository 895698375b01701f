package core

import (
	"github.com/cryptwalk/cryptwalk/internal/engine"
	"github.com/cryptwalk/cryptwalk/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type FileResult = types.FileResult
type Result = engine.Result

// Process is the stable entrypoint for other programs: it applies the
// keystream for key to every file cfg selects, in place.
func Process(cfg Config, key []byte) ([]FileResult, error) {
	return engine.Process(cfg, key)
}

// ProcessWithStats is Process plus run statistics and per-file errors.
func ProcessWithStats(cfg Config, key []byte) (Result, error) {
	return engine.ProcessWithStats(cfg, key)
}

// CountTargets reports how many files cfg would select without
// touching any of them.
func CountTargets(cfg Config) int { return engine.CountTargets(cfg) }
