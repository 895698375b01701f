// Package core provides a small, stable facade over cryptwalk's
// internal engine for external integrations. It deliberately re-exports
// a narrow API surface so other tools can depend on a stable import
// path without reaching into internal implementation packages. Callers
// that only need the cipher itself should import pkg/rc4 directly.
//
// Example:
//
//	cfg := core.Config{Root: "./data", Recursive: true}
//	results, err := core.Process(cfg, key)
//	if err != nil { /* handle */ }
//	_ = core.MarshalResults(os.Stdout, results)
package core
