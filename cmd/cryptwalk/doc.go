// Package cryptwalk provides the command-line interface for the
// cryptwalk tool. It configures subcommands (apply, keygen, history,
// etc.), parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/cryptwalk/cryptwalk/cmd/cryptwalk"
//	func main() { cryptwalk.Execute() }
package cryptwalk
