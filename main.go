package main

import "github.com/cryptwalk/cryptwalk/cmd/cryptwalk"

func main() { cryptwalk.Execute() }
