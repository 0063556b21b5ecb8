// Package main is the entry point for the verdict CLI.
package main

import "verdict.dev/pkg/verdict/cmd"

func main() {
	cmd.Execute()
}
