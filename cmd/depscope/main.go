// Package main is the entry point for the depscope CLI tool.
package main

import (
	"github.com/depscope/depscope/internal/cmd"
)

func main() {
	cmd.Execute()
}
