package main

import (
	"fmt"
	"os"

	"notion-roadmap/roadmap/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
