package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/simenv/internal/cli"
	"github.com/arthur-debert/simenv/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SIMENV",
		Section: "1",
		Source:  "simenv " + version.Version,
		Manual:  "simenv manual",
	}

	if len(os.Args) > 1 {
		// one page per command into the given directory
		if err := os.MkdirAll(os.Args[1], 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		if err := doc.GenManTree(rootCmd, header, os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
