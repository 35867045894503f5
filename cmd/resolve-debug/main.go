package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/importlens/importlens-lsp/internal/resolver"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: go run cmd/resolve-debug/main.go <workspace_root> <from_file> <specifier>")
		os.Exit(1)
	}

	root, err := filepath.Abs(os.Args[1])
	if err != nil {
		fmt.Printf("bad root: %v\n", err)
		os.Exit(1)
	}
	fromFile, err := filepath.Abs(os.Args[2])
	if err != nil {
		fmt.Printf("bad file: %v\n", err)
		os.Exit(1)
	}
	specifier := os.Args[3]

	res := resolver.New(resolver.Options{})
	result := res.Resolve(context.Background(), resolver.Request{
		Specifier: specifier,
		FromFile:  fromFile,
		Root:      root,
	})

	switch result.Status {
	case resolver.StatusFound:
		fmt.Printf("found: %s\n", result.Path)
	case resolver.StatusNotFound:
		fmt.Println("not found, probed:")
		for _, candidate := range result.Candidates {
			fmt.Printf("  %s\n", candidate)
		}
	case resolver.StatusRejected:
		fmt.Printf("rejected: %s\n", result.Reason)
	}

	for _, tierTable := range res.DiscoverAliases(filepath.Dir(fromFile), root) {
		fmt.Printf("\n[%s] %s\n", tierTable.Tier, tierTable.ConfigPath)
		for _, entry := range tierTable.Entries {
			fmt.Printf("  %s -> %s\n", entry.Pattern, entry.TargetDir)
		}
	}
}
