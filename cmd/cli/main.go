// Command cli extracts one or more files and prints records, metadata and
// the inferred schema as JSON on stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/atreyakamat/VistaraBI-sub002/internal/batch"
)

func main() {
	concurrency := flag.Int("c", 4, "maximum files extracted in parallel")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: cli [-c n] <file> [file...]")
		os.Exit(2)
	}

	results := batch.ExtractAll(context.Background(), paths, *concurrency)

	failed := false
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
			failed = true
			continue
		}
		out := map[string]any{
			"path":     res.Path,
			"format":   res.Format,
			"records":  res.Document.Records,
			"metadata": res.Document.Metadata,
		}
		if res.Schema != nil {
			out["schema"] = res.Schema
		}
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
