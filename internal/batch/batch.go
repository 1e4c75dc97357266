// Package batch fans independent extraction calls out over a bounded worker
// group. Extraction is stateless, so files run concurrently with no shared
// mutable state; each invocation owns its input handle for its duration.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/atreyakamat/VistaraBI-sub002/adapters/extract"
	"github.com/atreyakamat/VistaraBI-sub002/domain/record"
	"github.com/atreyakamat/VistaraBI-sub002/internal/schema"
)

// Result is one file's extraction outcome. Err is per-file: callers decide
// whether one failure fails the whole batch or is reported per-file.
type Result struct {
	Path     string
	Format   extract.Format
	Document *record.ParsedDocument
	Schema   record.Schema
	Err      error
}

// ExtractAll extracts every path with at most concurrency files in flight
// (<=0 means one per file). Results are returned in input order; tabular
// documents carry an inferred schema.
func ExtractAll(ctx context.Context, paths []string, concurrency int) []Result {
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, path := range paths {
		g.Go(func() error {
			res := Result{Path: path}
			res.Document, res.Format, res.Err = extract.FromFile(ctx, path)
			if res.Err == nil && extract.Tabular(res.Format) {
				res.Schema = schema.Infer(res.Document.Records)
			}
			results[i] = res
			return nil
		})
	}

	// Errors are carried per-result, so the group itself never fails.
	_ = g.Wait()
	return results
}
