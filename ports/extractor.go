// Package ports defines the interfaces between the extraction core and its
// callers (HTTP surface, batch runner, CLI).
package ports

import (
	"context"
	"io"

	"github.com/atreyakamat/VistaraBI-sub002/domain/record"
)

// Extractor turns one raw document into an ordered sequence of flat records
// plus provenance metadata. Implementations are pure single-pass functions:
// no state crosses calls, and concurrent calls on distinct inputs are safe.
// On failure no partial ParsedDocument is returned.
type Extractor interface {
	Extract(ctx context.Context, r io.Reader) (*record.ParsedDocument, error)
}

// SchemaInferrer derives a storage schema from a record sequence. Usable
// standalone on any records, not only an extractor's own output.
type SchemaInferrer interface {
	Infer(records []record.Record) record.Schema
}
