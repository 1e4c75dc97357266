package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/atreyakamat/VistaraBI-sub002/domain/record"
	"github.com/atreyakamat/VistaraBI-sub002/ports"
)

var _ ports.Extractor = (*JSONExtractor)(nil)

// JSONExtractor decodes a whole JSON document. A top-level array yields one
// record per element; any other top-level value becomes the sole record.
type JSONExtractor struct{}

// NewJSON creates a JSON extractor.
func NewJSON() *JSONExtractor { return &JSONExtractor{} }

// Extract decodes and flattens the document into records.
func (e *JSONExtractor) Extract(ctx context.Context, r io.Reader) (*record.ParsedDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, unreadable(err, "JSON")
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, malformed(err, "JSON")
	}

	topLevelType := "object"
	var records []record.Record
	if elements, isArray := decoded.([]any); isArray {
		topLevelType = "array"
		records = make([]record.Record, 0, len(elements))
		for _, el := range elements {
			records = append(records, record.FromValue(el))
		}
	} else {
		records = []record.Record{record.FromValue(decoded)}
	}

	return &record.ParsedDocument{
		Records: records,
		Metadata: record.Metadata{
			"topLevelType": topLevelType,
			"recordCount":  len(records),
		},
	}, nil
}
