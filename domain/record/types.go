// Package record defines the flat record contract shared by every extractor
// and by schema inference: a ParsedDocument is an ordered sequence of flat
// records plus format-specific provenance metadata.
package record

// Record is one flat row of extracted data: column name to scalar value.
// Values are string, float64, bool or nil; absent keys read as nil downstream.
type Record map[string]any

// Metadata carries format-specific provenance (sheet names, page count,
// table names). Informational only - nothing downstream depends on it.
type Metadata map[string]any

// ParsedDocument is the full output of one extraction call. It is created
// once per call, owned by the caller, and never mutated by the pipeline.
type ParsedDocument struct {
	Records  []Record `json:"records"`
	Metadata Metadata `json:"metadata"`
}

// ColumnType is the storage type tag assigned to a column by inference.
type ColumnType string

const (
	TypeText      ColumnType = "TEXT"
	TypeInteger   ColumnType = "INTEGER"
	TypeDouble    ColumnType = "DOUBLE"
	TypeBoolean   ColumnType = "BOOLEAN"
	TypeTimestamp ColumnType = "TIMESTAMP"
	TypeJSON      ColumnType = "JSON"
)

// Schema maps column names to storage type tags. Each file gets its own
// independently inferred schema; there is no canonical schema across files.
type Schema map[string]ColumnType
