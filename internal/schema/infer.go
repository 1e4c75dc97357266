// Package schema derives a storage-oriented column schema from extracted
// records. Inference reads the first record only - a deliberate cheap
// heuristic, not a statistical scan of the full set.
package schema

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/atreyakamat/VistaraBI-sub002/domain/record"
)

var isoDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Infer derives a column schema from the first record of a sequence.
// Zero records yield an empty schema; inference never fails.
func Infer(records []record.Record) record.Schema {
	out := record.Schema{}
	if len(records) == 0 {
		return out
	}
	for key, value := range records[0] {
		out[key] = classify(value)
	}
	return out
}

// InferDocument is the markup-aware variant: nested mappings are flattened
// into underscore-joined compound keys before classification, and
// sequence-valued fields become opaque JSON columns rather than being
// recursed into.
func InferDocument(records []record.Record) record.Schema {
	out := record.Schema{}
	if len(records) == 0 {
		return out
	}
	for key, value := range record.Flatten(records[0]) {
		out[key] = classify(value)
	}
	return out
}

// classify maps one scalar to its storage type. The value's decoded Go type
// decides booleans: the string "true" stays TEXT.
func classify(v any) record.ColumnType {
	switch val := v.(type) {
	case nil:
		return record.TypeText
	case bool:
		return record.TypeBoolean
	case float64:
		return numericType(val)
	case float32:
		return numericType(float64(val))
	case int:
		return record.TypeInteger
	case int64:
		return record.TypeInteger
	case string:
		return classifyString(val)
	default:
		// Sequences and any other composite survive as opaque JSON.
		return record.TypeJSON
	}
}

func classifyString(s string) record.ColumnType {
	if s == "" {
		return record.TypeText
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return numericType(n)
	}
	if match := isoDatePattern.FindString(s); match != "" {
		if _, err := time.Parse("2006-01-02", match); err == nil {
			return record.TypeTimestamp
		}
	}
	return record.TypeText
}

func numericType(n float64) record.ColumnType {
	if n == math.Trunc(n) {
		return record.TypeInteger
	}
	return record.TypeDouble
}
