// Package profile computes per-column descriptive statistics over extracted
// records, using the schema inferred for the document to decide which
// columns are numeric. It consumes the extraction core's output; it never
// mutates records.
package profile

import (
	"fmt"
	"strconv"

	"github.com/montanaflynn/stats"

	"github.com/atreyakamat/VistaraBI-sub002/domain/record"
)

// ColumnProfile summarizes one column across the profiled sample.
type ColumnProfile struct {
	Name     string            `json:"name"`
	Type     record.ColumnType `json:"type"`
	Count    int               `json:"count"`
	Nulls    int               `json:"nulls"`
	Distinct int               `json:"distinct"`
	Min      *float64          `json:"min,omitempty"`
	Max      *float64          `json:"max,omitempty"`
	Mean     *float64          `json:"mean,omitempty"`
	Median   *float64          `json:"median,omitempty"`
	StdDev   *float64          `json:"stddev,omitempty"`
}

// Columns profiles every column named by the schema over at most sampleSize
// records (0 means all). Numeric columns (INTEGER, DOUBLE) get summary
// statistics; every column gets count, null and distinct tallies.
func Columns(records []record.Record, schema record.Schema, sampleSize int) map[string]ColumnProfile {
	if sampleSize <= 0 || sampleSize > len(records) {
		sampleSize = len(records)
	}
	sample := records[:sampleSize]

	out := make(map[string]ColumnProfile, len(schema))
	for name, colType := range schema {
		out[name] = profileColumn(name, colType, sample)
	}
	return out
}

func profileColumn(name string, colType record.ColumnType, sample []record.Record) ColumnProfile {
	p := ColumnProfile{Name: name, Type: colType, Count: len(sample)}

	distinct := make(map[string]bool)
	var numbers []float64
	for _, rec := range sample {
		v, present := rec[name]
		if !present || v == nil {
			p.Nulls++
			continue
		}
		distinct[fmt.Sprintf("%v", v)] = true
		if colType == record.TypeInteger || colType == record.TypeDouble {
			if n, ok := asFloat(v); ok {
				numbers = append(numbers, n)
			}
		}
	}
	p.Distinct = len(distinct)

	if len(numbers) > 0 {
		p.Min = statOf(stats.Min, numbers)
		p.Max = statOf(stats.Max, numbers)
		p.Mean = statOf(stats.Mean, numbers)
		p.Median = statOf(stats.Median, numbers)
		p.StdDev = statOf(stats.StandardDeviation, numbers)
	}
	return p
}

func statOf(fn func(stats.Float64Data) (float64, error), data []float64) *float64 {
	v, err := fn(data)
	if err != nil {
		return nil
	}
	return &v
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}
