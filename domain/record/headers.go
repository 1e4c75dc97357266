package record

import "fmt"

// DedupeHeaders normalizes a header row: blank headers become column_<n>
// (1-based) and duplicates get a numeric suffix (name, name_2, name_3, ...).
// The returned slice preserves source column order.
func DedupeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	counts := make(map[string]int, len(headers))
	taken := make(map[string]bool, len(headers))

	for i, h := range headers {
		if h == "" {
			h = fmt.Sprintf("column_%d", i+1)
		}
		name := h
		for taken[name] {
			counts[h]++
			name = fmt.Sprintf("%s_%d", h, counts[h]+1)
		}
		taken[name] = true
		out[i] = name
	}

	return out
}

// ZipRow builds a Record by pairing headers with row values. Values beyond
// the header count are preserved under synthetic extra_<n> keys (n is the
// 1-based position in the row); headers without a value are set to nil.
func ZipRow(headers []string, values []any) Record {
	rec := make(Record, len(values))

	for i, v := range values {
		if i < len(headers) {
			rec[headers[i]] = v
		} else {
			rec[fmt.Sprintf("extra_%d", i+1)] = v
		}
	}
	for i := len(values); i < len(headers); i++ {
		rec[headers[i]] = nil
	}

	return rec
}
