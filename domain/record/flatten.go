package record

// Flatten collapses nested mappings into a single-level Record by joining
// key paths with underscores ({"a": {"b": 1}} -> {"a_b": 1}). Sequence
// values are left in place; inference classifies them as JSON and they are
// stored as opaque JSON downstream. Scalars pass through unchanged.
func Flatten(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		flattenInto(out, k, v)
	}
	return out
}

// FromValue turns an arbitrary decoded value into a flat Record. Mappings
// flatten in place; anything else becomes the sole "value" column. This is
// how non-object JSON array elements and markup leaves become records.
func FromValue(v any) Record {
	switch m := v.(type) {
	case map[string]any:
		return Flatten(Record(m))
	case Record:
		return Flatten(m)
	default:
		return Record{"value": v}
	}
}

func flattenInto(out Record, prefix string, v any) {
	switch nested := v.(type) {
	case map[string]any:
		for k, inner := range nested {
			flattenInto(out, prefix+"_"+k, inner)
		}
	case Record:
		for k, inner := range nested {
			flattenInto(out, prefix+"_"+k, inner)
		}
	default:
		out[prefix] = v
	}
}
