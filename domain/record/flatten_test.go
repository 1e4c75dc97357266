package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	t.Run("already flat record is unchanged", func(t *testing.T) {
		in := Record{"a": 1.0, "b": "x"}
		assert.Equal(t, Record{"a": 1.0, "b": "x"}, Flatten(in))
	})

	t.Run("nested mappings join with underscores", func(t *testing.T) {
		in := Record{"a": map[string]any{"b": 1.0, "c": map[string]any{"d": true}}}
		out := Flatten(in)
		assert.Equal(t, 1.0, out["a_b"])
		assert.Equal(t, true, out["a_c_d"])
		assert.NotContains(t, out, "a")
	})

	t.Run("sequences stay in place", func(t *testing.T) {
		in := Record{"tags": []any{"x", "y"}}
		out := Flatten(in)
		assert.Equal(t, []any{"x", "y"}, out["tags"])
	})
}

func TestFromValue(t *testing.T) {
	t.Run("mapping flattens in place", func(t *testing.T) {
		rec := FromValue(map[string]any{"a": 1.0})
		assert.Equal(t, Record{"a": 1.0}, rec)
	})

	t.Run("scalar becomes the value column", func(t *testing.T) {
		assert.Equal(t, Record{"value": "hello"}, FromValue("hello"))
		assert.Equal(t, Record{"value": nil}, FromValue(nil))
	})
}
