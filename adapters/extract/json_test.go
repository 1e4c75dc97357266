package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atreyakamat/VistaraBI-sub002/domain/record"
	"github.com/atreyakamat/VistaraBI-sub002/internal/errors"
)

func TestJSONExtractTopLevelObject(t *testing.T) {
	doc, err := NewJSON().Extract(context.Background(), strings.NewReader(`{"a":1}`))
	require.NoError(t, err)

	require.Len(t, doc.Records, 1)
	assert.Equal(t, record.Record{"a": float64(1)}, doc.Records[0])
	assert.Equal(t, "object", doc.Metadata["topLevelType"])
	assert.Equal(t, 1, doc.Metadata["recordCount"])
}

func TestJSONExtractTopLevelArray(t *testing.T) {
	doc, err := NewJSON().Extract(context.Background(), strings.NewReader(`[{"a":1},{"a":2}]`))
	require.NoError(t, err)

	require.Len(t, doc.Records, 2)
	assert.Equal(t, float64(1), doc.Records[0]["a"])
	assert.Equal(t, float64(2), doc.Records[1]["a"])
	assert.Equal(t, "array", doc.Metadata["topLevelType"])
}

func TestJSONExtractScalarElements(t *testing.T) {
	doc, err := NewJSON().Extract(context.Background(), strings.NewReader(`[1, "two"]`))
	require.NoError(t, err)

	require.Len(t, doc.Records, 2)
	assert.Equal(t, record.Record{"value": float64(1)}, doc.Records[0])
	assert.Equal(t, record.Record{"value": "two"}, doc.Records[1])
}

func TestJSONExtractNestedObjectFlattens(t *testing.T) {
	input := `{"order":{"id":7,"total":{"amount":19.99}}}`

	doc, err := NewJSON().Extract(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, doc.Records, 1)
	assert.Equal(t, float64(7), doc.Records[0]["order_id"])
	assert.Equal(t, 19.99, doc.Records[0]["order_total_amount"])
}

func TestJSONExtractMalformed(t *testing.T) {
	_, err := NewJSON().Extract(context.Background(), strings.NewReader(`{"a":`))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeMalformedContent))
}

func TestJSONExtractEmptyArray(t *testing.T) {
	doc, err := NewJSON().Extract(context.Background(), strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, doc.Records)
	assert.Equal(t, "array", doc.Metadata["topLevelType"])
}
