package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextExtractNumbersNonBlankLines(t *testing.T) {
	doc, err := NewText().Extract(context.Background(), strings.NewReader("a\n\nb\n"))
	require.NoError(t, err)

	require.Len(t, doc.Records, 2)
	assert.Equal(t, 1, doc.Records[0]["lineNumber"])
	assert.Equal(t, "a", doc.Records[0]["content"])
	assert.Equal(t, 2, doc.Records[1]["lineNumber"])
	assert.Equal(t, "b", doc.Records[1]["content"])
	assert.Equal(t, 2, doc.Metadata["lineCount"])
}

func TestTextExtractTrimsWhitespace(t *testing.T) {
	doc, err := NewText().Extract(context.Background(), strings.NewReader("  hello  \n\t\n  world"))
	require.NoError(t, err)

	require.Len(t, doc.Records, 2)
	assert.Equal(t, "hello", doc.Records[0]["content"])
	assert.Equal(t, "world", doc.Records[1]["content"])
}

func TestTextExtractEmptyInput(t *testing.T) {
	doc, err := NewText().Extract(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Records)
	assert.Equal(t, 0, doc.Metadata["lineCount"])
}

func TestTextExtractStripsBOM(t *testing.T) {
	doc, err := NewText().Extract(context.Background(), strings.NewReader("\xef\xbb\xbffirst line"))
	require.NoError(t, err)
	require.Len(t, doc.Records, 1)
	assert.Equal(t, "first line", doc.Records[0]["content"])
}

func TestLineRecordsFromText(t *testing.T) {
	records := lineRecordsFromText("one\n\n  two  \nthree\n")
	require.Len(t, records, 3)
	assert.Equal(t, "two", records[1]["content"])
	assert.Equal(t, 3, records[2]["lineNumber"])
}
