package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownExtract(t *testing.T) {
	input := `# Quarterly Report

Revenue grew in Q2.

## Details

- first point
`

	doc, err := NewMarkdown().Extract(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	require.NotEmpty(t, doc.Records)
	assert.Equal(t, "Quarterly Report", doc.Records[0]["content"])
	assert.Equal(t, 1, doc.Records[0]["lineNumber"])
	assert.Equal(t, "Quarterly Report", doc.Metadata["title"])
	assert.Equal(t, 2, doc.Metadata["headingCount"])
	assert.Equal(t, len(doc.Records), doc.Metadata["lineCount"])

	contents := make([]string, 0, len(doc.Records))
	for _, rec := range doc.Records {
		contents = append(contents, rec["content"].(string))
	}
	assert.Contains(t, contents, "Revenue grew in Q2.")
	assert.Contains(t, contents, "first point")
}

func TestMarkdownExtractCodeBlock(t *testing.T) {
	input := "setup:\n\n```\nmake build\nmake test\n```\n"

	doc, err := NewMarkdown().Extract(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	contents := make([]string, 0, len(doc.Records))
	for _, rec := range doc.Records {
		contents = append(contents, rec["content"].(string))
	}
	assert.Contains(t, contents, "make build")
	assert.Contains(t, contents, "make test")
}

func TestMarkdownExtractEmptyInput(t *testing.T) {
	doc, err := NewMarkdown().Extract(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Records)
	assert.Equal(t, 0, doc.Metadata["headingCount"])
	assert.NotContains(t, doc.Metadata, "title")
}
