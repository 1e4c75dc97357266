package extract

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"

	"github.com/atreyakamat/VistaraBI-sub002/domain/record"
	"github.com/atreyakamat/VistaraBI-sub002/ports"
)

var _ ports.Extractor = (*MarkdownExtractor)(nil)

// MarkdownExtractor parses markdown into block-level text lines, emitting
// {lineNumber, content} records for each heading, paragraph and list item.
// The first heading becomes the document title in metadata.
type MarkdownExtractor struct{}

// NewMarkdown creates a markdown extractor.
func NewMarkdown() *MarkdownExtractor { return &MarkdownExtractor{} }

func (e *MarkdownExtractor) Extract(ctx context.Context, r io.Reader) (*record.ParsedDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, unreadable(err, "markdown")
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse(data)

	var blocks []string
	var title string
	headingCount := 0
	var current strings.Builder

	flush := func(isHeading bool) {
		text := strings.TrimSpace(current.String())
		current.Reset()
		if text == "" {
			return
		}
		blocks = append(blocks, text)
		if isHeading {
			headingCount++
			if title == "" {
				title = text
			}
		}
	}

	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		switch n := node.(type) {
		case *ast.Heading:
			if entering {
				current.Reset()
			} else {
				flush(true)
			}
		case *ast.Paragraph:
			if entering {
				current.Reset()
			} else {
				flush(false)
			}
		case *ast.CodeBlock:
			if entering {
				for _, line := range strings.Split(string(n.Literal), "\n") {
					if line = strings.TrimSpace(line); line != "" {
						blocks = append(blocks, line)
					}
				}
			}
		case *ast.Text:
			if entering {
				current.Write(n.Literal)
			}
		case *ast.Code:
			if entering {
				current.Write(n.Literal)
			}
		}
		return ast.GoToNext
	})

	records := []record.Record{}
	for _, block := range blocks {
		for _, line := range strings.Split(block, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				records = append(records, lineRecord(len(records)+1, line))
			}
		}
	}

	meta := record.Metadata{
		"lineCount":    len(records),
		"headingCount": headingCount,
	}
	if title != "" {
		meta["title"] = title
	}

	return &record.ParsedDocument{Records: records, Metadata: meta}, nil
}
