package extract

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/atreyakamat/VistaraBI-sub002/domain/record"
	"github.com/atreyakamat/VistaraBI-sub002/ports"
)

var _ ports.Extractor = (*TextExtractor)(nil)

// TextExtractor splits plain text on line breaks, trims each line and drops
// blanks, emitting {lineNumber, content} records with 1-based sequential
// numbering unaffected by the dropped lines.
type TextExtractor struct{}

// NewText creates a plain-text extractor.
func NewText() *TextExtractor { return &TextExtractor{} }

func (e *TextExtractor) Extract(ctx context.Context, r io.Reader) (*record.ParsedDocument, error) {
	scanner := bufio.NewScanner(stripBOM(r))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	records := []record.Record{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		records = append(records, lineRecord(len(records)+1, line))
	}
	if err := scanner.Err(); err != nil {
		return nil, unreadable(err, "text")
	}

	return &record.ParsedDocument{
		Records:  records,
		Metadata: record.Metadata{"lineCount": len(records)},
	}, nil
}

// lineRecord builds one line-oriented record.
func lineRecord(number int, content string) record.Record {
	return record.Record{"lineNumber": number, "content": content}
}

// lineRecordsFromText trims and numbers the non-blank lines of a text blob.
// Shared by the page- and paragraph-oriented extractors.
func lineRecordsFromText(text string) []record.Record {
	records := []record.Record{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		records = append(records, lineRecord(len(records)+1, line))
	}
	return records
}
