package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/atreyakamat/VistaraBI-sub002/domain/record"
	"github.com/atreyakamat/VistaraBI-sub002/internal/errors"
	"github.com/atreyakamat/VistaraBI-sub002/ports"
)

var _ ports.Extractor = (*DOCXExtractor)(nil)

// oleMagic is the compound-file signature of the legacy binary .doc format.
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// DOCXExtractor reads word-processing documents (zip archive containing
// word/document.xml), emitting one {lineNumber, content} record per
// non-empty paragraph. The legacy binary .doc encoding is recognized and
// reported with its own corrective message rather than a generic parse
// failure.
type DOCXExtractor struct{}

// NewDOCX creates a document-text extractor.
func NewDOCX() *DOCXExtractor { return &DOCXExtractor{} }

func (e *DOCXExtractor) Extract(ctx context.Context, r io.Reader) (*record.ParsedDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, unreadable(err, "document")
	}

	if bytes.HasPrefix(data, oleMagic) {
		return nil, errors.New(errors.CodeUnsupportedLegacy,
			"legacy binary .doc format is not supported; re-save the document as .docx and upload it again")
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, malformed(err, "document")
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, errors.New(errors.CodeMalformedContent,
			"invalid document content: word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, malformed(err, "document")
	}
	defer rc.Close()

	paragraphs, err := docxParagraphs(rc)
	if err != nil {
		return nil, malformed(err, "document")
	}

	records := []record.Record{}
	for _, p := range paragraphs {
		records = append(records, lineRecord(len(records)+1, p))
	}

	return &record.ParsedDocument{
		Records: records,
		Metadata: record.Metadata{
			"lineCount":      len(records),
			"paragraphCount": len(paragraphs),
		},
	}, nil
}

// docxParagraphs walks word/document.xml collecting the text of each
// non-empty paragraph in document order.
func docxParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)
	var paragraphs []string
	var current strings.Builder
	var inParagraph bool

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" {
				inParagraph = true
				current.Reset()
			}
		case xml.CharData:
			if inParagraph {
				current.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				if text := strings.TrimSpace(current.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
			}
		}
	}

	return paragraphs, nil
}
