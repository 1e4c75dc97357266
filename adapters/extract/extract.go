// Package extract turns uploaded documents into flat record sets. One
// extractor per source format, all behind the same contract: a single pass
// over the input producing {records, metadata}, or an error carrying a
// format-specific message - never a partial result.
//
// The delimited-text extractor streams its input; every other extractor
// materializes the whole document in memory before decoding. Callers are
// responsible for size limits on the buffered formats.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atreyakamat/VistaraBI-sub002/domain/record"
	"github.com/atreyakamat/VistaraBI-sub002/ports"
)

// Format identifies a source document type.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatTSV      Format = "tsv"
	FormatXLSX     Format = "xlsx"
	FormatJSON     Format = "json"
	FormatXML      Format = "xml"
	FormatODS      Format = "ods"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
)

// Detect returns the document format based on file extension. Selection
// stays overridable: callers may pick any extractor directly via For.
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".tsv", ".tab":
		return FormatTSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".json":
		return FormatJSON, nil
	case ".xml":
		return FormatXML, nil
	case ".ods", ".fods":
		return FormatODS, nil
	case ".pdf":
		return FormatPDF, nil
	case ".docx", ".doc":
		return FormatDOCX, nil
	case ".txt", ".text", ".log":
		return FormatText, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", filepath.Ext(path))
	}
}

// For returns the extractor for a format.
func For(format Format) (ports.Extractor, error) {
	switch format {
	case FormatCSV:
		return NewCSV(), nil
	case FormatTSV:
		return NewTSV(), nil
	case FormatXLSX:
		return NewXLSX(), nil
	case FormatJSON:
		return NewJSON(), nil
	case FormatXML:
		return NewXML(), nil
	case FormatODS:
		return NewODS(), nil
	case FormatPDF:
		return NewPDF(), nil
	case FormatDOCX:
		return NewDOCX(), nil
	case FormatText:
		return NewText(), nil
	case FormatMarkdown:
		return NewMarkdown(), nil
	default:
		return nil, fmt.Errorf("no extractor for format: %s", format)
	}
}

// Tabular reports whether a format produces column-oriented records that
// schema inference applies to. Line-oriented formats synthesize
// {lineNumber, content} records and skip inference.
func Tabular(format Format) bool {
	switch format {
	case FormatCSV, FormatTSV, FormatXLSX, FormatJSON, FormatXML, FormatODS:
		return true
	}
	return false
}

// FromReader extracts from an open reader using the given format, applying
// the ODS -> generic markup fallback: when the spreadsheet-markup extractor
// reports no ODS content, the same bytes go through the XML extractor.
func FromReader(ctx context.Context, format Format, r io.Reader) (*record.ParsedDocument, Format, error) {
	if format != FormatODS {
		ex, err := For(format)
		if err != nil {
			return nil, format, err
		}
		doc, err := ex.Extract(ctx, r)
		return doc, format, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, format, unreadable(err, "spreadsheet")
	}
	doc, err := NewODS().Extract(ctx, bytes.NewReader(data))
	if errors.Is(err, ErrNoSpreadsheetContent) {
		doc, err = NewXML().Extract(ctx, bytes.NewReader(data))
		return doc, FormatXML, err
	}
	return doc, format, err
}

// FromFile detects the format, opens the file and extracts it. The handle
// is released on every exit path, including parse failure.
func FromFile(ctx context.Context, path string) (*record.ParsedDocument, Format, error) {
	format, err := Detect(path)
	if err != nil {
		return nil, "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, format, unreadable(err, string(format))
	}
	defer f.Close()

	return FromReader(ctx, format, f)
}
