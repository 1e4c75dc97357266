package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/atreyakamat/VistaraBI-sub002/adapters/coercer"
	"github.com/atreyakamat/VistaraBI-sub002/domain/record"
	"github.com/atreyakamat/VistaraBI-sub002/ports"
)

var _ ports.Extractor = (*ODSExtractor)(nil)

// maxCellRepeat bounds run-length expansion of a single cell. ODS writers
// pad rows with huge repeat runs of empty cells; trailing empties are
// trimmed anyway, and no real table is wider than this.
const maxCellRepeat = 4096

// ODSExtractor decodes OpenDocument-style spreadsheet markup: a cell grid
// with run-length-encoded repeated cells and typed cell values, possibly
// spanning multiple named tables in one document. It accepts both a zipped
// .ods archive (content.xml inside) and bare spreadsheet XML (.fods).
//
// When the input carries no spreadsheet model at all, Extract returns
// ErrNoSpreadsheetContent so callers can fall back to the generic markup
// extractor.
type ODSExtractor struct{}

// NewODS creates a spreadsheet-markup extractor.
func NewODS() *ODSExtractor { return &ODSExtractor{} }

type odsDocumentXML struct {
	Body *struct {
		Spreadsheet *struct {
			Tables []odsTableXML `xml:"table"`
		} `xml:"spreadsheet"`
	} `xml:"body"`
}

type odsTableXML struct {
	Name string      `xml:"name,attr"`
	Rows []odsRowXML `xml:"table-row"`
}

type odsRowXML struct {
	Cells []odsCellXML `xml:"table-cell"`
}

type odsCellXML struct {
	Repeat    string       `xml:"number-columns-repeated,attr"`
	ValueType string       `xml:"value-type,attr"`
	Value     string       `xml:"value,attr"`
	BoolValue string       `xml:"boolean-value,attr"`
	DateValue string       `xml:"date-value,attr"`
	TimeValue string       `xml:"time-value,attr"`
	Content   []odsTextXML `xml:",any"`
}

// odsTextXML captures a cell content node (usually text:p) with arbitrary
// nesting below it.
type odsTextXML struct {
	Text     string       `xml:",chardata"`
	Children []odsTextXML `xml:",any"`
}

// Extract expands every table's rows, normalizes headers, zips data rows
// against them and aggregates all tables' records into one flat sequence.
func (e *ODSExtractor) Extract(ctx context.Context, r io.Reader) (*record.ParsedDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, unreadable(err, "spreadsheet markup")
	}

	if isZipArchive(data) {
		data, err = odsContentFromArchive(data)
		if err != nil {
			return nil, err
		}
		if data == nil {
			return nil, ErrNoSpreadsheetContent
		}
	}

	var doc odsDocumentXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, malformed(err, "spreadsheet markup")
	}
	if doc.Body == nil || doc.Body.Spreadsheet == nil || len(doc.Body.Spreadsheet.Tables) == 0 {
		return nil, ErrNoSpreadsheetContent
	}

	var records []record.Record
	var tableMeta []record.Metadata
	for _, table := range doc.Body.Spreadsheet.Tables {
		tableRecords, headers := expandTable(table)
		if tableRecords == nil {
			// Header-only or empty tables are dropped silently.
			continue
		}
		records = append(records, tableRecords...)
		tableMeta = append(tableMeta, record.Metadata{
			"name":    table.Name,
			"columns": len(headers),
			"rows":    len(tableRecords),
		})
	}

	if len(records) == 0 {
		return nil, ErrNoSpreadsheetContent
	}

	return &record.ParsedDocument{
		Records: records,
		Metadata: record.Metadata{
			"tables":      tableMeta,
			"tableCount":  len(tableMeta),
			"recordCount": len(records),
		},
	}, nil
}

// expandTable turns one table into records. The first expanded row is the
// header candidate; tables that reduce to one expanded row or fewer yield
// nil.
func expandTable(table odsTableXML) ([]record.Record, []string) {
	var rows [][]any
	for _, row := range table.Rows {
		expanded := expandRow(row)
		if len(expanded) == 0 {
			continue
		}
		rows = append(rows, expanded)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, v := range rows[0] {
		headers[i] = headerString(v)
	}
	headers = record.DedupeHeaders(headers)

	records := make([]record.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, record.ZipRow(headers, row))
	}
	return records, headers
}

// expandRow emits each cell's coerced value repeated by its repeat count,
// then trims trailing nils so repeat-padding never widens the row.
func expandRow(row odsRowXML) []any {
	var out []any
	for _, cell := range row.Cells {
		v := coerceODSCell(cell)
		for i := 0; i < repeatCount(cell.Repeat); i++ {
			out = append(out, v)
		}
	}
	for len(out) > 0 && out[len(out)-1] == nil {
		out = out[:len(out)-1]
	}
	return out
}

// repeatCount parses a repeat attribute. Missing, non-numeric or
// non-positive values normalize to 1.
func repeatCount(attr string) int {
	n, err := strconv.Atoi(strings.TrimSpace(attr))
	if err != nil || n < 1 {
		return 1
	}
	if n > maxCellRepeat {
		return maxCellRepeat
	}
	return n
}

// coerceODSCell picks the declared value for the cell's declared type and
// runs the ordered fallback chain (declared type -> parsed value -> raw
// text -> nil).
func coerceODSCell(cell odsCellXML) any {
	cellType := coercer.CellType(cell.ValueType)
	declared := cell.Value
	switch cellType {
	case coercer.CellBoolean:
		if cell.BoolValue != "" {
			declared = cell.BoolValue
		}
	case coercer.CellDate:
		declared = cell.DateValue
	case coercer.CellTime:
		declared = cell.TimeValue
	}
	return coercer.Cell(cellType, declared, cellText(cell))
}

// cellText extracts displayable text from a cell's content nodes: a single
// text node, multiple nodes joined with line breaks, or nested elements
// recursively concatenated. Empty content reads as "".
func cellText(cell odsCellXML) string {
	parts := make([]string, 0, len(cell.Content))
	for _, node := range cell.Content {
		if s := strings.TrimSpace(nodeText(node)); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

func nodeText(node odsTextXML) string {
	var sb strings.Builder
	sb.WriteString(node.Text)
	for _, child := range node.Children {
		sb.WriteString(nodeText(child))
	}
	return sb.String()
}

// headerString renders a header row value as a column name.
func headerString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

func isZipArchive(data []byte) bool {
	return len(data) >= 2 && data[0] == 'P' && data[1] == 'K'
}

// odsContentFromArchive pulls content.xml out of a zipped ODS file. A zip
// without content.xml carries no spreadsheet model (nil, nil).
func odsContentFromArchive(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, malformed(err, "spreadsheet archive")
	}
	for _, f := range zr.File {
		if f.Name != "content.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, malformed(err, "spreadsheet archive")
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, malformed(err, "spreadsheet archive")
		}
		return content, nil
	}
	return nil, nil
}
