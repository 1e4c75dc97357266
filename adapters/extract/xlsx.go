package extract

import (
	"context"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/atreyakamat/VistaraBI-sub002/adapters/coercer"
	"github.com/atreyakamat/VistaraBI-sub002/domain/record"
	"github.com/atreyakamat/VistaraBI-sub002/ports"
)

var _ ports.Extractor = (*XLSXExtractor)(nil)

// XLSXExtractor reads binary spreadsheet workbooks. Only the first sheet is
// converted - multi-sheet workbooks are not merged - but the metadata lists
// every sheet name so callers can detect that data beyond the first sheet
// was ignored.
type XLSXExtractor struct{}

// NewXLSX creates a spreadsheet-binary extractor.
func NewXLSX() *XLSXExtractor { return &XLSXExtractor{} }

// Extract converts the first sheet's rows to records using the first row as
// header, with cell literals coerced the same way delimited text is and
// blank cells reading as nil.
func (e *XLSXExtractor) Extract(ctx context.Context, r io.Reader) (*record.ParsedDocument, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, malformed(err, "spreadsheet workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &record.ParsedDocument{
			Records: []record.Record{},
			Metadata: record.Metadata{
				"sheetNames": []string{},
				"sheetCount": 0,
			},
		}, nil
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, malformed(err, "spreadsheet workbook")
	}

	var headers []string
	records := []record.Record{}
	if len(rows) > 0 {
		headers = make([]string, len(rows[0]))
		for i, h := range rows[0] {
			headers[i] = strings.TrimSpace(h)
		}
		headers = record.DedupeHeaders(headers)

		for _, row := range rows[1:] {
			values := make([]any, len(row))
			blank := true
			for i, cell := range row {
				values[i] = coercer.Scalar(cell)
				if values[i] != nil {
					blank = false
				}
			}
			if blank {
				continue
			}
			records = append(records, record.ZipRow(headers, values))
		}
	}

	return &record.ParsedDocument{
		Records: records,
		Metadata: record.Metadata{
			"sheet":       sheet,
			"sheetNames":  sheets,
			"sheetCount":  len(sheets),
			"recordCount": len(records),
		},
	}, nil
}
