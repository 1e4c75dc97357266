package extract

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/atreyakamat/VistaraBI-sub002/internal/errors"
)

// workbookBytes builds an in-memory workbook with the given rows on the
// default sheet.
func workbookBytes(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetList()[0]
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestXLSXExtract(t *testing.T) {
	data := workbookBytes(t, [][]any{
		{"id", "name", "score"},
		{"1", "alice", "9.5"},
		{"2", "bob", "8"},
	})

	doc, err := NewXLSX().Extract(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)

	require.Len(t, doc.Records, 2)
	assert.Equal(t, float64(1), doc.Records[0]["id"])
	assert.Equal(t, "alice", doc.Records[0]["name"])
	assert.Equal(t, 9.5, doc.Records[0]["score"])
	assert.Equal(t, 2, doc.Metadata["recordCount"])
	assert.Equal(t, 1, doc.Metadata["sheetCount"])
}

func TestXLSXExtractFirstSheetOnly(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	first := f.GetSheetList()[0]
	require.NoError(t, f.SetSheetRow(first, "A1", &[]any{"a"}))
	require.NoError(t, f.SetSheetRow(first, "A2", &[]any{"1"}))

	_, err := f.NewSheet("Second")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Second", "A1", &[]any{"ignored"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	doc, err := NewXLSX().Extract(context.Background(), bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	require.Len(t, doc.Records, 1)
	assert.Equal(t, float64(1), doc.Records[0]["a"])
	assert.Equal(t, first, doc.Metadata["sheet"])
	assert.Equal(t, 2, doc.Metadata["sheetCount"])
	assert.Equal(t, []string{first, "Second"}, doc.Metadata["sheetNames"])
}

func TestXLSXExtractSkipsBlankRows(t *testing.T) {
	data := workbookBytes(t, [][]any{
		{"a", "b"},
		{"", ""},
		{"1", "2"},
	})

	doc, err := NewXLSX().Extract(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, doc.Records, 1)
	assert.Equal(t, float64(2), doc.Records[0]["b"])
}

func TestXLSXExtractHeaderOnly(t *testing.T) {
	data := workbookBytes(t, [][]any{{"a", "b"}})

	doc, err := NewXLSX().Extract(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, doc.Records)
	assert.Equal(t, 0, doc.Metadata["recordCount"])
}

func TestXLSXExtractNotAWorkbook(t *testing.T) {
	_, err := NewXLSX().Extract(context.Background(), strings.NewReader("definitely not a zip"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeMalformedContent))
}
