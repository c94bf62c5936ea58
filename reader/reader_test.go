package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mylxsw/xlsplit/workbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildFixture(t *testing.T, rows int) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Orders"))
	require.NoError(t, f.SetSheetRow("Orders", "A1", &[]interface{}{"Report"}))
	require.NoError(t, f.SetSheetRow("Orders", "A2", &[]interface{}{"ID", "Region", "Amount"}))
	for i := 0; i < rows; i++ {
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		require.NoError(t, f.SetSheetRow("Orders", cell, &[]interface{}{"x", "East", "10"}))
	}

	_, err := f.NewSheet("Empty")
	require.NoError(t, err)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf.Bytes()
}

func TestPreviewBytes(t *testing.T) {
	p, err := PreviewBytes(buildFixture(t, 20), "", 1, 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"Orders", "Empty"}, p.Sheets)
	assert.Equal(t, "Orders", p.Sheet)
	require.Len(t, p.Rows, 5)
	assert.Equal(t, []string{"Report"}, p.Rows[0])
	assert.Equal(t, []string{"ID", "Region", "Amount"}, p.Rows[1])
	assert.Equal(t, []string{"x", "East", "10"}, p.Rows[4])
	assert.Equal(t, []string{"0: ID", "1: Region", "2: Amount"}, p.Columns())
}

func TestPreviewHeaderBeyondLimit(t *testing.T) {
	p, err := PreviewBytes(buildFixture(t, 20), "Orders", 15, 2)
	require.NoError(t, err)
	assert.Len(t, p.Rows, 2)
	assert.Equal(t, []string{"x", "East", "10"}, p.Header)
}

func TestPreviewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.xlsx")
	require.NoError(t, os.WriteFile(path, buildFixture(t, 3), 0644))

	p, err := PreviewFile(path, "Orders", 0, 0)
	require.NoError(t, err)
	assert.Len(t, p.Rows, 5)
	assert.Equal(t, []string{"0: Report"}, p.Columns())

	_, err = PreviewFile(path, "Missing", 0, 0)
	assert.ErrorIs(t, err, workbook.ErrSheetNotFound)

	_, err = PreviewBytes([]byte("not a workbook"), "", 0, 0)
	assert.ErrorIs(t, err, workbook.ErrInvalidWorkbook)
}

func TestColumnOptions(t *testing.T) {
	assert.Equal(t, []string{"0: a", "1: ", "2: c"}, ColumnOptions([]string{"a", "", "c"}))
	assert.Empty(t, ColumnOptions(nil))
}
