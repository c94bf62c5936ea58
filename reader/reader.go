package reader

import (
	"fmt"

	"github.com/mylxsw/go-utils/array"
	"github.com/mylxsw/xlsplit/workbook"
	"github.com/thedatashed/xlsxreader"
)

// DefaultPreviewRows is the number of rows shown by a preview
const DefaultPreviewRows = 10

// Preview holds the leading rows of a worksheet
type Preview struct {
	Sheets []string   `json:"sheets"`
	Sheet  string     `json:"sheet"`
	Rows   [][]string `json:"rows"`
	// Header is the row column options are taken from
	Header []string `json:"header"`
}

// Columns returns the "index: value" options of the header row
func (p *Preview) Columns() []string {
	return ColumnOptions(p.Header)
}

// ColumnOptions builds the "index: value" options of a row
func ColumnOptions(row []string) []string {
	return array.Map(row, func(val string, i int) string { return fmt.Sprintf("%d: %s", i, val) })
}

// PreviewFile streams the first limit rows of a worksheet from disk, the
// header row is the 0-indexed headerEnd row
func PreviewFile(filePath string, sheet string, headerEnd int, limit int) (*Preview, error) {
	xl, err := xlsxreader.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", workbook.ErrInvalidWorkbook, err)
	}
	defer xl.Close()

	return preview(&xl.XlsxFile, sheet, headerEnd, limit)
}

// PreviewBytes is PreviewFile for a workbook held in memory
func PreviewBytes(data []byte, sheet string, headerEnd int, limit int) (*Preview, error) {
	xl, err := xlsxreader.NewReader(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", workbook.ErrInvalidWorkbook, err)
	}

	return preview(xl, sheet, headerEnd, limit)
}

func preview(xl *xlsxreader.XlsxFile, sheet string, headerEnd int, limit int) (*Preview, error) {
	if len(xl.Sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheet", workbook.ErrInvalidWorkbook)
	}

	if sheet == "" {
		sheet = xl.Sheets[0]
	}

	if !array.In(sheet, xl.Sheets) {
		return nil, fmt.Errorf("%w: %s", workbook.ErrSheetNotFound, sheet)
	}

	if limit <= 0 {
		limit = DefaultPreviewRows
	}

	p := Preview{Sheets: xl.Sheets, Sheet: sheet, Rows: make([][]string, 0, limit)}
	headerRow := headerEnd + 1

	var readErr error
	// the channel is drained to the end so the reading goroutine can finish
	for row := range xl.ReadRows(sheet) {
		if readErr != nil {
			continue
		}

		if row.Error != nil {
			readErr = row.Error
			continue
		}

		values := rowValues(row)
		if row.Index <= limit {
			// rows without any cell are skipped by the stream
			for len(p.Rows) < row.Index-1 {
				p.Rows = append(p.Rows, []string{})
			}
			p.Rows = append(p.Rows, values)
		}

		if row.Index == headerRow {
			p.Header = values
		}
	}

	if readErr != nil {
		return nil, readErr
	}

	return &p, nil
}

func rowValues(row xlsxreader.Row) []string {
	values := make([]string, 0, len(row.Cells))
	for i, cell := range row.Cells {
		col := cell.ColumnIndex()
		if col == -1 {
			col = i
		}

		for len(values) <= col {
			values = append(values, "")
		}
		values[col] = cell.Value
	}

	return values
}
