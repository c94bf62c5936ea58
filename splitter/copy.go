package splitter

import (
	"fmt"

	"github.com/mylxsw/xlsplit/workbook"
)

// CopyCell overwrites dst with the value and style of src.
//
// The spreadsheet model keeps formulas without their leading '=', so a formula
// is written back with the prefix re-added, otherwise the copy would hold the
// expression as plain text. Style parts are copied one by one, each only when
// present, and never shared with src.
func CopyCell(src, dst *workbook.Cell) {
	if src.IsFormula() {
		dst.SetValue(workbook.FormulaPrefix + fmt.Sprint(src.Value))
	} else {
		dst.Type, dst.Value = src.Type, src.Value
	}

	dst.Style = nil
	if !src.HasStyle() {
		return
	}

	style := workbook.Style{}
	if src.Style.Font != nil {
		style.Font = workbook.ClonePart(src.Style.Font)
	}
	if len(src.Style.Border) > 0 {
		style.Border = workbook.CloneBorder(src.Style.Border)
	}
	if src.Style.Fill != nil {
		style.Fill = workbook.ClonePart(src.Style.Fill)
	}
	if !src.Style.NumberFormat.IsZero() {
		style.NumberFormat = src.Style.NumberFormat
	}
	if src.Style.Protection != nil {
		style.Protection = workbook.ClonePart(src.Style.Protection)
	}
	if src.Style.Alignment != nil {
		style.Alignment = workbook.ClonePart(src.Style.Alignment)
	}

	dst.Style = &style
}

// CopyRows copies the source rows start..end (1-indexed, inclusive) into dst
// starting at row dstStart, column for column. Short rows stay short.
func CopyRows(src, dst *workbook.Worksheet, start, end, dstStart int) {
	for i, r := 0, start; r <= end; i, r = i+1, r+1 {
		copyRow(src.Row(r), dst, dstStart+i)
	}
}

func copyRow(cells []*workbook.Cell, dst *workbook.Worksheet, row int) {
	for j, cell := range cells {
		if cell == nil {
			continue
		}

		CopyCell(cell, dst.Cell(row, j+1))
	}
}
