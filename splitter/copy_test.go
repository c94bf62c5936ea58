package splitter

import (
	"testing"

	"github.com/mylxsw/xlsplit/workbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCopyCellFormulaIsPrefixed(t *testing.T) {
	src := &workbook.Cell{Row: 1, Col: 1, Type: workbook.CellTypeFormula, Value: "SUM(A1:A2)"}
	dst := &workbook.Cell{Row: 5, Col: 2}

	CopyCell(src, dst)

	assert.True(t, dst.IsFormula())
	assert.Equal(t, "=SUM(A1:A2)", dst.Formula())
	assert.Equal(t, "SUM(A1:A2)", dst.Value)
	assert.Equal(t, 5, dst.Row)
	assert.Equal(t, 2, dst.Col)
}

func TestCopyCellLiteralValues(t *testing.T) {
	values := []interface{}{nil, "East", "=not a formula", 10.5, true}
	for _, v := range values {
		src := &workbook.Cell{Row: 1, Col: 1, Type: workbook.CellTypeString, Value: v}
		dst := &workbook.Cell{Row: 1, Col: 1, Type: workbook.CellTypeNumber, Value: 99.0}

		CopyCell(src, dst)
		assert.Equal(t, v, dst.Value)
		assert.Equal(t, workbook.CellTypeString, dst.Type)
	}
}

func TestCopyCellStyleIsIndependent(t *testing.T) {
	src := &workbook.Cell{Row: 1, Col: 1, Type: workbook.CellTypeString, Value: "ID", Style: &workbook.Style{
		Font:         &excelize.Font{Bold: true, Color: "FF0000"},
		Border:       []excelize.Border{{Type: "bottom", Style: 2}},
		Fill:         &excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}},
		NumberFormat: workbook.NumberFormat{ID: 4},
		Protection:   &excelize.Protection{Locked: true},
		Alignment:    &excelize.Alignment{WrapText: true},
	}}
	dst := &workbook.Cell{Row: 1, Col: 1}

	CopyCell(src, dst)
	require.True(t, dst.HasStyle())
	assert.Equal(t, src.Style, dst.Style)
	assert.NotSame(t, src.Style, dst.Style)

	dst.Style.Font.Bold = false
	dst.Style.Font.Color = "00FF00"
	dst.Style.Border[0].Style = 0
	dst.Style.Fill.Color[0] = "0000FF"
	dst.Style.Protection.Locked = false
	dst.Style.Alignment.WrapText = false
	dst.Style.NumberFormat.ID = 0

	assert.True(t, src.Style.Font.Bold)
	assert.Equal(t, "FF0000", src.Style.Font.Color)
	assert.Equal(t, 2, src.Style.Border[0].Style)
	assert.Equal(t, "FFFF00", src.Style.Fill.Color[0])
	assert.True(t, src.Style.Protection.Locked)
	assert.True(t, src.Style.Alignment.WrapText)
	assert.Equal(t, 4, src.Style.NumberFormat.ID)
}

func TestCopyCellPartialStyle(t *testing.T) {
	src := &workbook.Cell{Row: 1, Col: 1, Style: &workbook.Style{Alignment: &excelize.Alignment{Horizontal: "center"}}}
	dst := &workbook.Cell{Row: 1, Col: 1, Style: &workbook.Style{Font: &excelize.Font{Italic: true}}}

	CopyCell(src, dst)

	require.NotNil(t, dst.Style)
	assert.Nil(t, dst.Style.Font)
	assert.Nil(t, dst.Style.Fill)
	assert.Nil(t, dst.Style.Border)
	assert.Equal(t, "center", dst.Style.Alignment.Horizontal)
}

func TestCopyCellWithoutStyle(t *testing.T) {
	src := &workbook.Cell{Row: 1, Col: 1}
	dst := &workbook.Cell{Row: 1, Col: 1, Type: workbook.CellTypeString, Value: "old", Style: &workbook.Style{Font: &excelize.Font{Bold: true}}}

	assert.NotPanics(t, func() { CopyCell(src, dst) })
	assert.Nil(t, dst.Value)
	assert.Equal(t, workbook.CellTypeEmpty, dst.Type)
	assert.False(t, dst.HasStyle())

	empty := &workbook.Cell{Row: 1, Col: 1, Style: &workbook.Style{}}
	assert.NotPanics(t, func() { CopyCell(empty, dst) })
	assert.Nil(t, dst.Style)
}

func TestCopyRowsKeepsRaggedRows(t *testing.T) {
	src := sheetOf("Data",
		[]interface{}{"a", "b", "c"},
		[]interface{}{"d"},
		[]interface{}{"e", "f"},
	)
	dst := workbook.NewWorksheet("Data")

	CopyRows(src, dst, 2, 3, 4)

	assert.Equal(t, 5, dst.MaxRow())
	assert.Equal(t, []interface{}{"d"}, dst.Values(4))
	assert.Equal(t, []interface{}{"e", "f"}, dst.Values(5))
	assert.Len(t, dst.Row(1), 0)
}
