package workbook

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Build creates a single-sheet excelize file holding ws, the caller must Close it
func Build(ws *Worksheet) (*excelize.File, error) {
	f := excelize.NewFile()

	title := ws.Title
	if title == "" {
		title = f.GetSheetName(0)
	}

	// 重命名默认的 Sheet 名称为 ws 中的名称
	if err := f.SetSheetName(f.GetSheetName(0), title); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet to %s failed: %w", title, err)
	}

	if err := writeCells(f, title, ws); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err := setDimension(f, title, ws); err != nil {
		_ = f.Close()
		return nil, err
	}

	for _, mr := range ws.MergeCells {
		start, _ := excelize.CoordinatesToCellName(mr.StartCol, mr.StartRow)
		end, _ := excelize.CoordinatesToCellName(mr.EndCol, mr.EndRow)
		if err := f.MergeCell(title, start, end); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("merge cell %s:%s failed: %w", start, end, err)
		}
	}

	if ws.FreezePanes != "" {
		if err := freezePanes(f, title, ws.FreezePanes); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return f, nil
}

func writeCells(f *excelize.File, sheet string, ws *Worksheet) error {
	for _, row := range ws.Rows {
		for _, cell := range row {
			if cell == nil {
				continue
			}

			axis := cell.Axis()
			switch cell.Type {
			case CellTypeEmpty:
			case CellTypeFormula:
				if err := f.SetCellFormula(sheet, axis, fmt.Sprint(cell.Value)); err != nil {
					return fmt.Errorf("set formula of %s failed: %w", axis, err)
				}
			default:
				if err := f.SetCellValue(sheet, axis, cell.Value); err != nil {
					return fmt.Errorf("set value of %s failed: %w", axis, err)
				}
			}

			if !cell.HasStyle() {
				continue
			}

			styleID, err := f.NewStyle(cell.Style.excelizeStyle())
			if err != nil {
				return fmt.Errorf("create style for %s failed: %w", axis, err)
			}

			if err := f.SetCellStyle(sheet, axis, axis, styleID); err != nil {
				return fmt.Errorf("set style of %s failed: %w", axis, err)
			}
		}
	}

	return nil
}

// setDimension records the used range, readers rely on it to find styled
// cells without a value
func setDimension(f *excelize.File, sheet string, ws *Worksheet) error {
	maxCol := 0
	for _, row := range ws.Rows {
		maxCol = max(maxCol, len(row))
	}

	if ws.MaxRow() == 0 || maxCol == 0 {
		return nil
	}

	end, err := excelize.CoordinatesToCellName(maxCol, ws.MaxRow())
	if err != nil {
		return err
	}

	if err := f.SetSheetDimension(sheet, "A1:"+end); err != nil {
		return fmt.Errorf("set dimension of %s failed: %w", sheet, err)
	}

	return nil
}

// freezePanes freezes the rows above and the columns left of topLeft
func freezePanes(f *excelize.File, sheet string, topLeft string) error {
	col, row, err := excelize.CellNameToCoordinates(topLeft)
	if err != nil {
		return fmt.Errorf("invalid freeze panes %s: %w", topLeft, err)
	}

	xSplit, ySplit := col-1, row-1
	if xSplit == 0 && ySplit == 0 {
		return nil
	}

	activePane := "bottomRight"
	switch {
	case xSplit == 0:
		activePane = "bottomLeft"
	case ySplit == 0:
		activePane = "topRight"
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      xSplit,
		YSplit:      ySplit,
		TopLeftCell: topLeft,
		ActivePane:  activePane,
		Selection: []excelize.Selection{
			{SQRef: topLeft, ActiveCell: topLeft, Pane: activePane},
		},
	})
}

// Write serializes ws as an xlsx container
func Write(ws *Worksheet, w io.Writer) error {
	f, err := Build(ws)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)
	return err
}

// Bytes serializes ws as an xlsx container held in memory
func Bytes(ws *Worksheet) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Write(ws, buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
