package workbook

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mylxsw/asteria/log"
	"github.com/mylxsw/go-utils/array"
	"github.com/xuri/excelize/v2"
)

// Open reads an xlsx file from disk and loads one of its worksheets,
// the first one when sheet is empty
func Open(filename string, sheet string) (*Worksheet, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	return LoadSheet(f, sheet)
}

// Load reads an xlsx container and loads one of its worksheets,
// the first one when sheet is empty
func Load(r io.Reader, sheet string) (*Worksheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	return LoadSheet(f, sheet)
}

// Sheets returns the worksheet names of an xlsx container
func Sheets(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// LoadSheet builds the in-memory model of a worksheet
func LoadSheet(f *excelize.File, sheet string) (*Worksheet, error) {
	sheets := f.GetSheetList()
	if sheet == "" && len(sheets) > 0 {
		sheet = sheets[0]
	}

	if !array.In(sheet, sheets) {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows of %s failed: %w", sheet, err)
	}

	ws := NewWorksheet(sheet)
	styles := make(map[int]*Style)

	// GetRows trims empty trailing cells, styled cells without a value are
	// found by walking the whole used range
	maxRow, maxCol := usedRange(f, sheet, rows)
	for r := 1; r <= maxRow; r++ {
		for c := 1; c <= maxCol; c++ {
			raw := ""
			if r <= len(rows) && c <= len(rows[r-1]) {
				raw = rows[r-1][c-1]
			}

			axis, _ := excelize.CoordinatesToCellName(c, r)

			formula, err := f.GetCellFormula(sheet, axis)
			if err != nil {
				return nil, fmt.Errorf("read formula of %s!%s failed: %w", sheet, axis, err)
			}

			styleID, err := f.GetCellStyle(sheet, axis)
			if err != nil {
				return nil, fmt.Errorf("read style of %s!%s failed: %w", sheet, axis, err)
			}

			if raw == "" && formula == "" && styleID == 0 {
				continue
			}

			cell := ws.Cell(r, c)
			if formula != "" {
				cell.Type, cell.Value = CellTypeFormula, strings.TrimPrefix(formula, FormulaPrefix)
			} else if raw != "" {
				typ, err := f.GetCellType(sheet, axis)
				if err != nil {
					return nil, fmt.Errorf("read type of %s!%s failed: %w", sheet, axis, err)
				}

				cell.Type, cell.Value = parseRawValue(typ, raw)
			}

			if styleID == 0 {
				continue
			}

			style, ok := styles[styleID]
			if !ok {
				es, err := f.GetStyle(styleID)
				if err != nil {
					log.WithFields(log.Fields{"sheet": sheet, "cell": axis, "style": styleID}).
						Warningf("load cell style failed, style ignored: %v", err)
				}

				style = styleFromExcelize(es)
				styles[styleID] = style
			}

			cell.Style = style.Clone()
		}

		// keep empty rows so row numbers stay aligned with the source
		if r <= len(rows) {
			for len(ws.Rows) < r {
				ws.Rows = append(ws.Rows, make([]*Cell, 0))
			}
		}
	}

	panes, err := f.GetPanes(sheet)
	if err != nil {
		return nil, fmt.Errorf("read panes of %s failed: %w", sheet, err)
	}

	if panes.Freeze {
		ws.FreezePanes = panes.TopLeftCell
		if ws.FreezePanes == "" {
			ws.FreezePanes, _ = excelize.CoordinatesToCellName(panes.XSplit+1, panes.YSplit+1)
		}
	}

	merged, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("read merged cells of %s failed: %w", sheet, err)
	}

	for _, mc := range merged {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}

		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}

		ws.MergeCells = append(ws.MergeCells, MergeRange{StartRow: startRow, StartCol: startCol, EndRow: endRow, EndCol: endCol})
	}

	log.WithFields(log.Fields{"sheet": sheet, "rows": ws.MaxRow(), "styles": len(styles)}).Debugf("worksheet loaded")

	return ws, nil
}

// usedRange returns the last row and column of the worksheet holding a value,
// a style or a merged range. The recorded dimension may be stale or missing,
// the widest row read is used as a lower bound.
func usedRange(f *excelize.File, sheet string, rows [][]string) (int, int) {
	maxRow, maxCol := len(rows), 0
	for _, row := range rows {
		maxCol = max(maxCol, len(row))
	}

	if dim, err := f.GetSheetDimension(sheet); err == nil && dim != "" {
		ref := dim[strings.LastIndex(dim, ":")+1:]
		if col, row, err := excelize.CellNameToCoordinates(ref); err == nil {
			maxRow, maxCol = max(maxRow, row), max(maxCol, col)
		}
	}

	if merged, err := f.GetMergeCells(sheet); err == nil {
		for _, mc := range merged {
			if col, row, err := excelize.CellNameToCoordinates(mc.GetEndAxis()); err == nil {
				maxRow, maxCol = max(maxRow, row), max(maxCol, col)
			}
		}
	}

	return maxRow, maxCol
}

// parseRawValue turns the raw cell text into a typed value
func parseRawValue(typ excelize.CellType, raw string) (CellType, interface{}) {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return CellTypeString, raw
	case excelize.CellTypeBool:
		return CellTypeBool, raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeDate:
		if tm, ok := parseISODate(raw); ok {
			return CellTypeDate, tm
		}

		return CellTypeString, raw
	case excelize.CellTypeError:
		// error values such as #DIV/0! are written back as text
		return CellTypeError, raw
	}

	// numbers are stored without a type attribute most of the time
	if num, err := strconv.ParseFloat(raw, 64); err == nil {
		return CellTypeNumber, num
	}

	return CellTypeString, raw
}

// iso 8601 layouts used by t="d" cells
var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"15:04:05",
}

func parseISODate(raw string) (time.Time, bool) {
	for _, layout := range isoDateLayouts {
		if tm, err := time.Parse(layout, raw); err == nil {
			return tm, true
		}
	}

	return time.Time{}, false
}
