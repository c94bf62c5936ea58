package workbook

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// CellType is the data type of a cell value
type CellType byte

const (
	CellTypeEmpty CellType = iota
	CellTypeString
	CellTypeNumber
	CellTypeBool
	CellTypeDate
	CellTypeError
	CellTypeFormula
)

// FormulaPrefix marks a string value as a formula expression
const FormulaPrefix = "="

func (t CellType) String() string {
	switch t {
	case CellTypeString:
		return "string"
	case CellTypeNumber:
		return "number"
	case CellTypeBool:
		return "bool"
	case CellTypeDate:
		return "date"
	case CellTypeError:
		return "error"
	case CellTypeFormula:
		return "formula"
	default:
		return "empty"
	}
}

// Cell is a single cell of a Worksheet.
//
// A formula cell keeps its expression in Value without the leading FormulaPrefix,
// the same way the spreadsheet library reports it.
type Cell struct {
	Row   int
	Col   int
	Type  CellType
	Value interface{}
	Style *Style
}

// Axis returns the cell reference, such as "B3"
func (c *Cell) Axis() string {
	axis, _ := excelize.CoordinatesToCellName(c.Col, c.Row)
	return axis
}

// SetValue assigns v and infers the data type from it, a string starting
// with FormulaPrefix becomes a formula
func (c *Cell) SetValue(v interface{}) {
	switch val := v.(type) {
	case nil:
		c.Type, c.Value = CellTypeEmpty, nil
	case string:
		if len(val) > len(FormulaPrefix) && strings.HasPrefix(val, FormulaPrefix) {
			c.Type, c.Value = CellTypeFormula, strings.TrimPrefix(val, FormulaPrefix)
			return
		}

		c.Type, c.Value = CellTypeString, val
	case bool:
		c.Type, c.Value = CellTypeBool, val
	case float64:
		c.Type, c.Value = CellTypeNumber, val
	case float32:
		c.Type, c.Value = CellTypeNumber, float64(val)
	case int:
		c.Type, c.Value = CellTypeNumber, float64(val)
	case int32:
		c.Type, c.Value = CellTypeNumber, float64(val)
	case int64:
		c.Type, c.Value = CellTypeNumber, float64(val)
	case time.Time:
		c.Type, c.Value = CellTypeDate, val
	default:
		c.Type, c.Value = CellTypeString, fmt.Sprint(val)
	}
}

// IsFormula reports whether the cell holds a formula
func (c *Cell) IsFormula() bool {
	return c.Type == CellTypeFormula
}

// Formula returns the formula as it is displayed, prefix included,
// or an empty string for non-formula cells
func (c *Cell) Formula() string {
	if !c.IsFormula() {
		return ""
	}

	return FormulaPrefix + fmt.Sprint(c.Value)
}

// HasStyle reports whether any style part is set on the cell
func (c *Cell) HasStyle() bool {
	return c.Style.HasStyle()
}
