package workbook

// MaxSheetTitleLength is the longest worksheet title a spreadsheet application accepts
const MaxSheetTitleLength = 31

// MergeRange is a merged cell range, both ends inclusive and 1-indexed
type MergeRange struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// Worksheet is an in-memory grid of cells.
//
// Rows are ragged: Rows[i] holds the cells of row i+1 up to the last populated
// column of that row.
type Worksheet struct {
	Title       string
	FreezePanes string
	MergeCells  []MergeRange
	Rows        [][]*Cell
}

// NewWorksheet creates an empty worksheet
func NewWorksheet(title string) *Worksheet {
	return &Worksheet{Title: title, Rows: make([][]*Cell, 0)}
}

// MaxRow returns the number of the last row
func (ws *Worksheet) MaxRow() int {
	return len(ws.Rows)
}

// Row returns the cells of a 1-indexed row, nil when the row does not exist
func (ws *Worksheet) Row(row int) []*Cell {
	if row < 1 || row > len(ws.Rows) {
		return nil
	}

	return ws.Rows[row-1]
}

// Lookup returns an existing cell without creating it
func (ws *Worksheet) Lookup(row, col int) *Cell {
	cells := ws.Row(row)
	if col < 1 || col > len(cells) {
		return nil
	}

	return cells[col-1]
}

// Cell returns the cell at (row, col), creating it and every empty cell
// before it in the same row when missing
func (ws *Worksheet) Cell(row, col int) *Cell {
	for len(ws.Rows) < row {
		ws.Rows = append(ws.Rows, make([]*Cell, 0))
	}

	cells := ws.Rows[row-1]
	for len(cells) < col {
		cells = append(cells, &Cell{Row: row, Col: len(cells) + 1})
	}
	ws.Rows[row-1] = cells

	return cells[col-1]
}

// Values returns the plain values of a row, mostly useful for reports and tests
func (ws *Worksheet) Values(row int) []interface{} {
	cells := ws.Row(row)
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		if c != nil {
			values[i] = c.Value
		}
	}

	return values
}

// TruncateTitle cuts a worksheet title down to MaxSheetTitleLength characters
func TruncateTitle(title string) string {
	return Truncate(title, MaxSheetTitleLength)
}

// Truncate cuts s down to at most n characters
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
