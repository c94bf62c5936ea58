package splitter

import (
	"strconv"
	"strings"

	"github.com/mylxsw/xlsplit/workbook"
	"github.com/xuri/excelize/v2"
)

// Options is the configuration of one split request.
//
// Header rows are 0-indexed as presented to the user, worksheet row = index + 1.
// Column indexes are 0-indexed within a row.
type Options struct {
	Sheet       string
	HeaderStart int
	HeaderEnd   int
	SplitColumn int
	NameColumn  int
	UniqueNames bool
	PinyinNames bool
}

// DefaultOptions returns the defaults of the upload form: the first sheet,
// header rows 0..1, split and name by the first column
func DefaultOptions() Options {
	return Options{HeaderStart: 0, HeaderEnd: 1}
}

// HeaderRows returns the number of rows in the header block
func (opt Options) HeaderRows() int {
	return opt.HeaderEnd - opt.HeaderStart + 1
}

// DataStart returns the 1-indexed worksheet row of the first data row
func (opt Options) DataStart() int {
	return opt.HeaderEnd + 2
}

// Validate checks the configuration against the source worksheet
func (opt Options) Validate(ws *workbook.Worksheet) error {
	if opt.HeaderStart < 0 {
		return invalid("header start", "must not be negative, got %d", opt.HeaderStart)
	}

	if opt.HeaderEnd < opt.HeaderStart {
		return invalid("header end", "must not be before header start (%d), got %d", opt.HeaderStart, opt.HeaderEnd)
	}

	// column options are taken from the last header row
	columns := len(ws.Row(opt.HeaderEnd + 1))
	if columns == 0 {
		return invalid("header end", "row %d is empty, no column can be selected", opt.HeaderEnd)
	}

	if opt.SplitColumn < 0 || opt.SplitColumn >= columns {
		return invalid("split column", "index %d is out of range [0, %d)", opt.SplitColumn, columns)
	}

	if opt.NameColumn < 0 || opt.NameColumn >= columns {
		return invalid("name column", "index %d is out of range [0, %d)", opt.NameColumn, columns)
	}

	return nil
}

// ParseColumn accepts a 0-indexed column number ("2") or a column name ("C")
func ParseColumn(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, invalid("column", "empty value")
	}

	if idx, err := strconv.Atoi(s); err == nil {
		return idx, nil
	}

	num, err := excelize.ColumnNameToNumber(strings.ToUpper(s))
	if err != nil {
		return 0, invalid("column", "%s is neither an index nor a column name", s)
	}

	return num - 1, nil
}
