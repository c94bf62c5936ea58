package splitter

import (
	"github.com/mylxsw/asteria/log"
	"github.com/mylxsw/xlsplit/workbook"
)

// Group is the set of data rows sharing one value at the split column
type Group struct {
	// Key is the raw value at the split column, nil for a missing or empty cell
	Key interface{}
	// Rows are the 1-indexed source rows, in source order
	Rows []int
}

// Result is one generated worksheet together with the group it was built from
type Result struct {
	Index       int
	Group       *Group
	DisplayName string
	BaseName    string
	FileName    string
	Worksheet   *workbook.Worksheet
}

// Plan validates opt and buckets every data row of ws by its split column
// value. Groups are ordered by the first occurrence of their key.
func Plan(ws *workbook.Worksheet, opt Options) ([]*Group, error) {
	if err := opt.Validate(ws); err != nil {
		return nil, err
	}

	groups := make([]*Group, 0)
	index := make(map[interface{}]*Group)

	for r := opt.DataStart(); r <= ws.MaxRow(); r++ {
		key := groupKey(ws.Lookup(r, opt.SplitColumn+1))

		g, ok := index[key]
		if !ok {
			g = &Group{Key: key, Rows: make([]int, 0)}
			index[key] = g
			groups = append(groups, g)
		}

		g.Rows = append(g.Rows, r)
	}

	return groups, nil
}

// groupKey returns the value keys are compared by.
// Values compare with Go equality, so number 5 and text "5" are different keys.
func groupKey(cell *workbook.Cell) interface{} {
	if cell == nil {
		return nil
	}

	if s, ok := cell.Value.(string); ok && s == "" && !cell.IsFormula() {
		return nil
	}

	return cell.Value
}

// Build creates the worksheet of one group: the header block followed by
// the group rows, numbered from 1
func Build(ws *workbook.Worksheet, g *Group, opt Options) *workbook.Worksheet {
	out := workbook.NewWorksheet(workbook.TruncateTitle(SheetTitle(ws.Title)))
	if ws.FreezePanes != "" {
		out.FreezePanes = ws.FreezePanes
	}

	headerFirst, headerLast := opt.HeaderStart+1, opt.HeaderEnd+1
	CopyRows(ws, out, headerFirst, headerLast, 1)

	// 合并表头字段单元格
	for _, mr := range ws.MergeCells {
		if mr.StartRow < headerFirst || mr.EndRow > headerLast {
			continue
		}

		out.MergeCells = append(out.MergeCells, workbook.MergeRange{
			StartRow: mr.StartRow - opt.HeaderStart,
			StartCol: mr.StartCol,
			EndRow:   mr.EndRow - opt.HeaderStart,
			EndCol:   mr.EndCol,
		})
	}

	start := opt.HeaderRows() + 1
	for i, r := range g.Rows {
		copyRow(ws.Row(r), out, start+i)
	}

	// keep the header block span even when trailing header rows are empty
	for out.MaxRow() < opt.HeaderRows() {
		out.Rows = append(out.Rows, make([]*workbook.Cell, 0))
	}

	return out
}

// Split builds one worksheet per group and hands them to emit in group order.
// Zero data rows produce zero groups, which is not an error.
func Split(ws *workbook.Worksheet, opt Options, emit func(*Result) error) error {
	groups, err := Plan(ws, opt)
	if err != nil {
		return err
	}

	if len(groups) == 0 {
		log.WithFields(log.Fields{"sheet": ws.Title, "data_start": opt.DataStart()}).
			Warningf("no data rows after the header block, nothing to split")
		return nil
	}

	title := SheetTitle(ws.Title)
	for i, g := range groups {
		name := DisplayName(ws.Lookup(g.Rows[0], opt.NameColumn+1), opt.PinyinNames)
		base := BaseName(title, name)

		res := Result{
			Index:       i,
			Group:       g,
			DisplayName: name,
			BaseName:    base,
			FileName:    base + Extension,
			Worksheet:   Build(ws, g, opt),
		}

		log.WithFields(log.Fields{"key": g.Key, "rows": len(g.Rows), "file": res.FileName}).Debugf("group built")

		if err := emit(&res); err != nil {
			return err
		}
	}

	return nil
}
