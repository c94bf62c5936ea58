package commands

import (
	"fmt"
	"strings"

	"github.com/mylxsw/go-utils/array"
	"github.com/mylxsw/xlsplit/reader"
	"github.com/mylxsw/xlsplit/render"
	"github.com/urfave/cli/v2"
	"github.com/xuri/excelize/v2"
)

type PreviewOption struct {
	GlobalOption
	InputFile string
	Sheet     string
	HeaderEnd int
	Rows      int
	Format    string
	NoHeader  bool
}

func BuildPreviewFlags() []cli.Flag {
	return append(BuildGlobalFlags(), []cli.Flag{
		&cli.StringFlag{Name: "file", Aliases: []string{"i", "input"}, Usage: "input excel file path, currently only support xlsx format", Required: true},
		&cli.StringFlag{Name: "sheet", Aliases: []string{"s"}, Usage: "the sheet to preview, default the first sheet"},
		&cli.IntFlag{Name: "header-end", Aliases: []string{"r"}, Value: 1, Usage: "last row of the table header, 0-indexed, column options are taken from this row"},
		&cli.IntFlag{Name: "rows", Aliases: []string{"l"}, Value: reader.DefaultPreviewRows, Usage: "number of rows to show"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "table", Usage: "output format, support table, markdown, csv, html, json, yaml, xml, plain"},
		&cli.BoolFlag{Name: "no-header", Value: false, Usage: "do not write the column letters header"},
	}...)
}

func resolvePreviewOption(c *cli.Context) PreviewOption {
	return PreviewOption{
		GlobalOption: resolveGlobalOption(c),
		InputFile:    c.String("file"),
		Sheet:        c.String("sheet"),
		HeaderEnd:    c.Int("header-end"),
		Rows:         c.Int("rows"),
		Format:       c.String("format"),
		NoHeader:     c.Bool("no-header"),
	}
}

// PreviewCommand 输出工作表的前几行以及可供选择的列
func PreviewCommand(c *cli.Context) error {
	opt := resolvePreviewOption(c)
	setupLogger(opt.GlobalOption)

	p, err := reader.PreviewFile(opt.InputFile, opt.Sheet, opt.HeaderEnd, opt.Rows)
	if err != nil {
		return err
	}

	width := 0
	for _, row := range p.Rows {
		width = max(width, len(row))
	}

	colNames := make([]string, 0, width)
	for i := 1; i <= width; i++ {
		name, err := excelize.ColumnNumberToName(i)
		if err != nil {
			return err
		}
		colNames = append(colNames, name)
	}

	buf, err := render.Render(opt.Format, opt.NoHeader, colNames, render.Rows(colNames, p.Rows))
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "sheets: %s, current: %s\n", strings.Join(p.Sheets, ", "), p.Sheet)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	fmt.Fprintf(w, "columns of row %d:\n", opt.HeaderEnd)
	for _, line := range array.Map(p.Columns(), func(col string, _ int) string { return "  " + col }) {
		fmt.Fprintln(w, line)
	}

	return nil
}
