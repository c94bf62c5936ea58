package commands

import (
	"fmt"
	"strconv"

	"github.com/mylxsw/asteria/log"
	"github.com/mylxsw/go-utils/array"
	"github.com/mylxsw/go-utils/ternary"
	"github.com/mylxsw/xlsplit/archive"
	"github.com/mylxsw/xlsplit/config"
	"github.com/mylxsw/xlsplit/render"
	"github.com/mylxsw/xlsplit/splitter"
	"github.com/mylxsw/xlsplit/workbook"
	"github.com/urfave/cli/v2"
)

type SplitOption struct {
	GlobalOption
	InputFile  string
	Output     string
	OutputDir  string
	Format     string
	NoHeader   bool
	SaveConfig string
	Split      splitter.Options
	Job        config.Job
}

func BuildSplitFlags() []cli.Flag {
	def := config.DefaultJob()
	return append(BuildGlobalFlags(), []cli.Flag{
		&cli.StringFlag{Name: "file", Aliases: []string{"i", "input"}, Usage: "input excel file path, currently only support xlsx format"},
		&cli.StringFlag{Name: "sheet", Aliases: []string{"s"}, Value: def.Sheet, Usage: "the sheet to split, default the first sheet"},
		&cli.IntFlag{Name: "header-start", Value: def.HeaderStart, Usage: "first row of the table header, 0-indexed"},
		&cli.IntFlag{Name: "header-end", Aliases: []string{"r"}, Value: def.HeaderEnd, Usage: "last row of the table header, 0-indexed"},
		&cli.StringFlag{Name: "split-column", Aliases: []string{"c"}, Value: def.SplitColumn, Usage: "the column rows are grouped by, an index in the header row such as '2', or a column name such as 'C'"},
		&cli.StringFlag{Name: "name-column", Aliases: []string{"n"}, Value: def.NameColumn, Usage: "the column file names are taken from, an index or a column name"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: def.Output, Usage: "the zip archive to write"},
		&cli.StringFlag{Name: "output-dir", Value: def.OutputDir, Usage: "write files into a directory instead of a zip archive"},
		&cli.BoolFlag{Name: "unique-names", Value: def.UniqueNames, Usage: "append a number to duplicated file names instead of overwriting the earlier file"},
		&cli.BoolFlag{Name: "pinyin-names", Value: def.PinyinNames, Usage: "convert chinese characters in file names to pinyin"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: def.Format, Usage: "report format, support table, markdown, csv, html, json, yaml, xml, plain"},
		&cli.BoolFlag{Name: "no-header", Value: false, Usage: "do not write the report header"},
		&cli.StringFlag{Name: "config", Usage: "load the split job from a toml file, flags set explicitly take precedence"},
		&cli.StringFlag{Name: "save-config", Usage: "save the resolved split job to a toml file"},
	}...)
}

func resolveSplitOption(c *cli.Context) (SplitOption, error) {
	job := config.DefaultJob()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadJob(path)
		if err != nil {
			return SplitOption{}, err
		}

		job = *loaded
	}

	overrideString(c, "file", &job.Input)
	overrideString(c, "sheet", &job.Sheet)
	overrideString(c, "split-column", &job.SplitColumn)
	overrideString(c, "name-column", &job.NameColumn)
	overrideString(c, "output", &job.Output)
	overrideString(c, "output-dir", &job.OutputDir)
	overrideString(c, "format", &job.Format)

	if c.IsSet("header-start") {
		job.HeaderStart = c.Int("header-start")
	}
	if c.IsSet("header-end") {
		job.HeaderEnd = c.Int("header-end")
	}
	if c.IsSet("unique-names") {
		job.UniqueNames = c.Bool("unique-names")
	}
	if c.IsSet("pinyin-names") {
		job.PinyinNames = c.Bool("pinyin-names")
	}

	if job.Input == "" {
		return SplitOption{}, fmt.Errorf("input file (--file) is required")
	}

	splitColumn, err := splitter.ParseColumn(job.SplitColumn)
	if err != nil {
		return SplitOption{}, fmt.Errorf("split-column: %w", err)
	}

	nameColumn, err := splitter.ParseColumn(job.NameColumn)
	if err != nil {
		return SplitOption{}, fmt.Errorf("name-column: %w", err)
	}

	return SplitOption{
		GlobalOption: resolveGlobalOption(c),
		InputFile:    job.Input,
		Output:       ternary.If(job.Output == "", archive.DefaultName, job.Output),
		OutputDir:    job.OutputDir,
		Format:       job.Format,
		NoHeader:     c.Bool("no-header"),
		SaveConfig:   c.String("save-config"),
		Split: splitter.Options{
			Sheet:       job.Sheet,
			HeaderStart: job.HeaderStart,
			HeaderEnd:   job.HeaderEnd,
			SplitColumn: splitColumn,
			NameColumn:  nameColumn,
			UniqueNames: job.UniqueNames,
			PinyinNames: job.PinyinNames,
		},
		Job: job,
	}, nil
}

func overrideString(c *cli.Context, name string, target *string) {
	if c.IsSet(name) {
		*target = c.String(name)
	}
}

// SplitCommand 按照指定列的值将工作表拆分为多个文件
func SplitCommand(c *cli.Context) error {
	opt, err := resolveSplitOption(c)
	if err != nil {
		return err
	}

	setupLogger(opt.GlobalOption)

	if opt.SaveConfig != "" {
		if err := config.SaveJob(opt.SaveConfig, opt.Job); err != nil {
			return err
		}
	}

	logger := NewLogger()
	defer logger.Flush()

	prg := NewProgressbar(!opt.Slient, "opening src file ...")
	defer prg.Close()

	ws, err := workbook.Open(opt.InputFile, opt.Split.Sheet)
	if err != nil {
		return err
	}

	prg.Reset(-1, "grouping ...")

	groups, err := splitter.Plan(ws, opt.Split)
	if err != nil {
		return err
	}

	prg.Reset(len(groups), "splitting ...")

	arc := archive.New(opt.Split.UniqueNames)
	reports, err := splitter.SplitToArchive(ws, opt.Split, arc, func(res *splitter.Result) {
		prg.Add(1)
		log.WithFields(log.Fields{"file": res.FileName, "rows": len(res.Group.Rows)}).Debugf("worksheet generated")
	})
	if err != nil {
		return err
	}

	prg.Reset(arc.Len(), "writing files ...")

	if opt.OutputDir != "" {
		files, err := arc.Extract(opt.OutputDir)
		if err != nil {
			return err
		}

		for _, f := range files {
			prg.Add(1)
			logger.Addf("file %s saved", f)
		}
	} else {
		if err := arc.SaveAs(opt.Output); err != nil {
			return err
		}

		prg.Add(arc.Len())
		logger.Addf("archive %s saved, %d files", opt.Output, arc.Len())
	}

	prg.Clear()

	return writeReport(c, opt.Format, opt.NoHeader, reports)
}

var reportColumns = []string{"#", "key", "name", "file", "rows"}

func writeReport(c *cli.Context, format string, noHeader bool, reports []splitter.Report) error {
	kvs := array.Map(reports, func(r splitter.Report, _ int) map[string]interface{} {
		return map[string]interface{}{
			"#":    strconv.Itoa(r.Index),
			"key":  ternary.If(r.Key == nil, "", fmt.Sprint(r.Key)),
			"name": r.Name,
			"file": r.File,
			"rows": r.Rows,
		}
	})

	buf, err := render.Render(format, noHeader, reportColumns, kvs)
	if err != nil {
		return err
	}

	_, err = c.App.Writer.Write(buf.Bytes())
	return err
}
