package main

import (
	"fmt"
	"os"

	"github.com/mylxsw/asteria/log"
	"github.com/mylxsw/xlsplit/commands"
	"github.com/urfave/cli/v2"
)

var (
	// Git 版本
	GitCommit string
	// 应用版本
	Version string
)

func main() {
	app := &cli.App{
		Name:    "xlsplit",
		Usage:   "split the rows of an excel worksheet into files grouped by a column",
		Version: fmt.Sprintf("%s (%s)", Version, GitCommit),
		Commands: []*cli.Command{
			{
				Name:   "split",
				Usage:  "split a worksheet into one file per distinct value of a column, packed into a zip archive",
				Flags:  commands.BuildSplitFlags(),
				Action: commands.SplitCommand,
			},
			{
				Name:   "preview",
				Usage:  "show the first rows of a worksheet and the columns that can be selected",
				Flags:  commands.BuildPreviewFlags(),
				Action: commands.PreviewCommand,
			},
			{
				Name:   "serve",
				Usage:  "start a http server with an upload form",
				Flags:  commands.BuildServeFlags(),
				Action: commands.ServeCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
