package commands

import (
	"github.com/mylxsw/asteria/event"
	"github.com/mylxsw/asteria/filter"
	"github.com/mylxsw/asteria/level"
	"github.com/mylxsw/asteria/log"
	"github.com/urfave/cli/v2"
)

func BuildGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "slient", Value: false, Usage: "do not print warning log and progress"},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"D"}, Value: false, Usage: "debug mode"},
	}
}

type GlobalOption struct {
	Slient bool
	Debug  bool
}

func resolveGlobalOption(c *cli.Context) GlobalOption {
	return GlobalOption{
		Slient: c.Bool("slient"),
		Debug:  c.Bool("debug"),
	}
}

// setupLogger 根据全局参数设置日志级别
func setupLogger(opt GlobalOption) {
	if !opt.Debug {
		log.All().LogLevel(level.Info)
	}

	if opt.Slient {
		log.AddGlobalFilter(func(filter filter.Filter) filter.Filter {
			return func(evt event.Event) {
				if evt.Level == level.Warning {
					return
				}

				filter(evt)
			}
		})
	}
}
