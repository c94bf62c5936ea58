package commands

import (
	"fmt"

	"github.com/mylxsw/asteria/log"
)

// Logger 缓存处理过程中的事件，在进度条结束后统一输出
type Logger struct {
	Events []string
}

func NewLogger() *Logger {
	return &Logger{Events: make([]string, 0)}
}

func (lo *Logger) Add(event string) {
	lo.Events = append(lo.Events, event)
}

func (lo *Logger) Addf(format string, args ...interface{}) {
	lo.Add(fmt.Sprintf(format, args...))
}

func (lo *Logger) Flush() {
	for _, evt := range lo.Events {
		log.Infof("%s", evt)
	}

	lo.Events = lo.Events[:0]
}
