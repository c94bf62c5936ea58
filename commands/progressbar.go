package commands

import (
	"github.com/schollz/progressbar/v3"
)

type Progressbar struct {
	*progressbar.ProgressBar
	enabled bool
}

func NewProgressbar(enabled bool, description string) *Progressbar {
	p := Progressbar{enabled: enabled}
	if enabled {
		p.ProgressBar = progressbar.Default(-1, description)
	}

	return &p
}

// Reset 重置进度条，max 为 -1 时显示为不确定进度
func (p *Progressbar) Reset(max int, description string) {
	if p.ProgressBar != nil {
		p.ProgressBar.Reset()
		p.ProgressBar.ChangeMax(max)
		p.ProgressBar.Describe(description)
	}
}

func (p *Progressbar) Add(count int) {
	if p.ProgressBar != nil {
		_ = p.ProgressBar.Add(count)
	}
}

func (p *Progressbar) Describe(description string) {
	if p.ProgressBar != nil {
		p.ProgressBar.Describe(description)
	}
}

func (p *Progressbar) Clear() {
	if p.ProgressBar != nil {
		_ = p.ProgressBar.Clear()
	}
}

func (p *Progressbar) Close() {
	if p.ProgressBar != nil {
		_ = p.ProgressBar.Finish()
	}
}
