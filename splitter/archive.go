package splitter

import (
	"fmt"

	"github.com/mylxsw/xlsplit/archive"
	"github.com/mylxsw/xlsplit/workbook"
)

// Report describes one generated file
type Report struct {
	Index int         `json:"index" yaml:"index"`
	Key   interface{} `json:"key" yaml:"key"`
	Name  string      `json:"name" yaml:"name"`
	File  string      `json:"file" yaml:"file"`
	Rows  int         `json:"rows" yaml:"rows"`
}

// SplitToArchive splits ws and stores every generated workbook in arc.
// onResult, when not nil, is called after each file is stored.
func SplitToArchive(ws *workbook.Worksheet, opt Options, arc *archive.Archive, onResult func(*Result)) ([]Report, error) {
	reports := make([]Report, 0)

	err := Split(ws, opt, func(res *Result) error {
		data, err := workbook.Bytes(res.Worksheet)
		if err != nil {
			return fmt.Errorf("write %s failed: %w", res.FileName, err)
		}

		reports = append(reports, Report{
			Index: res.Index + 1,
			Key:   res.Group.Key,
			Name:  res.DisplayName,
			File:  arc.Add(res.FileName, data),
			Rows:  len(res.Group.Rows),
		})

		if onResult != nil {
			onResult(res)
		}

		return nil
	})

	return reports, err
}
