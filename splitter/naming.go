package splitter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mozillazg/go-pinyin"
	"github.com/mylxsw/xlsplit/workbook"
)

const (
	// UnnamedGroup is the display name of a group without a name value
	UnnamedGroup = "Unnamed"
	// DefaultSheetTitle is used when the source worksheet has no title
	DefaultSheetTitle = "Sheet"
	// MaxBaseNameLength is the longest file name, extension excluded
	MaxBaseNameLength = 80
	// Extension of every generated file
	Extension = ".xlsx"
)

var pathSeparatorReplacer = strings.NewReplacer("/", "_", "\\", "_")

// SheetTitle returns the trimmed title of a worksheet, DefaultSheetTitle when empty
func SheetTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return DefaultSheetTitle
	}

	return title
}

// DisplayName derives the group name from the name cell of its first row
func DisplayName(cell *workbook.Cell, transliterate bool) string {
	if cell == nil || cell.Value == nil {
		return UnnamedGroup
	}

	if s, ok := cell.Value.(string); ok && s == "" {
		return UnnamedGroup
	}

	name := strings.TrimSpace(FormatValue(cell))
	if transliterate {
		name = Pinyin(name)
	}

	return name
}

// BaseName builds "{title}_{name}" with path separators replaced, cut to MaxBaseNameLength
func BaseName(title string, name string) string {
	return workbook.Truncate(pathSeparatorReplacer.Replace(title+"_"+name), MaxBaseNameLength)
}

// FormatValue renders a cell value as text
func FormatValue(cell *workbook.Cell) string {
	if cell == nil {
		return ""
	}

	if cell.IsFormula() {
		return cell.Formula()
	}

	switch v := cell.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	}

	return fmt.Sprint(cell.Value)
}

// Pinyin transliterates Han characters, everything else is kept as is
func Pinyin(s string) string {
	arg := pinyin.NewArgs()
	arg.Fallback = func(r rune, a pinyin.Args) []string {
		return []string{string(r)}
	}

	return strings.Join(pinyin.LazyPinyin(s, arg), "")
}
