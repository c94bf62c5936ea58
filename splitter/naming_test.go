package splitter

import (
	"strings"
	"testing"
	"time"

	"github.com/mylxsw/xlsplit/workbook"
	"github.com/stretchr/testify/assert"
)

func cellOf(v interface{}) *workbook.Cell {
	c := &workbook.Cell{Row: 1, Col: 1}
	c.SetValue(v)
	return c
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, UnnamedGroup, DisplayName(nil, false))
	assert.Equal(t, UnnamedGroup, DisplayName(cellOf(nil), false))
	assert.Equal(t, UnnamedGroup, DisplayName(cellOf(""), false))
	assert.Equal(t, "Beta", DisplayName(cellOf(" Beta\t"), false))
	assert.Equal(t, "42", DisplayName(cellOf(42), false))
	assert.Equal(t, "0", DisplayName(cellOf(0), false))
	assert.Equal(t, "true", DisplayName(cellOf(true), false))
	assert.Equal(t, "=A1&B1", DisplayName(cellOf("=A1&B1"), false))
	assert.Equal(t, "2024-05-01 00:00:00", DisplayName(cellOf(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)), false))
	assert.Equal(t, "beijing", DisplayName(cellOf("北京"), true))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "Sales_Beta", BaseName("Sales", "Beta"))
	assert.Equal(t, "Sales_a_b_c", BaseName("Sales", "a/b\\c"))
	assert.Equal(t, "Q1_2024_East", BaseName("Q1/2024", "East"))

	long := BaseName("Sales", strings.Repeat("x", 100))
	assert.Len(t, long, MaxBaseNameLength)
	assert.True(t, strings.HasPrefix(long, "Sales_xxx"))

	cjk := BaseName("销售", strings.Repeat("数", 100))
	assert.Len(t, []rune(cjk), MaxBaseNameLength)
}

func TestSheetTitle(t *testing.T) {
	assert.Equal(t, "Sales", SheetTitle("  Sales "))
	assert.Equal(t, DefaultSheetTitle, SheetTitle(""))
	assert.Equal(t, DefaultSheetTitle, SheetTitle("   "))
}

func TestPinyin(t *testing.T) {
	assert.Equal(t, "beijing", Pinyin("北京"))
	assert.Equal(t, "beijing East-1", Pinyin("北京 East-1"))
	assert.Equal(t, "plain", Pinyin("plain"))
}
