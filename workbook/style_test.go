package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestStyleHasStyle(t *testing.T) {
	var nilStyle *Style
	assert.False(t, nilStyle.HasStyle())
	assert.False(t, (&Style{}).HasStyle())
	assert.True(t, (&Style{NumberFormat: NumberFormat{ID: 14}}).HasStyle())
	assert.True(t, (&Style{NumberFormat: NumberFormat{Code: "0.00%"}}).HasStyle())
	assert.True(t, (&Style{Alignment: &excelize.Alignment{Horizontal: "center"}}).HasStyle())
	assert.True(t, (&Style{Border: []excelize.Border{{Type: "left", Style: 1}}}).HasStyle())
}

func TestStyleCloneIsIndependent(t *testing.T) {
	theme := 4
	src := &Style{
		Font:         &excelize.Font{Bold: true, Size: 12, ColorTheme: &theme},
		Border:       []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
		Fill:         &excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}},
		NumberFormat: NumberFormat{Code: "#,##0.00"},
		Protection:   &excelize.Protection{Locked: true},
		Alignment:    &excelize.Alignment{Horizontal: "center"},
	}

	dst := src.Clone()
	require.NotNil(t, dst)
	assert.Equal(t, src, dst)

	dst.Font.Bold = false
	*dst.Font.ColorTheme = 9
	dst.Border[0].Style = 5
	dst.Fill.Color[0] = "000000"
	dst.Protection.Locked = false
	dst.Alignment.Horizontal = "left"

	assert.True(t, src.Font.Bold)
	assert.Equal(t, 4, *src.Font.ColorTheme)
	assert.Equal(t, 1, src.Border[0].Style)
	assert.Equal(t, "FFFF00", src.Fill.Color[0])
	assert.True(t, src.Protection.Locked)
	assert.Equal(t, "center", src.Alignment.Horizontal)
}

func TestStyleCloneKeepsMissingParts(t *testing.T) {
	src := &Style{Font: &excelize.Font{Italic: true}}
	dst := src.Clone()

	assert.NotSame(t, src.Font, dst.Font)
	assert.Nil(t, dst.Border)
	assert.Nil(t, dst.Fill)
	assert.Nil(t, dst.Protection)
	assert.Nil(t, dst.Alignment)
	assert.True(t, dst.NumberFormat.IsZero())

	var nilStyle *Style
	assert.Nil(t, nilStyle.Clone())
}

func TestStyleFromExcelize(t *testing.T) {
	code := "yyyy-mm-dd"
	s := styleFromExcelize(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &code,
	})

	require.NotNil(t, s)
	assert.True(t, s.Font.Bold)
	assert.Nil(t, s.Fill)
	assert.Nil(t, s.Border)
	assert.Equal(t, NumberFormat{Code: "yyyy-mm-dd"}, s.NumberFormat)

	es := s.excelizeStyle()
	require.NotNil(t, es.CustomNumFmt)
	assert.Equal(t, "yyyy-mm-dd", *es.CustomNumFmt)
	assert.NotSame(t, s.Font, es.Font)
}
