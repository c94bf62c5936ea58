package workbook

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
	"github.com/xuri/excelize/v2"
)

// NumberFormat is either a built-in format id or a custom format code
type NumberFormat struct {
	ID   int
	Code string
}

// IsZero reports whether the format is the General format
func (n NumberFormat) IsZero() bool {
	return n.ID == 0 && n.Code == ""
}

// Style holds the visual parts of a cell, every part is optional
type Style struct {
	Font         *excelize.Font
	Border       []excelize.Border
	Fill         *excelize.Fill
	NumberFormat NumberFormat
	Protection   *excelize.Protection
	Alignment    *excelize.Alignment
}

// HasStyle reports whether any part of the style is set
func (s *Style) HasStyle() bool {
	if s == nil {
		return false
	}

	return s.Font != nil ||
		len(s.Border) > 0 ||
		s.Fill != nil ||
		!s.NumberFormat.IsZero() ||
		s.Protection != nil ||
		s.Alignment != nil
}

// Clone returns a deep copy of the style, nil stays nil
func (s *Style) Clone() *Style {
	if s == nil {
		return nil
	}

	return &Style{
		Font:         ClonePart(s.Font),
		Border:       CloneBorder(s.Border),
		Fill:         ClonePart(s.Fill),
		NumberFormat: s.NumberFormat,
		Protection:   ClonePart(s.Protection),
		Alignment:    ClonePart(s.Alignment),
	}
}

// ClonePart deep copies a single style part.
// Style parts are plain data, a failing copy is a programming error.
func ClonePart[T any](src *T) *T {
	if src == nil {
		return nil
	}

	var dst T
	if err := deepcopy.Copy(&dst, *src); err != nil {
		panic(fmt.Errorf("clone style part %T failed: %w", src, err))
	}

	return &dst
}

// CloneBorder deep copies the border part
func CloneBorder(src []excelize.Border) []excelize.Border {
	if src == nil {
		return nil
	}

	var dst []excelize.Border
	if err := deepcopy.Copy(&dst, src); err != nil {
		panic(fmt.Errorf("clone border failed: %w", err))
	}

	return dst
}

// styleFromExcelize converts the library style definition into a Style
func styleFromExcelize(es *excelize.Style) *Style {
	if es == nil {
		return nil
	}

	s := Style{
		Font:         es.Font,
		Protection:   es.Protection,
		Alignment:    es.Alignment,
		NumberFormat: NumberFormat{ID: es.NumFmt},
	}

	if len(es.Border) > 0 {
		s.Border = es.Border
	}

	if es.Fill.Type == "gradient" || es.Fill.Pattern != 0 || len(es.Fill.Color) > 0 {
		fill := es.Fill
		s.Fill = &fill
	}

	if es.CustomNumFmt != nil && *es.CustomNumFmt != "" {
		s.NumberFormat = NumberFormat{Code: *es.CustomNumFmt}
	}

	return &s
}

// excelizeStyle converts s into a library style definition, the parts are
// copied so the returned value never aliases s
func (s *Style) excelizeStyle() *excelize.Style {
	c := s.Clone()

	es := excelize.Style{
		Font:       c.Font,
		Border:     c.Border,
		Protection: c.Protection,
		Alignment:  c.Alignment,
		NumFmt:     c.NumberFormat.ID,
	}

	if c.Fill != nil {
		es.Fill = *c.Fill
	}

	if c.NumberFormat.Code != "" {
		code := c.NumberFormat.Code
		es.CustomNumFmt = &code
	}

	return &es
}
