package timetable

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// DefaultCellColor fills cells that do not set a colour.
const DefaultCellColor = "#F4F4F4"

// Field positions inside a cell. The names double as the CSS class of the
// text element.
const (
	FieldSubject = iota
	FieldTopic
	FieldTeacher
	FieldRoom
	fieldCount
)

var fieldLabels = [fieldCount]string{"sbj", "top", "tch", "clsr"}

// linkedFields maps link slots to the fields they wrap.
var linkedFields = [3]int{FieldSubject, FieldTeacher, FieldRoom}

// GridCell is one labelled rectangle of the grid.
type GridCell struct {
	Row, Col         int
	RowSpan, ColSpan int // zero means one
	Fields           [fieldCount]string
	Color            string
	// Links hold optional targets for the subject, teacher and room fields.
	Links [3]string
	// Width overrides the pixel width derived from ColSpan.
	Width int
}

// Geometry converts grid coordinates into pixels.
type Geometry struct {
	CellWidth  int `json:"cell_width"`
	CellHeight int `json:"cell_height"`
	OriginX    int `json:"origin_x"`
	OriginY    int `json:"origin_y"`
	FontSize   int `json:"font_size"`
}

// Rect returns the pixel rectangle covered by c.
func (g Geometry) Rect(c GridCell) (x, y, w, h int) {
	x = g.OriginX + c.Col*g.CellWidth
	y = g.OriginY + c.Row*g.CellHeight
	w = span(c.ColSpan) * g.CellWidth
	if c.Width > 0 {
		w = c.Width
	}
	h = span(c.RowSpan) * g.CellHeight
	return x, y, w, h
}

func span(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// RenderCell renders c as an SVG fragment. The cell is drawn in its own
// viewport so text longer than the cell is clipped at its border.
func RenderCell(c GridCell, g Geometry) string {
	x, y, w, h := g.Rect(c)
	color := c.Color
	if color == "" {
		color = DefaultCellColor
	}
	var b strings.Builder
	b.WriteString(`<svg x="`)
	b.WriteString(strconv.Itoa(x))
	b.WriteString(`" y="`)
	b.WriteString(strconv.Itoa(y))
	b.WriteString(`" width="`)
	b.WriteString(strconv.Itoa(w))
	b.WriteString(`" height="`)
	b.WriteString(strconv.Itoa(h))
	b.WriteString(`" overflow="hidden"><rect width="`)
	b.WriteString(strconv.Itoa(w))
	b.WriteString(`" height="`)
	b.WriteString(strconv.Itoa(h))
	b.WriteString(`" fill="`)
	escape(&b, color)
	b.WriteString(`" stroke="#000000" stroke-width="1"/>`)

	line := 0
	for i, text := range c.Fields {
		if text == "" {
			continue
		}
		line++
		link := linkFor(c, i)
		if link != "" {
			b.WriteString(`<a xlink:href="`)
			escape(&b, link)
			b.WriteString(`">`)
		}
		b.WriteString(`<text class="`)
		b.WriteString(fieldLabels[i])
		b.WriteString(`" x="3" y="`)
		b.WriteString(strconv.Itoa(line * (g.FontSize + 2)))
		b.WriteString(`" font-size="`)
		b.WriteString(strconv.Itoa(g.FontSize))
		b.WriteString(`">`)
		escape(&b, text)
		b.WriteString(`</text>`)
		if link != "" {
			b.WriteString(`</a>`)
		}
	}
	b.WriteString(`</svg>`)
	return b.String()
}

func linkFor(c GridCell, field int) string {
	for i, f := range linkedFields {
		if f == field {
			return c.Links[i]
		}
	}
	return ""
}

func escape(b *strings.Builder, s string) {
	// strings.Builder never fails to write.
	_ = xml.EscapeText(b, []byte(s))
}
