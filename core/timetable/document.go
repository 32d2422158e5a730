package timetable

import "strings"

// Document framing. The header opens the root element and the group wrapping
// all cells, the footer closes both.
const (
	DocumentWidth  = 3000
	DocumentHeight = 1400

	SVGHeader = `<svg width="3000" height="1400" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" overflow="hidden"><g>`
	SVGFooter = `</g></svg>`
)

// Assemble renders cells in order between header and footer. Later cells
// paint over earlier ones; overlaps are not checked.
func Assemble(header string, cells []GridCell, footer string, g Geometry) string {
	var b strings.Builder
	b.WriteString(header)
	for _, c := range cells {
		b.WriteString(RenderCell(c, g))
	}
	b.WriteString(footer)
	return b.String()
}

// Document is an SVG timetable before rendering.
type Document struct {
	Geometry Geometry
	Cells    []GridCell
}

// String renders the document with the standard header and footer.
func (d Document) String() string {
	return Assemble(SVGHeader, d.Cells, SVGFooter, d.Geometry)
}
