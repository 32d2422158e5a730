package timetable

import "github.com/rozvrh-svg/rozvrh/core/model"

// Layout holds the geometry of both views.
type Layout struct {
	Weekly   Geometry `json:"weekly"`
	Semester Geometry `json:"semester"`
}

// DefaultLayout returns the geometry used when nothing is configured. Both
// views fit the fixed 3000x1400 document.
func DefaultLayout() Layout {
	return Layout{
		Weekly:   Geometry{CellWidth: 220, CellHeight: 110, OriginX: 220, OriginY: 110, FontSize: 14},
		Semester: Geometry{CellWidth: 96, CellHeight: 15, OriginX: 0, OriginY: 0, FontSize: 10},
	}
}

// SetDefaults fills unset geometry fields from DefaultLayout. Origins are
// left alone since zero is a valid origin.
func (l *Layout) SetDefaults() {
	def := DefaultLayout()
	fill(&l.Weekly, def.Weekly)
	fill(&l.Semester, def.Semester)
}

func fill(g *Geometry, def Geometry) {
	if g.CellWidth <= 0 {
		g.CellWidth = def.CellWidth
		g.OriginX = def.OriginX
	}
	if g.CellHeight <= 0 {
		g.CellHeight = def.CellHeight
		g.OriginY = def.OriginY
	}
	if g.FontSize <= 0 {
		g.FontSize = def.FontSize
	}
}

// Result is a built view.
type Result struct {
	Document Document
	Title    string
	// Lessons are the lessons placed on the grid, in input order.
	Lessons []model.Lesson
	// Skipped are matching lessons without a grid position, such as an
	// unknown start time or a weekend date.
	Skipped []model.Lesson
}

// SVG renders the document.
func (r Result) SVG() string { return r.Document.String() }
