package timetable

import "github.com/rozvrh-svg/rozvrh/core/model"

// LegendFirstRow is the semester view row of the first legend entry.
const LegendFirstRow = 76

// legendNameWidth is the pixel width of legend name cells.
const legendNameWidth = 231

const (
	subjectKeyCol  = 0
	subjectNameCol = 1
	teacherKeyCol  = 9
	teacherNameCol = 10
)

// Table is an insertion ordered abbreviation table. Setting an existing key
// replaces its value but keeps its position.
type Table struct {
	keys   []string
	values map[string]string
}

func newTable() *Table {
	return &Table{values: make(map[string]string)}
}

// Set stores value under key.
func (t *Table) Set(key, value string) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of keys.
func (t *Table) Len() int { return len(t.keys) }

// Legend holds the abbreviations used by the semester view.
type Legend struct {
	Teachers *Table
	Subjects *Table
}

// BuildLegend collects teacher initials and subject shortcuts in lesson
// order. Two teachers sharing initials end up as one entry holding the name
// seen last.
func BuildLegend(lessons []model.Lesson) Legend {
	l := Legend{Teachers: newTable(), Subjects: newTable()}
	for _, ls := range lessons {
		if k := Initials(ls.TeacherName); k != "" {
			l.Teachers.Set(k, ls.TeacherName)
		}
		if k := SubjectShortcut(ls.SubjectName); k != "" {
			l.Subjects.Set(k, ls.SubjectName)
		}
	}
	return l
}

// Cells lays out both tables below the semester grid, subjects on the left
// and teachers further right.
func (l Legend) Cells() []GridCell {
	cells := make([]GridCell, 0, 2*(l.Subjects.Len()+l.Teachers.Len()))
	cells = appendTable(cells, l.Subjects, subjectKeyCol, subjectNameCol, "#A0DAFF", "#B0FFFF")
	cells = appendTable(cells, l.Teachers, teacherKeyCol, teacherNameCol, "#55FFAA", "#AAFF00")
	return cells
}

func appendTable(cells []GridCell, t *Table, keyCol, nameCol int, keyColor, nameColor string) []GridCell {
	row := LegendFirstRow
	for _, k := range t.keys {
		cells = append(cells,
			GridCell{Row: row, Col: keyCol, Fields: [4]string{k}, Color: keyColor},
			GridCell{Row: row, Col: nameCol, Fields: [4]string{t.values[k]}, Color: nameColor, Width: legendNameWidth},
		)
		row++
	}
	return cells
}
