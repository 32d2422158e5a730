package timetable

import (
	"fmt"
	"time"

	"github.com/rozvrh-svg/rozvrh/core/model"
)

const maxRoomRunes = 4

// SemesterQuery selects the range and the entity shown by the semester view.
type SemesterQuery struct {
	Class model.EntityClass
	ID    string
	Start time.Time
	End   time.Time
}

// Semester builds the semester overview of q from events.
func Semester(events []model.Event, q SemesterQuery, g Geometry) (Result, error) {
	matched, err := Filter(events, q.Class, q.ID, q.Start, q.End)
	if err != nil {
		return Result{}, err
	}
	lessons, err := ExtractAll(matched)
	if err != nil {
		return Result{}, fmt.Errorf("semester view: %w", err)
	}
	cal := BuildSemesterCalendar(q.Start, q.End)
	res := Result{Title: ResolveTitle(events, q.Class, q.ID)}
	cells := semesterLabels()
	cells = append(cells, cal.Cells()...)
	for _, l := range lessons {
		col, ok := cal.Column(l.Date)
		row := SemesterRow(l.Date, l.StartTime)
		if !ok || row == NoPosition {
			res.Skipped = append(res.Skipped, l)
			continue
		}
		cells = append(cells, GridCell{
			Row:     row,
			Col:     col,
			RowSpan: semesterSlotPitch,
			Fields: [4]string{
				FieldSubject: SubjectShortcut(l.SubjectName),
				FieldTeacher: Initials(l.TeacherName),
				FieldRoom:    truncate(l.RoomName, maxRoomRunes),
			},
			Color: cal.ColumnColor(col),
		})
		res.Lessons = append(res.Lessons, l)
	}
	cells = append(cells, BuildLegend(res.Lessons).Cells()...)
	res.Document = Document{Geometry: g, Cells: cells}
	return res, nil
}

// semesterLabels returns the weekday names in column 0 and the slot labels
// in column 1.
func semesterLabels() []GridCell {
	var cells []GridCell
	for day := 0; day < len(dayNames); day++ {
		slots := len(SemesterSlots)
		if day == 4 {
			slots = 3
		}
		offset := weekdayRowOffset(day)
		cells = append(cells, GridCell{
			Row:     offset + semesterFirstSlotRow,
			Col:     0,
			RowSpan: slots * semesterSlotPitch,
			Fields:  [4]string{dayNames[day]},
			Color:   "#00FFAA",
		})
		for s := 0; s < slots; s++ {
			cells = append(cells, GridCell{
				Row:     offset + s*semesterSlotPitch + semesterFirstSlotRow,
				Col:     1,
				RowSpan: semesterSlotPitch,
				Fields:  [4]string{SemesterSlots[s]},
				Color:   "#AACCFF",
			})
		}
	}
	return cells
}
