package timetable

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/rozvrh-svg/rozvrh/core/model"
)

// Weekly view placement of the navigation column.
const (
	navColumn   = 6
	prevWeekRow = 1
	titleRow    = 2
	nextWeekRow = 3

	maxSubjectRunes = 27
	maxTopicRunes   = 32
)

var dayNames = [5]string{"Po", "Út", "St", "Čt", "Pá"}

// WeeklyQuery selects the week and the entity shown by the weekly view.
type WeeklyQuery struct {
	Class model.EntityClass
	ID    string
	// Start is the first day of the displayed range, normally the Sunday
	// before the displayed Monday.
	Start time.Time
}

// End returns the last day of the displayed range.
func (q WeeklyQuery) End() time.Time { return q.Start.AddDate(0, 0, 6) }

// WeekStart returns the Sunday before the week containing t.
func WeekStart(t time.Time) time.Time {
	d := model.DateOf(t)
	offset := (int(d.Weekday()) + 6) % 7 // days since Monday
	return d.AddDays(-offset - 1).Time()
}

// NavigationLink returns the relative link to the weekly view of the same
// entity starting at start.
func NavigationLink(class model.EntityClass, id string, start time.Time) string {
	v := url.Values{}
	v.Set("type", class.Tag())
	v.Set("filterID", id)
	v.Set("start", model.DateOf(start).String())
	return "./?" + v.Encode()
}

// Weekly builds the weekly view of q from events.
func Weekly(events []model.Event, q WeeklyQuery, g Geometry) (Result, error) {
	matched, err := Filter(events, q.Class, q.ID, q.Start, q.End())
	if err != nil {
		return Result{}, err
	}
	lessons, err := ExtractAll(matched)
	if err != nil {
		return Result{}, fmt.Errorf("weekly view: %w", err)
	}
	res := Result{Title: ResolveTitle(events, q.Class, q.ID)}
	cells := weeklyFrame(q, res.Title)
	for _, l := range lessons {
		row := WeeklyRow(l.StartTime)
		col := WeeklyColumn(l.Date, q.Start)
		if row == NoPosition || col == NoPosition {
			res.Skipped = append(res.Skipped, l)
			continue
		}
		cells = append(cells, weeklyLessonCell(l, row, col))
		res.Lessons = append(res.Lessons, l)
	}
	res.Document = Document{Geometry: g, Cells: cells}
	return res, nil
}

// weeklyFrame returns the static cells: slot labels, title, navigation and
// day headers.
func weeklyFrame(q WeeklyQuery, title string) []GridCell {
	cells := make([]GridCell, 0, len(WeeklySlots)+8)
	for row, label := range WeeklySlots {
		cells = append(cells, GridCell{Row: row, Col: -1, Fields: [4]string{label}, Color: ColorPlain})
	}
	cells = append(cells,
		GridCell{Row: titleRow, Col: navColumn, Fields: [4]string{title}, Color: "#00BBFF"},
		GridCell{
			Row: prevWeekRow, Col: navColumn, Fields: [4]string{"Předchozí týden"}, Color: "#00DFFF",
			Links: [3]string{NavigationLink(q.Class, q.ID, q.Start.AddDate(0, 0, -7))},
		},
		GridCell{
			Row: nextWeekRow, Col: navColumn, Fields: [4]string{"Příští týden"}, Color: "#00DFFF",
			Links: [3]string{NavigationLink(q.Class, q.ID, q.Start.AddDate(0, 0, 7))},
		},
	)
	from := model.DateOf(q.Start)
	for i := 0; i < 7; i++ {
		d := from.AddDays(i)
		col := weekdayIndex(d)
		if col == NoPosition {
			continue
		}
		cells = append(cells, GridCell{
			Row:    -1,
			Col:    col,
			Fields: [4]string{strconv.Itoa(d.Day) + "." + strconv.Itoa(int(d.Month)) + ".", dayNames[col]},
			Color:  ColorPlain,
		})
	}
	return cells
}

func weeklyLessonCell(l model.Lesson, row, col int) GridCell {
	c := GridCell{
		Row: row,
		Col: col,
		Fields: [4]string{
			truncate(l.SubjectName, maxSubjectRunes),
			truncate(l.Topic, maxTopicRunes),
			l.TeacherName,
			l.RoomName,
		},
	}
	if l.TeacherID != "" {
		c.Links[1] = "/teacher/?id=" + url.QueryEscape(l.TeacherID)
	}
	if l.RoomID != "" {
		c.Links[2] = "/classroom/?id=" + url.QueryEscape(l.RoomID)
	}
	return c
}
