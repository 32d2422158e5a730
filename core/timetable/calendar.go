package timetable

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rozvrh-svg/rozvrh/core/model"
)

// Semester calendar colours.
const (
	ColorFirstMonth = "#FFCCAA"
	ColorPlain      = "#FFFFFF"
	colorMonthLabel = "#FFAA00"
	colorDayNumber  = "#FFFF00"
)

// FirstSemesterColumn is the column of the first calendar week. Columns 0
// and 1 hold the weekday and slot labels.
const FirstSemesterColumn = 2

// SemesterCalendar maps the days of a semester to view columns. It is the
// fold state of a walk through the semester one day at a time: the column
// counter advances on every Sunday, Saturdays are skipped.
type SemesterCalendar struct {
	columns    map[model.Date]int
	days       []model.Date
	months     []monthLabel
	firstMonth map[int]bool
	advances   int
	lastColumn int
}

type monthLabel struct {
	col  int
	date model.Date
}

// BuildSemesterCalendar walks [start, end] and records the column of every
// weekday together with the columns starting a month.
func BuildSemesterCalendar(start, end time.Time) *SemesterCalendar {
	c := &SemesterCalendar{
		columns:    make(map[model.Date]int),
		firstMonth: make(map[int]bool),
		lastColumn: FirstSemesterColumn,
	}
	last := model.DateOf(end)
	col := FirstSemesterColumn
	for d := model.DateOf(start); d.Compare(last) <= 0; d = d.AddDays(1) {
		if d.Day == 1 || col == FirstSemesterColumn {
			// A month starting mid-week is attributed to the next week.
			mc := col
			if d.Weekday() != time.Monday {
				mc = col + 1
			}
			if !c.firstMonth[mc] {
				c.firstMonth[mc] = true
				c.months = append(c.months, monthLabel{col: mc, date: d})
			}
		}
		switch d.Weekday() {
		case time.Saturday:
			continue
		case time.Sunday:
			col++
			c.advances++
			continue
		}
		c.columns[d] = col
		c.days = append(c.days, d)
		c.lastColumn = col
	}
	return c
}

// Column returns the column of d and whether d is a weekday of the semester.
func (c *SemesterCalendar) Column(d model.Date) (int, bool) {
	col, ok := c.columns[d]
	return col, ok
}

// IsFirstMonthColumn reports whether col is the first week of a month.
func (c *SemesterCalendar) IsFirstMonthColumn(col int) bool {
	return c.firstMonth[col]
}

// ColumnColor returns the background colour of col.
func (c *SemesterCalendar) ColumnColor(col int) string {
	if c.IsFirstMonthColumn(col) {
		return ColorFirstMonth
	}
	return ColorPlain
}

// WeekAdvances returns how many times the column counter advanced.
func (c *SemesterCalendar) WeekAdvances() int { return c.advances }

// Days returns the weekdays that received a column, in calendar order.
func (c *SemesterCalendar) Days() []model.Date {
	out := make([]model.Date, len(c.days))
	copy(out, c.days)
	return out
}

// LastColumn returns the highest column holding a weekday.
func (c *SemesterCalendar) LastColumn() int { return c.lastColumn }

// slotsPerDay is the number of background slots drawn for a weekday:
// Friday afternoons are free.
func slotsPerDay(d model.Date) int {
	if d.Weekday() == time.Friday {
		return 3
	}
	return 5
}

// Cells returns the month labels, day numbers and empty slot backgrounds of
// the calendar.
func (c *SemesterCalendar) Cells() []GridCell {
	cells := make([]GridCell, 0, len(c.months)+len(c.days)*6)
	for _, m := range c.months {
		cells = append(cells, GridCell{
			Row:    0,
			Col:    m.col,
			Fields: [4]string{monthTitle(m.date)},
			Color:  colorMonthLabel,
		})
	}
	for _, d := range c.days {
		col := c.columns[d]
		offset := weekdayRowOffset(weekdayIndex(d))
		cells = append(cells, GridCell{
			Row:    offset + 1,
			Col:    col,
			Fields: [4]string{strconv.Itoa(d.Day)},
			Color:  colorDayNumber,
		})
		for i := 0; i < slotsPerDay(d); i++ {
			cells = append(cells, GridCell{
				Row:     offset + i*semesterSlotPitch + semesterFirstSlotRow,
				Col:     col,
				RowSpan: semesterSlotPitch,
				Color:   c.ColumnColor(col),
			})
		}
	}
	return cells
}

// monthTitle formats a month label such as 9/21.
func monthTitle(d model.Date) string {
	return fmt.Sprintf("%d/%02d", int(d.Month), d.Year%100)
}
