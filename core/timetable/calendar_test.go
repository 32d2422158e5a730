package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rozvrh-svg/rozvrh/core/model"
)

func TestSemesterCalendar_TwoSundays(t *testing.T) {
	start := day(2021, time.September, 5) // Sunday
	cal := BuildSemesterCalendar(start, start.AddDate(0, 0, 13))

	assert.Equal(t, 2, cal.WeekAdvances())
	days := cal.Days()
	require.Len(t, days, 10)
	for _, d := range days {
		assert.NotEqual(t, time.Saturday, d.Weekday(), d.String())
		assert.NotEqual(t, time.Sunday, d.Weekday(), d.String())
	}
	_, ok := cal.Column(model.DateOf(day(2021, time.September, 11)))
	assert.False(t, ok, "saturday must not get a column")

	col, ok := cal.Column(model.DateOf(day(2021, time.September, 6)))
	require.True(t, ok)
	assert.Equal(t, 3, col)
	col, _ = cal.Column(model.DateOf(day(2021, time.September, 17)))
	assert.Equal(t, 4, col)
	assert.Equal(t, 4, cal.LastColumn())
}

func TestSemesterCalendar_NoSaturdayCells(t *testing.T) {
	start := day(2021, time.September, 5)
	cal := BuildSemesterCalendar(start, start.AddDate(0, 0, 13))
	for _, c := range cal.Cells() {
		assert.Less(t, c.Row, 5*semesterDayPitch, "cell %#v lies in a weekend band", c)
	}
}

func TestSemesterCalendar_FirstMonthColumns(t *testing.T) {
	// 2021-09-01 is a Wednesday, 2021-11-01 a Monday.
	cal := BuildSemesterCalendar(day(2021, time.September, 1), day(2021, time.November, 30))

	first, _ := cal.Column(model.DateOf(day(2021, time.September, 1)))
	assert.Equal(t, FirstSemesterColumn, first)
	assert.False(t, cal.IsFirstMonthColumn(first), "partial first week")
	assert.True(t, cal.IsFirstMonthColumn(first+1))

	oct, _ := cal.Column(model.DateOf(day(2021, time.October, 1))) // Friday
	assert.True(t, cal.IsFirstMonthColumn(oct+1))
	assert.False(t, cal.IsFirstMonthColumn(oct))

	nov, _ := cal.Column(model.DateOf(day(2021, time.November, 1))) // Monday
	assert.True(t, cal.IsFirstMonthColumn(nov))
	assert.Equal(t, ColorFirstMonth, cal.ColumnColor(nov))
	assert.Equal(t, ColorPlain, cal.ColumnColor(nov+1))
}

func TestSemesterCalendar_Cells(t *testing.T) {
	// One full week starting on Monday 2021-11-01.
	cal := BuildSemesterCalendar(day(2021, time.November, 1), day(2021, time.November, 5))
	var months, numbers, slots int
	for _, c := range cal.Cells() {
		switch c.Color {
		case colorMonthLabel:
			months++
			assert.Equal(t, "11/21", c.Fields[0])
			assert.Equal(t, FirstSemesterColumn, c.Col)
		case colorDayNumber:
			numbers++
		default:
			slots++
			assert.Equal(t, ColorFirstMonth, c.Color)
			assert.Equal(t, semesterSlotPitch, c.RowSpan)
		}
	}
	assert.Equal(t, 1, months)
	assert.Equal(t, 5, numbers)
	assert.Equal(t, 4*5+3, slots)
}

func TestSemesterCalendar_Empty(t *testing.T) {
	cal := BuildSemesterCalendar(day(2021, time.September, 10), day(2021, time.September, 1))
	assert.Empty(t, cal.Days())
	assert.Empty(t, cal.Cells())
}
