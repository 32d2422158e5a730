package timetable

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rozvrh-svg/rozvrh/core/model"
)

// NoPosition is returned by the positioners when a lesson has no place on the
// grid. It never collides with a real coordinate, header rows included.
const NoPosition = math.MinInt32

// WeeklySlots lists the row labels of the weekly view. The fourth slot is the
// lunch break and has no label, so no lesson can be placed in it.
var WeeklySlots = [...]string{"8:00", "9:50", "11:40", "", "14:30", "16:20"}

// SemesterSlots lists the slots of the semester view, lunch break excluded.
var SemesterSlots = [...]string{"8:00", "9:50", "11:40", "14:30", "16:20"}

const (
	// semesterDayPitch is the number of rows reserved for one weekday.
	semesterDayPitch = 16
	// semesterSlotPitch is the number of rows one slot spans.
	semesterSlotPitch = 3
	// semesterFirstSlotRow is the row of the first slot within a weekday.
	semesterFirstSlotRow = 2
)

// NormalizeSlot rewrites time labels such as "08:00" or "8:00:00" to the
// "8:00" form used by the slot tables. Labels that are not times are
// returned trimmed but otherwise unchanged.
func NormalizeSlot(label string) string {
	label = strings.TrimSpace(label)
	parts := strings.Split(label, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return label
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return label
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || len(parts[1]) != 2 {
		return label
	}
	return strconv.Itoa(h) + ":" + parts[1]
}

func slotIndex(slots []string, label string) int {
	label = NormalizeSlot(label)
	if label == "" {
		return NoPosition
	}
	for i, s := range slots {
		if s == label {
			return i
		}
	}
	return NoPosition
}

// WeeklyRow returns the weekly row of a start time label, or NoPosition.
func WeeklyRow(startTime string) int {
	return slotIndex(WeeklySlots[:], startTime)
}

// WeeklyColumn returns the column (0 for Monday to 4 for Friday) of d in the
// week displayed from start, which is conventionally the Sunday before the
// displayed Monday. Dates outside [start, start+6] and weekend dates yield
// NoPosition.
func WeeklyColumn(d model.Date, start time.Time) int {
	from := model.DateOf(start)
	if !d.Within(from, from.AddDays(6)) {
		return NoPosition
	}
	return weekdayIndex(d)
}

// weekdayIndex maps Monday..Friday to 0..4 and weekends to NoPosition.
func weekdayIndex(d model.Date) int {
	wd := d.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return NoPosition
	}
	return int(wd) - 1
}

// SemesterSlot returns the semester slot (0..4) of a start time label, or
// NoPosition.
func SemesterSlot(startTime string) int {
	return slotIndex(SemesterSlots[:], startTime)
}

// SemesterRow returns the semester view row of a lesson held on d at
// startTime, or NoPosition for weekend dates and unknown slots.
func SemesterRow(d model.Date, startTime string) int {
	day := weekdayIndex(d)
	slot := SemesterSlot(startTime)
	if day == NoPosition || slot == NoPosition {
		return NoPosition
	}
	return weekdayRowOffset(day) + slot*semesterSlotPitch + semesterFirstSlotRow
}

func weekdayRowOffset(day int) int {
	return day * semesterDayPitch
}
