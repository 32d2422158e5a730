package timetable

import (
	"time"

	"github.com/rozvrh-svg/rozvrh/core/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func event(id string, d time.Time, slot string) model.Event {
	return model.Event{
		ID:              id,
		GroupsNames:     []string{"23-5KB"},
		TeachersIDs:     []string{"7"},
		ClassroomsIDs:   []string{"R1"},
		Date:            model.DateOf(d),
		StartTime:       slot,
		SubjectName:     "Matematika",
		Topic:           "Derivace",
		TeachersNames:   []string{"Jan Novák"},
		ClassroomsNames: []string{"K3/101"},
	}
}
