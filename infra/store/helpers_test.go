package store

import (
	"time"

	"github.com/rozvrh-svg/rozvrh/core/model"
)

func sampleEvents() []model.Event {
	return []model.Event{
		{
			ID:              "e1",
			GroupsNames:     []string{"23-5KB"},
			TeachersIDs:     []string{"7"},
			ClassroomsIDs:   []string{"R1"},
			Date:            model.Date{Year: 2021, Month: time.September, Day: 6},
			StartTime:       "8:00",
			SubjectName:     "Matematika",
			Topic:           "Derivace",
			TeachersNames:   []string{"Jan Novák"},
			ClassroomsNames: []string{"K3/101"},
		},
		{
			ID:              "e2",
			GroupsNames:     []string{"23-5KB", "23-6KB"},
			TeachersIDs:     []string{"9"},
			ClassroomsIDs:   []string{"R2"},
			Date:            model.Date{Year: 2021, Month: time.September, Day: 7},
			StartTime:       "9:50",
			SubjectName:     "Fyzika",
			TeachersNames:   []string{"Eva Dvořáková"},
			ClassroomsNames: []string{"K2/015"},
		},
	}
}
