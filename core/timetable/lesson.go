package timetable

import (
	"errors"
	"fmt"

	"github.com/rozvrh-svg/rozvrh/core/model"
)

var (
	// ErrNoTeacher marks an event without any teacher name.
	ErrNoTeacher = errors.New("event has no teacher")
	// ErrNoRoom marks an event without any classroom name.
	ErrNoRoom = errors.New("event has no classroom")
)

// Extract flattens ev into a Lesson using its first teacher and first room.
// Events missing either are rejected.
func Extract(ev model.Event) (model.Lesson, error) {
	if len(ev.TeachersNames) == 0 {
		return model.Lesson{}, fmt.Errorf("event %s: %w", ev.ID, ErrNoTeacher)
	}
	if len(ev.ClassroomsNames) == 0 {
		return model.Lesson{}, fmt.Errorf("event %s: %w", ev.ID, ErrNoRoom)
	}
	l := model.Lesson{
		SubjectName: ev.SubjectName,
		Topic:       ev.Topic,
		TeacherName: ev.TeachersNames[0],
		RoomName:    ev.ClassroomsNames[0],
		Date:        ev.Date,
		StartTime:   ev.StartTime,
	}
	if len(ev.TeachersIDs) > 0 {
		l.TeacherID = ev.TeachersIDs[0]
	}
	if len(ev.ClassroomsIDs) > 0 {
		l.RoomID = ev.ClassroomsIDs[0]
	}
	return l, nil
}

// ExtractAll extracts every event in order and stops at the first failure.
func ExtractAll(events []model.Event) ([]model.Lesson, error) {
	lessons := make([]model.Lesson, 0, len(events))
	for _, ev := range events {
		l, err := Extract(ev)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, nil
}
