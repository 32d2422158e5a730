package model

// Lesson is the flattened view of an Event used for rendering. Only the
// first teacher and the first room of the event are kept.
type Lesson struct {
	SubjectName string
	Topic       string
	TeacherName string
	TeacherID   string // empty when the event lists no teacher ids
	RoomName    string
	RoomID      string // empty when the event lists no room ids
	Date        Date
	StartTime   string
}
