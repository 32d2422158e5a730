package model

// Event is one scheduled lesson as delivered by an event source. Events are
// read-only for the renderer.
type Event struct {
	ID              string   `json:"id"`
	GroupsNames     []string `json:"groupsNames"`
	TeachersIDs     []string `json:"teachersIds"`
	ClassroomsIDs   []string `json:"classroomsIds"`
	Date            Date     `json:"date"`
	StartTime       string   `json:"startTime"`
	SubjectName     string   `json:"subjectName"`
	Topic           string   `json:"topic"`
	TeachersNames   []string `json:"teachersNames"`
	ClassroomsNames []string `json:"classroomsNames"`
}

// Members returns the membership keys of e for the given class, or nil for
// an unknown class.
func (e Event) Members(c EntityClass) []string {
	switch c {
	case ClassGroup:
		return e.GroupsNames
	case ClassTeacher:
		return e.TeachersIDs
	case ClassRoom:
		return e.ClassroomsIDs
	default:
		return nil
	}
}

// HasMember reports whether id is listed in the membership keys for c.
func (e Event) HasMember(c EntityClass, id string) bool {
	for _, m := range e.Members(c) {
		if m == id {
			return true
		}
	}
	return false
}
