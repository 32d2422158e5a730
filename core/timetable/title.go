package timetable

import "github.com/rozvrh-svg/rozvrh/core/model"

// ResolveTitle returns a display name for a filter. Teacher and room ids
// are looked up in the events, pairing ids and names by position; groups are
// already filtered by name. The identifier itself is the fallback.
func ResolveTitle(events []model.Event, class model.EntityClass, id string) string {
	for _, ev := range events {
		var names []string
		switch class {
		case model.ClassTeacher:
			names = ev.TeachersNames
		case model.ClassRoom:
			names = ev.ClassroomsNames
		default:
			return id
		}
		for i, m := range ev.Members(class) {
			if m == id && i < len(names) && names[i] != "" {
				return names[i]
			}
		}
	}
	return id
}
