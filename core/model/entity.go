package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEntityClass is returned for a filter class other than group,
// teacher or room.
var ErrInvalidEntityClass = errors.New("invalid entity class")

// EntityClass selects which membership of an event a filter tests.
type EntityClass int

const (
	ClassUnknown EntityClass = iota
	// ClassGroup filters by study group name. Groups carry no ids.
	ClassGroup
	// ClassTeacher filters by teacher id.
	ClassTeacher
	// ClassRoom filters by classroom id.
	ClassRoom
)

// ParseEntityClass accepts the query tags S, T and C as well as the long
// names group, teacher and room.
func ParseEntityClass(s string) (EntityClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "group":
		return ClassGroup, nil
	case "t", "teacher":
		return ClassTeacher, nil
	case "c", "room", "classroom":
		return ClassRoom, nil
	default:
		return ClassUnknown, fmt.Errorf("%w: %q", ErrInvalidEntityClass, s)
	}
}

// Valid reports whether c is one of the known classes.
func (c EntityClass) Valid() bool {
	return c == ClassGroup || c == ClassTeacher || c == ClassRoom
}

// Tag returns the single letter used in navigation links.
func (c EntityClass) Tag() string {
	switch c {
	case ClassGroup:
		return "S"
	case ClassTeacher:
		return "T"
	case ClassRoom:
		return "C"
	default:
		return ""
	}
}

// String returns a human-readable representation of the class.
func (c EntityClass) String() string {
	switch c {
	case ClassGroup:
		return "group"
	case ClassTeacher:
		return "teacher"
	case ClassRoom:
		return "room"
	default:
		return "unknown"
	}
}
