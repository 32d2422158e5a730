package timetable

import (
	"strings"
	"unicode"
)

// Initials abbreviates a teacher name to the upper-cased first letters of
// its components, e.g. "Jan Novák" to "JN". Components that do not start
// with a letter are ignored.
func Initials(name string) string {
	return firstLetters(name)
}

// SubjectShortcut abbreviates a subject name the same way, e.g.
// "Anglický jazyk" to "AJ".
func SubjectShortcut(subject string) string {
	return firstLetters(subject)
}

func firstLetters(s string) string {
	var b strings.Builder
	for _, word := range strings.Fields(s) {
		r := []rune(word)[0]
		if !unicode.IsLetter(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
