package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateCompareAndWithin(t *testing.T) {
	a := Date{Year: 2021, Month: time.September, Day: 5}
	b := a.AddDays(6)
	if b != (Date{Year: 2021, Month: time.September, Day: 11}) {
		t.Fatalf("unexpected AddDays result %v", b)
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatalf("compare mismatch")
	}
	if !a.Within(a, b) || !b.Within(a, b) {
		t.Fatalf("bounds must be inclusive")
	}
	if a.AddDays(-1).Within(a, b) {
		t.Fatalf("day before range accepted")
	}
	if b.DaysSince(a) != 6 {
		t.Fatalf("expected 6 days got %d", b.DaysSince(a))
	}
}

func TestDateAcrossMonth(t *testing.T) {
	d := Date{Year: 2021, Month: time.December, Day: 31}.AddDays(1)
	if d.String() != "2022-01-01" {
		t.Fatalf("unexpected date %s", d)
	}
	if d.Weekday() != time.Saturday {
		t.Fatalf("unexpected weekday %v", d.Weekday())
	}
}

func TestDateOfIgnoresClock(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	d := DateOf(time.Date(2021, time.September, 5, 23, 30, 0, 0, loc))
	if d.Day != 5 {
		t.Fatalf("expected day 5 got %d", d.Day)
	}
}

func TestEventJSON(t *testing.T) {
	raw := `{"id":"1","groupsNames":["23-5KB"],"teachersIds":["7"],"classroomsIds":["R1"],
		"date":{"year":2021,"month":9,"day":6},"startTime":"8:00","subjectName":"Matematika",
		"topic":"Derivace","teachersNames":["Jan Novák"],"classroomsNames":["K3/101"]}`
	var ev Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Date != (Date{Year: 2021, Month: time.September, Day: 6}) || !ev.HasMember(ClassGroup, "23-5KB") {
		t.Fatalf("unexpected event %#v", ev)
	}
}
