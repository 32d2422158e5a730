package timetable

import (
	"time"

	"github.com/rozvrh-svg/rozvrh/core/model"
)

// Filter returns the events listing id under the given class whose date lies
// in [start, end]. Bounds are compared as whole days. The input slice is not
// modified and an empty result is not an error.
func Filter(events []model.Event, class model.EntityClass, id string, start, end time.Time) ([]model.Event, error) {
	if !class.Valid() {
		return nil, model.ErrInvalidEntityClass
	}
	from, to := model.DateOf(start), model.DateOf(end)
	res := make([]model.Event, 0)
	for _, ev := range events {
		if !ev.HasMember(class, id) {
			continue
		}
		if !ev.Date.Within(from, to) {
			continue
		}
		res = append(res, ev)
	}
	return res, nil
}
