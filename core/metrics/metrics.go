package metrics

import (
	"time"
)

// RenderEvent describes one completed render.
type RenderEvent struct {
	ID         string
	Mode       string
	Class      string
	Identifier string
	Lessons    int
	Skipped    int
	Duration   time.Duration
	Err        error
	Time       time.Time
}

// Outcome returns "ok" or "error" depending on Err.
func (e RenderEvent) Outcome() string {
	if e.Err != nil {
		return "error"
	}
	return "ok"
}

// Sink records render events for observability purposes.
type Sink interface {
	RecordRender(ev RenderEvent) error
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) RecordRender(RenderEvent) error { return nil }
