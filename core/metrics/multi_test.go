package metrics

import (
	"errors"
	"testing"
)

type recordSink struct {
	count int
	err   error
}

func (r *recordSink) RecordRender(RenderEvent) error {
	r.count++
	return r.err
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordRender(RenderEvent{Mode: "weekly"}); err != nil {
		t.Fatalf("record render: %v", err)
	}
	if s1.count != 1 || s2.count != 1 {
		t.Fatalf("events not forwarded")
	}
}

func TestMultiSink_ContinuesAfterError(t *testing.T) {
	boom := errors.New("boom")
	s1 := &recordSink{err: boom}
	s2 := &recordSink{}
	err := NewMultiSink(s1, s2).RecordRender(RenderEvent{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected first error, got %v", err)
	}
	if s2.count != 1 {
		t.Fatalf("second sink skipped")
	}
}

func TestRenderEvent_Outcome(t *testing.T) {
	if got := (RenderEvent{}).Outcome(); got != "ok" {
		t.Fatalf("got %s", got)
	}
	if got := (RenderEvent{Err: errors.New("x")}).Outcome(); got != "error" {
		t.Fatalf("got %s", got)
	}
}
