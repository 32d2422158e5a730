package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/rozvrh-svg/rozvrh/core/metrics"
)

func TestPromSink_RecordRender(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	ev := coremetrics.RenderEvent{Mode: "weekly", Class: "group", Lessons: 4, Skipped: 1, Duration: 20 * time.Millisecond}
	if err := sink.RecordRender(ev); err != nil {
		t.Fatalf("record: %v", err)
	}
	ev.Err = errors.New("boom")
	ev.Lessons, ev.Skipped = 0, 0
	_ = sink.RecordRender(ev)

	if v := testutil.ToFloat64(sink.renders.WithLabelValues("weekly", "group", "ok")); v != 1 {
		t.Fatalf("ok renders = %v", v)
	}
	if v := testutil.ToFloat64(sink.renders.WithLabelValues("weekly", "group", "error")); v != 1 {
		t.Fatalf("error renders = %v", v)
	}
	if v := testutil.ToFloat64(sink.lessons.WithLabelValues("weekly")); v != 4 {
		t.Fatalf("lessons = %v", v)
	}
	if v := testutil.ToFloat64(sink.skipped.WithLabelValues("weekly")); v != 1 {
		t.Fatalf("skipped = %v", v)
	}
	if n := testutil.CollectAndCount(sink.duration); n != 1 {
		t.Fatalf("duration series = %d", n)
	}
}

func TestPromSink_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	b, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	_ = a.RecordRender(coremetrics.RenderEvent{Mode: "semester", Class: "teacher"})
	_ = b.RecordRender(coremetrics.RenderEvent{Mode: "semester", Class: "teacher"})
	if v := testutil.ToFloat64(a.renders.WithLabelValues("semester", "teacher", "ok")); v != 2 {
		t.Fatalf("expected shared counter, got %v", v)
	}
}
