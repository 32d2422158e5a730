package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/rozvrh-svg/rozvrh/core/metrics"
)

// PromSink records render events in Prometheus metrics.
type PromSink struct {
	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	lessons  *prometheus.CounterVec
	skipped  *prometheus.CounterVec
}

// NewPromSink registers render metrics on the default Prometheus registerer.
// The metrics endpoint is served separately by StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	renders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_renders_total",
		Help: "Total number of timetable renders",
	}, []string{"mode", "class", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "timetable_render_duration_seconds",
		Help:    "Time spent rendering a timetable document",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})
	lessons := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_lessons_total",
		Help: "Lessons placed on rendered timetables",
	}, []string{"mode"})
	skipped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_lessons_skipped_total",
		Help: "Lessons left out because they had no grid position",
	}, []string{"mode"})

	var err error
	if renders, err = register(reg, renders); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if lessons, err = register(reg, lessons); err != nil {
		return nil, err
	}
	if skipped, err = register(reg, skipped); err != nil {
		return nil, err
	}
	return &PromSink{renders: renders, duration: duration, lessons: lessons, skipped: skipped}, nil
}

// register returns the already registered collector when c was registered
// before, so several sinks can share one registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordRender updates the counters and the duration histogram.
func (s *PromSink) RecordRender(ev coremetrics.RenderEvent) error {
	s.renders.WithLabelValues(ev.Mode, ev.Class, ev.Outcome()).Inc()
	s.duration.WithLabelValues(ev.Mode).Observe(ev.Duration.Seconds())
	if ev.Lessons > 0 {
		s.lessons.WithLabelValues(ev.Mode).Add(float64(ev.Lessons))
	}
	if ev.Skipped > 0 {
		s.skipped.WithLabelValues(ev.Mode).Add(float64(ev.Skipped))
	}
	return nil
}
