package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	coremetrics "github.com/rozvrh-svg/rozvrh/core/metrics"
	"github.com/rozvrh-svg/rozvrh/core/model"
	coremon "github.com/rozvrh-svg/rozvrh/core/monitoring"
	"github.com/rozvrh-svg/rozvrh/core/source"
	"github.com/rozvrh-svg/rozvrh/core/timetable"
	"github.com/rozvrh-svg/rozvrh/infra/logger"
	"github.com/rozvrh-svg/rozvrh/internal/eventbus"
)

// Render modes reported in metrics.
const (
	ModeWeekly   = "weekly"
	ModeSemester = "semester"
)

// Renderer loads events from a source and builds timetable views. Each
// render is published as a RenderEvent; failures other than bad input are
// reported to the monitor.
type Renderer struct {
	src     source.Source
	layout  timetable.Layout
	bus     *eventbus.TypedBus[coremetrics.RenderEvent]
	monitor coremon.Monitor
	log     logger.Logger
	now     func() time.Time
}

// RendererOption customises a Renderer.
type RendererOption func(*Renderer)

// WithBus publishes render events on bus.
func WithBus(bus *eventbus.TypedBus[coremetrics.RenderEvent]) RendererOption {
	return func(r *Renderer) { r.bus = bus }
}

// WithMonitor reports render failures to m.
func WithMonitor(m coremon.Monitor) RendererOption {
	return func(r *Renderer) { r.monitor = coremon.OrNop(m) }
}

// WithLogger replaces the component logger.
func WithLogger(l logger.Logger) RendererOption {
	return func(r *Renderer) { r.log = l }
}

// WithClock overrides the time source used for durations.
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) { r.now = now }
}

// NewRenderer creates a Renderer reading from src.
func NewRenderer(src source.Source, layout timetable.Layout, opts ...RendererOption) *Renderer {
	layout.SetDefaults()
	r := &Renderer{
		src:     src,
		layout:  layout,
		monitor: coremon.NopMonitor{},
		log:     logger.New("renderer"),
		now:     time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Weekly renders the weekly view of q.
func (r *Renderer) Weekly(ctx context.Context, q timetable.WeeklyQuery) (timetable.Result, error) {
	return r.render(ctx, ModeWeekly, q.Class, q.ID, func(evs []model.Event) (timetable.Result, error) {
		return timetable.Weekly(evs, q, r.layout.Weekly)
	})
}

// Semester renders the semester overview of q.
func (r *Renderer) Semester(ctx context.Context, q timetable.SemesterQuery) (timetable.Result, error) {
	return r.render(ctx, ModeSemester, q.Class, q.ID, func(evs []model.Event) (timetable.Result, error) {
		return timetable.Semester(evs, q, r.layout.Semester)
	})
}

func (r *Renderer) render(ctx context.Context, mode string, class model.EntityClass, id string,
	build func([]model.Event) (timetable.Result, error)) (timetable.Result, error) {
	started := r.now()
	ev := coremetrics.RenderEvent{
		ID:         uuid.NewString(),
		Mode:       mode,
		Class:      class.String(),
		Identifier: id,
		Time:       started,
	}

	var res timetable.Result
	evs, err := r.src.Events(ctx)
	if err != nil {
		err = fmt.Errorf("load events: %w", err)
	} else {
		res, err = build(evs)
	}

	ev.Duration = r.now().Sub(started)
	ev.Lessons = len(res.Lessons)
	ev.Skipped = len(res.Skipped)
	ev.Err = err
	if r.bus != nil {
		r.bus.Publish(ev)
	}

	if err != nil {
		if !errors.Is(err, model.ErrInvalidEntityClass) {
			r.monitor.CaptureException(err, map[string]string{"mode": mode, "class": ev.Class, "request_id": ev.ID})
		}
		r.log.Errorf("%s render %s %s failed: %v", mode, ev.Class, id, err)
		return timetable.Result{}, err
	}
	if ev.Skipped > 0 {
		r.log.Warnf("%s render %s %s skipped %d lessons without a grid position", mode, ev.Class, id, ev.Skipped)
	}
	r.log.Debugw("render done", map[string]any{
		"request_id": ev.ID,
		"mode":       mode,
		"class":      ev.Class,
		"id":         id,
		"lessons":    ev.Lessons,
		"duration":   ev.Duration.String(),
	})
	return res, nil
}
