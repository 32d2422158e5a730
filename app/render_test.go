package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/rozvrh-svg/rozvrh/core/metrics"
	"github.com/rozvrh-svg/rozvrh/core/model"
	"github.com/rozvrh-svg/rozvrh/core/source"
	"github.com/rozvrh-svg/rozvrh/core/timetable"
	"github.com/rozvrh-svg/rozvrh/infra/logger"
	"github.com/rozvrh-svg/rozvrh/internal/eventbus"
)

type captureMonitor struct {
	mu   sync.Mutex
	errs []error
}

func (m *captureMonitor) CaptureException(err error, _ map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs = append(m.errs, err)
}
func (m *captureMonitor) Recover()            {}
func (m *captureMonitor) Flush(time.Duration) {}

type failingSource struct{ err error }

func (f failingSource) Events(context.Context) ([]model.Event, error) { return nil, f.err }
func (f failingSource) Close() error                                  { return nil }

func lesson(id string, day int, start string) model.Event {
	return model.Event{
		ID:              id,
		GroupsNames:     []string{"23-5KB"},
		TeachersIDs:     []string{"7"},
		ClassroomsIDs:   []string{"R1"},
		Date:            model.Date{Year: 2021, Month: time.September, Day: day},
		StartTime:       start,
		SubjectName:     "Matematika",
		TeachersNames:   []string{"Jan Novák"},
		ClassroomsNames: []string{"K3/101"},
	}
}

func TestRenderer_WeeklyPublishesEvent(t *testing.T) {
	src := source.NewMemorySource(lesson("a", 6, "8:00"), lesson("b", 7, "7:00"))
	bus := eventbus.NewTyped[coremetrics.RenderEvent]()
	sub := bus.Subscribe()
	r := NewRenderer(src, timetable.Layout{}, WithBus(bus))

	res, err := r.Weekly(context.Background(), timetable.WeeklyQuery{
		Class: model.ClassGroup, ID: "23-5KB", Start: time.Date(2021, 9, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, res.Lessons, 1)
	assert.Len(t, res.Skipped, 1)

	ev := <-sub
	assert.Equal(t, ModeWeekly, ev.Mode)
	assert.Equal(t, "group", ev.Class)
	assert.Equal(t, "23-5KB", ev.Identifier)
	assert.Equal(t, 1, ev.Lessons)
	assert.Equal(t, 1, ev.Skipped)
	assert.NotEmpty(t, ev.ID)
	assert.NoError(t, ev.Err)
}

func TestRenderer_SemesterUsesDefaultLayout(t *testing.T) {
	src := source.NewMemorySource(lesson("a", 6, "8:00"))
	r := NewRenderer(src, timetable.Layout{})
	res, err := r.Semester(context.Background(), timetable.SemesterQuery{
		Class: model.ClassTeacher, ID: "7",
		Start: time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, timetable.DefaultLayout().Semester, res.Document.Geometry)
	assert.Len(t, res.Lessons, 1)
}

func TestRenderer_SourceFailureIsReported(t *testing.T) {
	boom := errors.New("connection refused")
	mon := &captureMonitor{}
	bus := eventbus.NewTyped[coremetrics.RenderEvent]()
	sub := bus.Subscribe()
	r := NewRenderer(failingSource{err: boom}, timetable.Layout{}, WithBus(bus), WithMonitor(mon))

	_, err := r.Weekly(context.Background(), timetable.WeeklyQuery{Class: model.ClassRoom, ID: "R1"})
	require.ErrorIs(t, err, boom)
	assert.Len(t, mon.errs, 1)
	ev := <-sub
	assert.ErrorIs(t, ev.Err, boom)
	assert.Equal(t, "error", ev.Outcome())
}

func TestRenderer_InvalidClassNotReported(t *testing.T) {
	mon := &captureMonitor{}
	r := NewRenderer(source.NewMemorySource(), timetable.Layout{}, WithMonitor(mon), WithLogger(logger.NopLogger{}))
	_, err := r.Weekly(context.Background(), timetable.WeeklyQuery{Class: model.ClassUnknown, ID: "x"})
	require.ErrorIs(t, err, model.ErrInvalidEntityClass)
	assert.Empty(t, mon.errs)
}

func TestRenderer_DataIntegrityFailure(t *testing.T) {
	ev := lesson("a", 6, "8:00")
	ev.TeachersNames = nil
	mon := &captureMonitor{}
	r := NewRenderer(source.NewMemorySource(ev), timetable.Layout{}, WithMonitor(mon))
	_, err := r.Weekly(context.Background(), timetable.WeeklyQuery{
		Class: model.ClassGroup, ID: "23-5KB", Start: time.Date(2021, 9, 5, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, timetable.ErrNoTeacher)
	assert.Len(t, mon.errs, 1)
}

func TestRenderer_Clock(t *testing.T) {
	ticks := []time.Time{
		time.Date(2021, 9, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2021, 9, 1, 8, 0, 0, int(250*time.Millisecond), time.UTC),
	}
	i := 0
	now := func() time.Time { t := ticks[i]; i++; return t }
	bus := eventbus.NewTyped[coremetrics.RenderEvent]()
	sub := bus.Subscribe()
	r := NewRenderer(source.NewMemorySource(), timetable.Layout{}, WithBus(bus), WithClock(now))
	_, err := r.Weekly(context.Background(), timetable.WeeklyQuery{Class: model.ClassGroup, ID: "x", Start: ticks[0]})
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, (<-sub).Duration)
}
