// Package source defines where timetable events come from. The renderer
// only ever reads a materialized slice; sources decide how that slice is
// loaded.
package source

import (
	"context"
	"sync"

	"github.com/rozvrh-svg/rozvrh/core/factory"
	"github.com/rozvrh-svg/rozvrh/core/model"
)

// Source loads the complete event collection.
type Source interface {
	Events(ctx context.Context) ([]model.Event, error)
	Close() error
}

// Writer is implemented by sources that can store events. Saving an event
// with an existing id replaces it.
type Writer interface {
	Save(ctx context.Context, events []model.Event) error
}

// MemorySource keeps events in memory. Events returns a copy so callers may
// not alter the stored collection.
type MemorySource struct {
	mu     sync.RWMutex
	events []model.Event
	index  map[string]int
}

// NewMemorySource returns a MemorySource holding events.
func NewMemorySource(events ...model.Event) *MemorySource {
	s := &MemorySource{index: make(map[string]int)}
	_ = s.Save(context.Background(), events)
	return s
}

// Events returns a snapshot of the stored events.
func (s *MemorySource) Events(context.Context) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

// Save inserts or replaces events by id.
func (s *MemorySource) Save(_ context.Context, events []model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ev := range events {
		if i, ok := s.index[ev.ID]; ok {
			s.events[i] = ev
			continue
		}
		s.index[ev.ID] = len(s.events)
		s.events = append(s.events, ev)
	}
	return nil
}

func (s *MemorySource) Close() error { return nil }

var registry = factory.NewRegistry[Source]()

func init() {
	_ = Register("memory", func(map[string]any) (Source, error) {
		return NewMemorySource(), nil
	})
}

// Register adds a source factory identified by name.
func Register(name string, f factory.Factory[Source]) error {
	return registry.Register(name, f)
}

// New creates the source described by cfg.
func New(cfg factory.ModuleConfig) (Source, error) {
	return registry.Create(cfg)
}

// Types lists the registered source types.
func Types() []string { return registry.Names() }
