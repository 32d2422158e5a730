package metrics

import (
	"context"
	"sync"
	"testing"
	"time"

	coremetrics "github.com/rozvrh-svg/rozvrh/core/metrics"
	"github.com/rozvrh-svg/rozvrh/internal/eventbus"
)

type captureSink struct {
	mu     sync.Mutex
	events []coremetrics.RenderEvent
}

func (c *captureSink) RecordRender(ev coremetrics.RenderEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
	return nil
}

func (c *captureSink) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func TestStartEventCollector(t *testing.T) {
	bus := eventbus.NewTyped[coremetrics.RenderEvent]()
	sink := &captureSink{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := StartEventCollector(ctx, bus, sink)

	bus.Publish(coremetrics.RenderEvent{ID: "a"})
	bus.Publish(coremetrics.RenderEvent{ID: "b"})

	deadline := time.Now().Add(time.Second)
	for sink.len() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if sink.len() != 2 {
		t.Fatalf("expected 2 events, got %d", sink.len())
	}
	bus.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("collector did not stop")
	}
}

func TestStartEventCollector_NilBus(t *testing.T) {
	select {
	case <-StartEventCollector(context.Background(), nil, coremetrics.NopSink{}):
	default:
		t.Fatal("expected closed channel")
	}
}
