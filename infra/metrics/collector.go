package metrics

import (
	"context"

	coremetrics "github.com/rozvrh-svg/rozvrh/core/metrics"
	"github.com/rozvrh-svg/rozvrh/infra/logger"
	"github.com/rozvrh-svg/rozvrh/internal/eventbus"
)

// StartEventCollector subscribes to the bus and records every render event on
// sink. It stops when ctx is canceled or the bus is closed. The returned
// channel is closed once the collector has exited.
func StartEventCollector(ctx context.Context, bus *eventbus.TypedBus[coremetrics.RenderEvent], sink coremetrics.Sink) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || sink == nil {
		close(done)
		return done
	}
	log := logger.New("metrics-collector")
	sub := bus.Subscribe()
	go func() {
		defer close(done)
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				if err := sink.RecordRender(ev); err != nil {
					log.Warnf("record render %s: %v", ev.ID, err)
				}
			}
		}
	}()
	return done
}
