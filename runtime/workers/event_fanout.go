package workers

import (
	"context"
	"log/slog"
	"time"

	"mentor-chat/contract"
	"mentor-chat/domain/event"
)

// EventFanout pushes stored messages to the live subscribers of their room.
//
// Delivery is best effort and at-most-once per currently connected
// subscriber; there are no retries and no durability here. A subscriber
// that connects after an event was published reads history instead.
//
// EventFanout is safe for concurrent use by multiple goroutines.
type EventFanout struct {
	log         *slog.Logger
	registry    contract.IRegistry
	events      <-chan event.DomainEvent
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, registry contract.IRegistry,
	events <-chan event.DomainEvent, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{log: log, registry: registry, events: events, sinkTimeout: sinkTimeout}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.events:
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fan-out")
			return nil
		}
	}
}

// Fanout delivers one event to every active sink of its room. Each sink
// gets its own timeout; a slow or broken subscriber is logged and skipped,
// never surfaced to the sender and never retried.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	sinks := w.registry.SinksForRoom(evt.RoomID())
	for _, sink := range sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		err := sink.Consume(sinkCtx, evt)
		cancel()
		if err != nil {
			w.log.Warn("subscriber delivery failed",
				"room_id", evt.RoomID(),
				"error", err)
		}
	}
}
