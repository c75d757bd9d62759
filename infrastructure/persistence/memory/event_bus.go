package memory

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/bomac1193/ophelian-os-sub001/application/ports"
	"github.com/bomac1193/ophelian-os-sub001/domain/events"
)

// EventBus is a synchronous in-process implementation of ports.EventBus.
// Handlers run in subscription order on the publisher's goroutine.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]ports.EventHandler
	logger   *zap.Logger
}

// NewEventBus creates an event bus
func NewEventBus(logger *zap.Logger) *EventBus {
	return &EventBus{
		handlers: make(map[string][]ports.EventHandler),
		logger:   logger,
	}
}

// Subscribe registers a handler for an event type
func (b *EventBus) Subscribe(eventType string, handler ports.EventHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

// Publish sends a single event
func (b *EventBus) Publish(ctx context.Context, event events.DomainEvent) error {
	b.mu.RLock()
	subscribed := append([]ports.EventHandler(nil), b.handlers[event.GetEventType()]...)
	b.mu.RUnlock()

	b.logger.Debug("publishing event",
		zap.String("type", event.GetEventType()),
		zap.String("aggregateID", event.GetAggregateID()),
	)

	for _, handler := range subscribed {
		if !handler.CanHandle(event.GetEventType()) {
			continue
		}
		if err := handler.Handle(ctx, event); err != nil {
			// A failing subscriber must not block the others
			b.logger.Error("event handler failed",
				zap.String("type", event.GetEventType()),
				zap.Error(err),
			)
		}
	}
	return nil
}

// PublishBatch sends multiple events
func (b *EventBus) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	for _, event := range batch {
		if err := b.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
