package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/events"
)

// Handler reacts to a published event.
type Handler func(context.Context, events.Event) error

// Bus defines the contract for publishing and subscribing to ledger events.
type Bus interface {
	Publish(ctx context.Context, event events.Event) error
	Subscribe(eventType events.EventType, handler Handler)
}

// SimpleEventBus delivers events synchronously, in subscription order, to the
// handlers registered for the event's type.
type SimpleEventBus struct {
	handlers map[events.EventType][]Handler
	mu       sync.RWMutex
}

func NewSimpleEventBus() *SimpleEventBus {
	return &SimpleEventBus{handlers: make(map[events.EventType][]Handler)}
}

// Publish runs every handler even when one fails and returns the first error.
func (b *SimpleEventBus) Publish(ctx context.Context, event events.Event) error {
	if event == nil {
		return fmt.Errorf("eventbus: nil event")
	}
	slog.Debug("EventBus.Publish", "event_type", event.Type(), "concrete_type", fmt.Sprintf("%T", event))
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type()]...)
	b.mu.RUnlock()

	var first error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil && first == nil {
			first = fmt.Errorf("eventbus: handler for %s: %w", event.Type(), err)
		}
	}
	return first
}

func (b *SimpleEventBus) Subscribe(eventType events.EventType, handler Handler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll registers handler for every ledger event type.
func SubscribeAll(b Bus, handler Handler) {
	for _, t := range events.AllTypes() {
		b.Subscribe(t, handler)
	}
}

// AuditHandler logs every event it receives.
func AuditHandler(logger *slog.Logger) Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, event events.Event) error {
		logger.DebugContext(ctx, "Ledger event", "event_type", event.Type(), "event", event)
		return nil
	}
}
