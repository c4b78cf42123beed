package eventbus_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/events"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/eventbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleEventBus_PublishRoutesByType(t *testing.T) {
	bus := eventbus.NewSimpleEventBus()
	var got []events.EventType
	record := func(_ context.Context, e events.Event) error {
		got = append(got, e.Type())
		return nil
	}
	bus.Subscribe(events.EventTypeClientCreated, record)
	bus.Subscribe(events.EventTypeAccountOpened, record)

	require.NoError(t, bus.Publish(context.Background(), events.ClientCreatedEvent{TaxID: "1"}))
	require.NoError(t, bus.Publish(context.Background(), events.AccountOpenedEvent{Number: 1}))
	require.NoError(t, bus.Publish(context.Background(), events.TransactionRejectedEvent{}))

	assert.Equal(t, []events.EventType{events.EventTypeClientCreated, events.EventTypeAccountOpened}, got)
}

func TestSimpleEventBus_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	bus := eventbus.NewSimpleEventBus()
	boom := errors.New("boom")
	calls := 0
	bus.Subscribe(events.EventTypeClientCreated, func(context.Context, events.Event) error {
		calls++
		return boom
	})
	bus.Subscribe(events.EventTypeClientCreated, func(context.Context, events.Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), events.ClientCreatedEvent{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestSimpleEventBus_NilEvent(t *testing.T) {
	assert.Error(t, eventbus.NewSimpleEventBus().Publish(context.Background(), nil))
}

func TestSubscribeAll_AuditHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	bus := eventbus.NewSimpleEventBus()
	eventbus.SubscribeAll(bus, eventbus.AuditHandler(logger))

	for _, e := range []events.Event{
		events.ClientCreatedEvent{},
		events.AccountOpenedEvent{},
		events.TransactionRejectedEvent{},
	} {
		require.NoError(t, bus.Publish(context.Background(), e))
	}

	out := buf.String()
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("Ledger event")))
	assert.Contains(t, out, "Client.Created")
	assert.Contains(t, out, "Transaction.Rejected")
}
