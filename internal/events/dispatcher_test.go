package events

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAsyncDispatcher_DeliversToSubscribers(t *testing.T) {
	d := NewAsyncDispatcher(8, zap.NewNop())

	var mu sync.Mutex
	var received []Event
	d.Subscribe(EventTicketAssigned, func(_ context.Context, e Event) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, e)
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{ID: "1", Type: EventTicketAssigned, TicketID: 42}))
	require.NoError(t, d.Publish(context.Background(), Event{ID: "2", Type: EventTicketAssigned, TicketID: 43}))
	d.Close()

	require.Len(t, received, 2)
	assert.Equal(t, "1", received[0].ID)
	assert.Equal(t, "2", received[1].ID)
}

func TestAsyncDispatcher_IgnoresUnsubscribedTypes(t *testing.T) {
	d := NewAsyncDispatcher(8, zap.NewNop())

	var called bool
	d.Subscribe(EventTicketAssigned, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{ID: "1", Type: EventTicketCreated}))
	d.Close()

	assert.False(t, called)
}

func TestAsyncDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewAsyncDispatcher(8, zap.NewNop())

	var secondCalled bool
	d.Subscribe(EventTicketAssigned, func(_ context.Context, _ Event) error {
		return errors.New("handler failure")
	})
	d.Subscribe(EventTicketAssigned, func(_ context.Context, _ Event) error {
		secondCalled = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{ID: "1", Type: EventTicketAssigned}))
	d.Close()

	assert.True(t, secondCalled)
}

func TestAsyncDispatcher_PublishNeverBlocks(t *testing.T) {
	// No subscriber draining and a tiny buffer: extra events are dropped,
	// publishing still returns immediately.
	d := NewAsyncDispatcher(1, zap.NewNop())

	block := make(chan struct{})
	d.Subscribe(EventTicketAssigned, func(_ context.Context, _ Event) error {
		<-block
		return nil
	})

	for i := 0; i < 100; i++ {
		require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketAssigned}))
	}
	close(block)
	d.Close()
}
