package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherDeliversToSubscribersOfType(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got []EventType
	d.Subscribe(EventUserCreated, func(_ context.Context, e Event) error {
		got = append(got, e.Type)
		return nil
	})

	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventUserCreated}))
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventStoreReset}))

	assert.Equal(t, []EventType{EventUserCreated}, got)
}

func TestDispatcherRunsAllHandlersDespiteErrors(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")
	calls := 0
	d.Subscribe(EventStoreReset, func(context.Context, Event) error {
		calls++
		return boom
	})
	d.Subscribe(EventStoreReset, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventStoreReset})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}
