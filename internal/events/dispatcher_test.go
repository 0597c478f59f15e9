package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_DeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got []string
	d.Subscribe(EventOrderPlaced, func(_ context.Context, e Event) error {
		got = append(got, "first:"+e.ResourceID)
		return nil
	})
	d.Subscribe(EventOrderPlaced, func(_ context.Context, e Event) error {
		got = append(got, "second:"+e.ResourceID)
		return nil
	})
	d.Subscribe(EventInboxMessageReceived, func(_ context.Context, e Event) error {
		got = append(got, "inbox")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventOrderPlaced, ResourceID: "o1"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"first:o1", "second:o1"}, got)
}

func TestDispatcher_FailingHandlerDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")
	called := false
	d.Subscribe(EventInboxMessageReceived, func(context.Context, Event) error { return boom })
	d.Subscribe(EventInboxMessageReceived, func(context.Context, Event) error {
		called = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventInboxMessageReceived})

	assert.ErrorIs(t, err, boom)
	assert.True(t, called)
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	assert.NoError(t, NewInMemoryDispatcher().Publish(context.Background(), Event{Type: EventOrderPlaced}))
}
