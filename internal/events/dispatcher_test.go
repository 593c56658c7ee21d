package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishInvokesSubscribers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	var seen []EventType
	d.Subscribe(EventUserRegistered, func(_ context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventUserRegistered, Username: "alice"})
	require.NoError(t, err)
	require.Equal(t, []EventType{EventUserRegistered}, seen)
}

func TestDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()

	var calls int
	d.Subscribe(EventLoginFailed, func(context.Context, Event) error {
		calls++
		return errors.New("boom")
	})
	d.Subscribe(EventLoginFailed, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventLoginFailed})
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestDispatcher_UnsubscribedTypeIsNoop(t *testing.T) {
	t.Parallel()

	d := NewInMemoryDispatcher()
	err := d.Publish(context.Background(), Event{Type: EventUserLoggedIn})
	require.NoError(t, err)
}
