package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWait(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	closed := make(chan Event[string])
	close(closed)

	buffered := make(chan Event[string], 1)
	buffered <- Event[string]{Type: ClosedEvent, Payload: "escape"}

	tests := []struct {
		name string
		ctx  context.Context
		ch   <-chan Event[string]
		want any
	}{
		{"event", context.Background(), buffered, Event[string]{Type: ClosedEvent, Payload: "escape"}},
		{"closed channel", context.Background(), closed, nil},
		{"cancelled", cancelled, make(chan Event[string]), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Wait(tt.ctx, tt.ch)())
		})
	}
}

func TestFeed_NextRearms(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := NewFeed(ctx, b, OpenedEvent, ClosedEvent)
	b.Publish(OpenedEvent, "toggle")
	b.Publish(EntryEvent, "not for the feed")
	b.Publish(ClosedEvent, "backdrop")

	first, ok := feed.Next()().(Event[string])
	require.True(t, ok)
	require.Equal(t, "toggle", first.Payload)

	second, ok := feed.Next()().(Event[string])
	require.True(t, ok)
	require.Equal(t, "backdrop", second.Payload)
}

func TestFeed_EndsWithBroker(t *testing.T) {
	b := NewBroker[string]()
	feed := NewFeed(context.Background(), b)

	b.Close()
	require.Nil(t, feed.Next()())
}
