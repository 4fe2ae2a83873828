package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Wait returns a command yielding the next event from ch as a tea.Msg.
// It yields nil once ctx is done or ch is closed, which ends the chain.
func Wait[T any](ctx context.Context, ch <-chan Event[T]) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return event
		}
	}
}

// Feed is a subscription that lives across Update calls. A model returns
// Next from Init and again after handling each Event[T].
type Feed[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewFeed subscribes to broker for the lifetime of ctx, filtered to types.
func NewFeed[T any](ctx context.Context, broker *Broker[T], types ...EventType) *Feed[T] {
	return &Feed[T]{ctx: ctx, ch: broker.Subscribe(ctx, types...)}
}

// Next waits for the feed's next event.
func (f *Feed[T]) Next() tea.Cmd {
	return Wait(f.ctx, f.ch)
}
