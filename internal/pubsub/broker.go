package pubsub

import (
	"context"
	"slices"
	"sync"
	"time"
)

const defaultBufferSize = 32

type subscription[T any] struct {
	ch    chan Event[T]
	types []EventType
	stop  func() bool
}

func (s *subscription[T]) wants(t EventType) bool {
	return len(s.types) == 0 || slices.Contains(s.types, t)
}

// Stats counts broker deliveries since creation.
type Stats struct {
	Subscribers int
	Published   uint64
	Dropped     uint64
}

// Broker delivers typed events to filtered subscriptions. Publish never
// waits on a subscriber: an event that does not fit in a subscription's
// buffer is dropped for that subscription and counted in Stats.
type Broker[T any] struct {
	mu         sync.Mutex
	subs       map[uint64]*subscription[T]
	nextID     uint64
	bufferSize int
	closed     bool
	published  uint64
	dropped    uint64
}

// NewBroker creates a broker whose subscriptions buffer 32 events.
func NewBroker[T any]() *Broker[T] {
	return NewBrokerWithBuffer[T](defaultBufferSize)
}

// NewBrokerWithBuffer creates a broker whose subscriptions buffer size events.
func NewBrokerWithBuffer[T any](size int) *Broker[T] {
	return &Broker[T]{
		subs:       make(map[uint64]*subscription[T]),
		bufferSize: max(size, 1),
	}
}

// Subscribe returns a channel receiving events of the given types, or of
// every type when none are named. The channel is closed when ctx is done
// or the broker is closed.
func (b *Broker[T]) Subscribe(ctx context.Context, types ...EventType) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan Event[T])
		close(ch)
		return ch
	}

	id := b.nextID
	b.nextID++
	sub := &subscription[T]{
		ch:    make(chan Event[T], b.bufferSize),
		types: slices.Clone(types),
	}
	b.subs[id] = sub
	sub.stop = context.AfterFunc(ctx, func() { b.drop(id) })

	return sub.ch
}

func (b *Broker[T]) drop(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sub, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(sub.ch)
	}
}

// Publish sends an event to every subscription that wants its type.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.published++

	event := Event[T]{Type: eventType, Payload: payload, Timestamp: time.Now()}
	for _, sub := range b.subs {
		if !sub.wants(eventType) {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			b.dropped++
		}
	}
}

// Close ends every subscription. Later calls do nothing.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, sub := range b.subs {
		sub.stop()
		close(sub.ch)
		delete(b.subs, id)
	}
}

// Stats returns the current subscription count and delivery counters.
func (b *Broker[T]) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Stats{
		Subscribers: len(b.subs),
		Published:   b.published,
		Dropped:     b.dropped,
	}
}
