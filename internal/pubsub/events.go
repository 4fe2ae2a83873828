// Package pubsub carries typed events from producers (the menu, the
// logger) to Bubble Tea models without the producer waiting on them.
package pubsub

import "time"

// EventType names what happened.
type EventType string

const (
	// OpenedEvent marks a menu panel becoming visible.
	OpenedEvent EventType = "opened"
	// ClosedEvent marks a menu panel being dismissed.
	ClosedEvent EventType = "closed"
	// EntryEvent carries one written log entry.
	EntryEvent EventType = "entry"
)

// Event is one published payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}
