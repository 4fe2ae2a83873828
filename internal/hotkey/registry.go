// Package hotkey provides a process-wide registry of key listeners.
//
// The host routes every key press through Dispatch before its own handling.
// A listener that matches consumes the key, so the host's default handling
// for that key never runs. Listeners are acquired with Install and given
// back with the returned Release; components tie that pair to the lifetime
// of whatever state needs the listener.
package hotkey

import (
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/navdrawer/internal/log"
)

// Handler reacts to a matched key press.
type Handler func(msg tea.KeyMsg) tea.Cmd

// Release removes the listener it was returned for. Calling it again is a no-op.
type Release func()

type listener struct {
	token   uint64
	owner   string
	binding key.Binding
	handler Handler
}

// Registry holds installed listeners. The zero value is not usable; use NewRegistry.
type Registry struct {
	mu        sync.Mutex
	nextToken uint64
	listeners []listener
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Install adds a listener for binding and returns the matching Release.
// Listeners installed later take precedence over earlier ones.
func (r *Registry) Install(owner string, binding key.Binding, handler Handler) Release {
	r.mu.Lock()
	r.nextToken++
	token := r.nextToken
	r.listeners = append(r.listeners, listener{
		token:   token,
		owner:   owner,
		binding: binding,
		handler: handler,
	})
	count := len(r.listeners)
	r.mu.Unlock()

	log.Debug(log.CatHotkey, "listener installed", "owner", owner, "token", token, "active", count)

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(token) })
	}
}

func (r *Registry) remove(token uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, l := range r.listeners {
		if l.token == token {
			r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
			log.Debug(log.CatHotkey, "listener released", "owner", l.owner, "token", token, "active", len(r.listeners))
			return
		}
	}
}

// Dispatch offers msg to the most recently installed matching listener.
// handled reports whether a listener consumed the key.
func (r *Registry) Dispatch(msg tea.KeyMsg) (cmd tea.Cmd, handled bool) {
	r.mu.Lock()
	var match *listener
	for i := len(r.listeners) - 1; i >= 0; i-- {
		if key.Matches(msg, r.listeners[i].binding) {
			l := r.listeners[i]
			match = &l
			break
		}
	}
	r.mu.Unlock()

	if match == nil {
		return nil, false
	}
	log.Debug(log.CatHotkey, "key consumed", "owner", match.owner, "key", msg.String())
	return match.handler(msg), true
}

// Len returns the number of installed listeners.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.listeners)
}

// Count returns the number of listeners installed by owner.
func (r *Registry) Count(owner string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, l := range r.listeners {
		if l.owner == owner {
			n++
		}
	}
	return n
}
