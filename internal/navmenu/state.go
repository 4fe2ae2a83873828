package navmenu

// Transition is the observable change produced by one state update.
type Transition int

const (
	// NoTransition covers mount, a redundant close, and updates that leave
	// the open flag where it was.
	NoTransition Transition = iota
	// Opened is Closed -> Open.
	Opened
	// Closed is Open -> Closed.
	Closed
)

func (t Transition) String() string {
	switch t {
	case Opened:
		return "opened"
	case Closed:
		return "closed"
	default:
		return "none"
	}
}

// State records the open flag together with its value before the most
// recent update. Both fields change together, so Transition can tell a
// real Open -> Closed change apart from a close on a panel that was never
// open.
type State struct {
	Current  bool
	Previous bool
}

// Toggle flips the open flag.
func (s State) Toggle() State {
	return State{Current: !s.Current, Previous: s.Current}
}

// Close clears the open flag. Closing a closed state yields no transition.
func (s State) Close() State {
	return State{Current: false, Previous: s.Current}
}

// Transition reports what the last update did.
func (s State) Transition() Transition {
	switch {
	case s.Current && !s.Previous:
		return Opened
	case !s.Current && s.Previous:
		return Closed
	default:
		return NoTransition
	}
}
