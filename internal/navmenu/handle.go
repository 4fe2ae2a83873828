package navmenu

// Handle is a stable reference to one focusable element of the menu.
// Handles double as bubblezone IDs, so the element a handle names is also
// the region that receives its mouse clicks. The zero Handle names nothing.
type Handle struct {
	id string
}

// ID returns the zone ID backing the handle.
func (h Handle) ID() string {
	return h.id
}

// IsZero reports whether the handle names no element.
func (h Handle) IsZero() bool {
	return h.id == ""
}

func (h Handle) String() string {
	if h.IsZero() {
		return "<none>"
	}
	return h.id
}
