package chart

// State is the phase of an Interaction.
type State int

const (
	Idle State = iota
	Hovering
	Locked
)

func (s State) String() string {
	switch s {
	case Hovering:
		return "hovering"
	case Locked:
		return "locked"
	}
	return "idle"
}

// Interaction tracks hover and lock over chart points. Hover follows the
// pointer; a lock pins one point until it is tapped again. While locked the
// locked point stays active even if touch input moves the hover.
type Interaction struct {
	hover    int
	hasHover bool
	lock     int
	hasLock  bool
}

// Move records pointer movement over point i. Ignored while locked.
func (in *Interaction) Move(i int) {
	if in.hasLock {
		return
	}
	in.hover, in.hasHover = i, true
}

// Leave records the pointer leaving the chart. Ignored while locked.
func (in *Interaction) Leave() {
	if in.hasLock {
		return
	}
	in.hasHover = false
}

// Click toggles the lock on the hovered point. Clicking the locked point
// again releases the lock and clears hover. Without hover it does nothing.
func (in *Interaction) Click() {
	if !in.hasHover {
		return
	}
	if in.hasLock && in.lock == in.hover {
		in.hasLock = false
		in.hasHover = false
		return
	}
	in.lock, in.hasLock = in.hover, true
}

// TouchMove records a drag over point i, even while locked.
func (in *Interaction) TouchMove(i int) {
	in.hover, in.hasHover = i, true
}

// TouchEnd locks the hovered point.
func (in *Interaction) TouchEnd() {
	if !in.hasHover {
		return
	}
	in.lock, in.hasLock = in.hover, true
}

// Reset returns to Idle, used when the underlying series changes.
func (in *Interaction) Reset() {
	*in = Interaction{}
}

// Active is the point being inspected. Lock wins over hover.
func (in Interaction) Active() (int, bool) {
	if in.hasLock {
		return in.lock, true
	}
	if in.hasHover {
		return in.hover, true
	}
	return 0, false
}

// State reports the current phase.
func (in Interaction) State() State {
	switch {
	case in.hasLock:
		return Locked
	case in.hasHover:
		return Hovering
	}
	return Idle
}

// Hover returns the raw hover index, which may differ from Active while
// locked.
func (in Interaction) Hover() (int, bool) {
	return in.hover, in.hasHover
}
