// Package gesture implements the pull-to-scroll drag handle on the
// dashboard header.
//
// The controller is a two-state machine (idle, dragging) driven by
// discrete pointer events. It never fails and never blocks; its only side
// effect is advancing a Scroller.
package gesture

// State is the controller's interaction state.
type State int

const (
	StateIdle     State = iota // No pointer is held on the handle
	StateDragging              // Pointer went down on the handle and is still held
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Scroller receives the content scroll produced by a drag.
type Scroller interface {
	// ScrollBy advances the content pane by delta rows. delta is positive.
	ScrollBy(delta float64)
}

// Event is a pointer input fed to Handle.
//
// go-sumtype:decl Event
type Event interface {
	sealed()
}

// PointerDown is a press on the handle at vertical position Y.
type PointerDown struct {
	Y float64
}

func (PointerDown) sealed() {}

// PointerMove is pointer motion to vertical position Y.
type PointerMove struct {
	Y float64
}

func (PointerMove) sealed() {}

// PointerUp is a release anywhere on screen.
type PointerUp struct{}

func (PointerUp) sealed() {}

// Factors scale the pointer delta into the gesture outputs.
type Factors struct {
	Scroll   float64 // Content scroll per unit of downward movement
	Rotation float64 // Handle rotation per unit of movement
	Offset   float64 // Handle offset per unit of pull distance
}

// DefaultFactors returns the factors used when none are configured.
func DefaultFactors() Factors {
	return Factors{
		Scroll:   0.3,
		Rotation: 0.5,
		Offset:   0.5,
	}
}

// Snapshot is the read-only view of the controller used for rendering.
type Snapshot struct {
	State        State
	PullDistance float64 // Always >= 0
	Rotation     float64 // Unclamped
	Offset       float64 // How far the handle is pushed down
}

// Settling reports whether the handle should ease back to rest.
// The release transition applies only while idle.
func (s Snapshot) Settling() bool {
	return s.State == StateIdle
}

// Controller tracks one drag interaction at a time.
// Fields are ordered to minimize memory padding.
type Controller struct {
	scroller     Scroller
	factors      Factors
	lastY        float64
	pullDistance float64
	rotation     float64
	state        State
}

// New creates a Controller that scrolls s. A nil Scroller is allowed.
func New(s Scroller, factors Factors) *Controller {
	return &Controller{
		scroller: s,
		factors:  factors,
		state:    StateIdle,
	}
}

// Handle dispatches an event to the matching transition.
func (c *Controller) Handle(ev Event) {
	switch ev := ev.(type) {
	case PointerDown:
		c.PointerDown(ev.Y)
	case PointerMove:
		c.PointerMove(ev.Y)
	case PointerUp:
		c.PointerUp()
	}
}

// PointerDown starts a drag and records the initial position.
// A second press while dragging only re-records the position.
func (c *Controller) PointerDown(y float64) {
	c.state = StateDragging
	c.lastY = y
}

// PointerMove updates pull and rotation from the movement since the last
// recorded position. Downward movement scrolls the content and moves the
// recorded position, so each move event scrolls only by its own delta.
// Moves while idle are ignored.
func (c *Controller) PointerMove(y float64) {
	if c.state != StateDragging {
		return
	}

	delta := y - c.lastY
	c.pullDistance = max(0, delta)
	c.rotation = delta * c.factors.Rotation

	if delta > 0 {
		if c.scroller != nil {
			c.scroller.ScrollBy(delta * c.factors.Scroll)
		}
		c.lastY = y
	}
}

// PointerUp ends the drag and resets pull and rotation immediately.
func (c *Controller) PointerUp() {
	c.state = StateIdle
	c.pullDistance = 0
	c.rotation = 0
}

// State returns the current interaction state.
func (c *Controller) State() State {
	return c.state
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.state == StateDragging
}

// Snapshot returns the values the view renders from.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:        c.state,
		PullDistance: c.pullDistance,
		Rotation:     c.rotation,
		Offset:       c.pullDistance * c.factors.Offset,
	}
}
