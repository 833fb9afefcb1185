// Package menu implements the open/closed state of the site navigation panel.
package menu

// State is the visual state of the navigation panel.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Event is something the panel reacts to.
type Event int

const (
	ButtonClick Event = iota
	OutsideClick
	KeyDown
	Resize
)

// Controller tracks the panel state for one page view. A nil Controller
// stands for a page without a menu and ignores every event.
type Controller struct {
	state State
}

// New returns a controller in the initial Closed state.
func New() *Controller {
	return &Controller{}
}

// FromQuery restores the state carried in the "menu" query parameter.
func FromQuery(v string) *Controller {
	c := New()
	if v == Open.String() {
		c.state = Open
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	if c == nil {
		return Closed
	}
	return c.state
}

// IsOpen reports whether the panel is open.
func (c *Controller) IsOpen() bool { return c.State() == Open }

// Apply feeds an event to the controller and returns the resulting state.
// key is only consulted for KeyDown.
func (c *Controller) Apply(ev Event, key string) State {
	if c == nil {
		return Closed
	}
	switch ev {
	case ButtonClick:
		if c.state == Open {
			c.state = Closed
		} else {
			c.state = Open
		}
	case OutsideClick, Resize:
		c.state = Closed
	case KeyDown:
		if key == "Escape" {
			c.state = Closed
		}
	}
	return c.state
}

// Toggled returns the state a button click would lead to, without applying it.
// The header renders it as the button's target.
func (c *Controller) Toggled() State {
	next := Controller{state: c.State()}
	return next.Apply(ButtonClick, "")
}
