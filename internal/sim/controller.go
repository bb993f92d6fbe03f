package sim

import "github.com/avasko/s2orbit/internal/orbit"

// Event is a discrete input action. The controller does not care whether it
// came from a keyboard, a script, or a test.
type Event int

const (
	EventTogglePause Event = iota
	EventZoomIn
	EventZoomOut
	EventSpeedUp
	EventSlowDown
	EventPanLeft
	EventPanRight
	EventPanUp
	EventPanDown
	EventCenter
	EventReset
)

// Controller couples the clock and view state to the orbit state machine.
// It applies input events between frames and advances the orbiter once per
// frame while unpaused. Everything it owns is mutated only from the single
// render loop.
type Controller struct {
	clock   *Clock
	view    *ViewState
	orbiter *orbit.Orbiter

	initialTimeScale float64
	initialZoom      float64
}

// NewController wires a controller around an orbiter with the given initial
// clock and view settings.
func NewController(o *orbit.Orbiter, timeScale, zoom float64) *Controller {
	c := NewClock(timeScale)
	return &Controller{
		clock:            c,
		view:             NewViewState(zoom),
		orbiter:          o,
		initialTimeScale: c.TimeScale,
		initialZoom:      zoom,
	}
}

// Apply performs one state transition for a discrete input event.
func (c *Controller) Apply(ev Event) {
	switch ev {
	case EventTogglePause:
		c.clock.TogglePause()
	case EventZoomIn:
		c.view.ZoomIn()
	case EventZoomOut:
		c.view.ZoomOut()
	case EventSpeedUp:
		c.clock.SpeedUp()
	case EventSlowDown:
		c.clock.SlowDown()
	case EventPanLeft:
		c.view.Pan(-1, 0)
	case EventPanRight:
		c.view.Pan(1, 0)
	case EventPanUp:
		c.view.Pan(0, 1)
	case EventPanDown:
		c.view.Pan(0, -1)
	case EventCenter:
		c.view.Center()
	case EventReset:
		c.orbiter.Reset()
		c.clock.TimeScale = c.initialTimeScale
		c.clock.Paused = false
		c.view.Zoom = c.initialZoom
		c.view.Center()
	}
}

// Frame advances the simulation by one step: while unpaused the orbiter
// moves forward by the clock's time scale, otherwise nothing happens.
func (c *Controller) Frame() {
	if c.clock.Paused {
		return
	}
	c.orbiter.Update(c.clock.TimeScale)
}

// Clock returns the simulation clock.
func (c *Controller) Clock() *Clock { return c.clock }

// View returns the viewport state.
func (c *Controller) View() *ViewState { return c.view }

// Orbiter returns the orbit state machine.
func (c *Controller) Orbiter() *orbit.Orbiter { return c.orbiter }
