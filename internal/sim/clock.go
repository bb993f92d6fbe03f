package sim

// Time-scale bounds, in simulated seconds per frame: one hour up to one year.
const (
	MinTimeScale     = 3600.0
	MaxTimeScale     = 31536000.0
	DefaultTimeScale = 640000.0 // roughly a week per frame
)

// Clock owns the pause flag and the simulated-seconds-per-step rate. The
// caller decides the step cadence; the clock only says how much simulated
// time each step is worth.
type Clock struct {
	TimeScale float64
	Paused    bool
}

// NewClock returns a running clock at the given scale, clamped to bounds.
func NewClock(timeScale float64) *Clock {
	c := &Clock{TimeScale: timeScale}
	c.clamp()
	return c
}

// TogglePause flips the pause flag.
func (c *Clock) TogglePause() { c.Paused = !c.Paused }

// SpeedUp doubles the time scale, clamped to MaxTimeScale.
func (c *Clock) SpeedUp() {
	c.TimeScale *= 2
	c.clamp()
}

// SlowDown halves the time scale, clamped to MinTimeScale.
func (c *Clock) SlowDown() {
	c.TimeScale /= 2
	c.clamp()
}

func (c *Clock) clamp() {
	if c.TimeScale < MinTimeScale {
		c.TimeScale = MinTimeScale
	}
	if c.TimeScale > MaxTimeScale {
		c.TimeScale = MaxTimeScale
	}
}
