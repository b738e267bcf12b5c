package rotation

import "spincube/internal/input"

// Degrees per second for the clock-driven cube.
const (
	YawRate   = 25.0
	PitchRate = 18.0
)

// Clock turns the cube at fixed rates since Start. It keeps no other state.
type Clock struct {
	Start float64
}

// NewClock returns a clock started at now (seconds on a monotonic clock).
func NewClock(now float64) *Clock {
	return &Clock{Start: now}
}

// Angles returns yaw and pitch in degrees at time now. Times before Start read as zero.
func (c *Clock) Angles(now float64) (yaw, pitch float32) {
	t := now - c.Start
	if t < 0 {
		t = 0
	}
	return float32(t * YawRate), float32(t * PitchRate)
}

// Handle ignores input; the clock variant has none.
func (c *Clock) Handle(input.Event) {}

// Order is YawThenPitch for the clock variant.
func (c *Clock) Order() Order { return YawThenPitch }
