package rotation

import "spincube/internal/input"

// Sensitivity is degrees of rotation per pixel of pointer motion.
const Sensitivity = 0.3

// DragState is everything the interactive variant remembers between events.
type DragState struct {
	Dragging     bool
	LastX, LastY float32
	Yaw, Pitch   float32
}

// Apply returns the state after ev. Horizontal motion turns yaw and vertical motion
// turns pitch, but only while the pointer is held down.
func (s DragState) Apply(ev input.Event) DragState {
	switch ev.Kind {
	case input.PointerPress:
		s.Dragging = true
		s.LastX, s.LastY = ev.X, ev.Y
	case input.PointerMove:
		if !s.Dragging {
			return s
		}
		dx, dy := ev.X-s.LastX, ev.Y-s.LastY
		s.Yaw += dx * Sensitivity
		s.Pitch += dy * Sensitivity
		s.LastX, s.LastY = ev.X, ev.Y
	case input.PointerRelease:
		s.Dragging = false
	}
	return s
}

// Drag feeds events through DragState for the frame loop.
type Drag struct {
	State DragState
}

// NewDrag returns a drag source at zero yaw and pitch.
func NewDrag() *Drag {
	return &Drag{}
}

// Angles returns the accumulated yaw and pitch; time plays no part.
func (d *Drag) Angles(float64) (yaw, pitch float32) {
	return d.State.Yaw, d.State.Pitch
}

// Handle applies ev to the drag state.
func (d *Drag) Handle(ev input.Event) {
	d.State = d.State.Apply(ev)
}

// Order is PitchThenYaw for the interactive variant.
func (d *Drag) Order() Order { return PitchThenYaw }
