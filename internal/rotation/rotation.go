// Package rotation holds the two ways the cube is turned: by elapsed time and by
// dragging the pointer. Angles are in degrees and accumulate without clamping.
package rotation

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"spincube/internal/input"
)

// Order is the composition order of the yaw and pitch rotations. It changes the
// visual result, so each variant keeps its own.
type Order int

const (
	// YawThenPitch rotates about Y first in the matrix chain: model = Ry(yaw) * Rx(pitch).
	YawThenPitch Order = iota
	// PitchThenYaw rotates about X first in the matrix chain: model = Rx(pitch) * Ry(yaw).
	PitchThenYaw
)

func (o Order) String() string {
	if o == PitchThenYaw {
		return "pitch-then-yaw"
	}
	return "yaw-then-pitch"
}

// Model returns the model matrix for the given angles in degrees.
func Model(o Order, yaw, pitch float32) mgl32.Mat4 {
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(yaw))
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(pitch))
	if o == PitchThenYaw {
		return rx.Mul4(ry)
	}
	return ry.Mul4(rx)
}

// Wrap folds an accumulated angle into [0, 360).
func Wrap(deg float32) float32 {
	w := math32.Mod(deg, 360)
	if w < 0 {
		w += 360
	}
	return w
}

// Source produces the current angles and consumes input events. The frame loop
// asks it for angles once per frame.
type Source interface {
	Angles(now float64) (yaw, pitch float32)
	Handle(ev input.Event)
	Order() Order
}
