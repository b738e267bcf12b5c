// Package view computes the fixed camera: perspective projection and look-at transform.
package view

import "github.com/go-gl/mathgl/mgl32"

const (
	FovY = 60.0 // vertical field of view, degrees
	Near = 0.1
	Far  = 100.0
)

var (
	Eye    = mgl32.Vec3{3, 2, 4}
	Target = mgl32.Vec3{0, 0, 0}
	Up     = mgl32.Vec3{0, 1, 0}
)

// Aspect returns width/height. A zero height is treated as 1 so a minimized
// window never divides by zero.
func Aspect(width, height int) float32 {
	if height == 0 {
		height = 1
	}
	return float32(width) / float32(height)
}

// Projection returns the perspective matrix for the given aspect ratio.
func Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(FovY), aspect, Near, Far)
}

// LookAt returns the view matrix for the fixed eye position.
func LookAt() mgl32.Mat4 {
	return mgl32.LookAtV(Eye, Target, Up)
}
