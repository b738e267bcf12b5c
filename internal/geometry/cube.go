package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FaceCount is the number of quads in a cube.
const FaceCount = 6

// Face is one side of the cube: an outward unit normal and four corners wound
// counter-clockwise when seen from outside.
type Face struct {
	Normal   mgl32.Vec3
	Vertices [4]mgl32.Vec3
}

// Cube returns the faces of an axis-aligned cube with half-extent s centered at the origin.
// Order is -Z, +Z, +X, -X, -Y, +Y.
func Cube(s float32) [FaceCount]Face {
	v := s
	return [FaceCount]Face{
		{ // -Z
			Normal:   mgl32.Vec3{0, 0, -1},
			Vertices: [4]mgl32.Vec3{{v, -v, -v}, {-v, -v, -v}, {-v, v, -v}, {v, v, -v}},
		},
		{ // +Z
			Normal:   mgl32.Vec3{0, 0, 1},
			Vertices: [4]mgl32.Vec3{{-v, -v, v}, {v, -v, v}, {v, v, v}, {-v, v, v}},
		},
		{ // +X
			Normal:   mgl32.Vec3{1, 0, 0},
			Vertices: [4]mgl32.Vec3{{v, -v, v}, {v, -v, -v}, {v, v, -v}, {v, v, v}},
		},
		{ // -X
			Normal:   mgl32.Vec3{-1, 0, 0},
			Vertices: [4]mgl32.Vec3{{-v, -v, -v}, {-v, -v, v}, {-v, v, v}, {-v, v, -v}},
		},
		{ // -Y
			Normal:   mgl32.Vec3{0, -1, 0},
			Vertices: [4]mgl32.Vec3{{-v, -v, -v}, {v, -v, -v}, {v, -v, v}, {-v, -v, v}},
		},
		{ // +Y
			Normal:   mgl32.Vec3{0, 1, 0},
			Vertices: [4]mgl32.Vec3{{v, v, -v}, {-v, v, -v}, {-v, v, v}, {v, v, v}},
		},
	}
}

// AxisAligned reports whether n is a unit vector along one of the six axis directions.
func AxisAligned(n mgl32.Vec3) bool {
	nonZero := 0
	for _, c := range n {
		switch {
		case c == 0:
		case math32.Abs(c) == 1:
			nonZero++
		default:
			return false
		}
	}
	return nonZero == 1
}
