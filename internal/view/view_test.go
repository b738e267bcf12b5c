package view

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestAspect(t *testing.T) {
	assert.InDelta(t, 800.0/600.0, Aspect(800, 600), 1e-6)
	assert.Equal(t, float32(1), Aspect(600, 600))
}

func TestAspectZeroHeight(t *testing.T) {
	a := Aspect(800, 0)
	assert.Equal(t, float32(800), a)
	assert.False(t, math.IsInf(float64(a), 0))
	assert.False(t, math.IsNaN(float64(a)))

	assert.Zero(t, Aspect(0, 0))
}

func TestLookAtPutsTargetOnNegativeZ(t *testing.T) {
	v := LookAt()
	eye := v.Mul4x1(Eye.Vec4(1)).Vec3()
	assertVec(t, mgl32.Vec3{}, eye)

	target := v.Mul4x1(Target.Vec4(1)).Vec3()
	assertVec(t, mgl32.Vec3{0, 0, -Eye.Sub(Target).Len()}, target)

	// up stays up in view space
	up := v.Mul4x1(Up.Vec4(0)).Vec3()
	assert.Greater(t, up.Y(), float32(0))
}

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "want %v, got %v", want, got)
	}
}

func TestProjectionClipPlanes(t *testing.T) {
	p := Projection(Aspect(800, 600))

	ndcZ := func(z float32) float32 {
		c := p.Mul4x1(mgl32.Vec4{0, 0, z, 1})
		return c.Z() / c.W()
	}
	assert.InDelta(t, -1, ndcZ(-Near), 1e-4)
	assert.InDelta(t, 1, ndcZ(-Far), 1e-4)
}

func TestProjectionFieldOfView(t *testing.T) {
	p := Projection(1)
	// a point on the top edge of the frustum at depth 1 lands on y = 1 in NDC
	half := float32(math.Tan(float64(mgl32.DegToRad(FovY)) / 2))
	c := p.Mul4x1(mgl32.Vec4{0, half, -1, 1})
	assert.InDelta(t, 1, c.Y()/c.W(), 1e-5)
}
