package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spincube/internal/input"
	"spincube/internal/rotation"
	"spincube/internal/view"
)

// fakePlatform replays one batch of events per Present and advances its clock by dt.
type fakePlatform struct {
	width, height int
	now, dt       float64
	batches       [][]input.Event
	presented     int
	pending       []input.Event
}

func (p *fakePlatform) FramebufferSize() (int, int) { return p.width, p.height }
func (p *fakePlatform) Now() float64                { return p.now }

func (p *fakePlatform) Present() {
	p.presented++
	p.now += p.dt
	p.pending = nil
	if len(p.batches) > 0 {
		p.pending = p.batches[0]
		p.batches = p.batches[1:]
	}
}

func (p *fakePlatform) Events() []input.Event { return p.pending }

type recorder struct {
	frames []Frame
}

func (r *recorder) Render(f Frame) { r.frames = append(r.frames, f) }

func TestLoopClosesOnEscape(t *testing.T) {
	p := &fakePlatform{width: 800, height: 600, batches: [][]input.Event{
		nil,
		nil,
		{{Kind: input.KeyEscape}},
	}}
	r := &recorder{}
	l := New(p, r, rotation.NewClock(0))

	var closes []input.Event
	l.OnClose = func(ev input.Event) { closes = append(closes, ev) }

	assert.Equal(t, Running, l.State())
	n := l.Run()
	assert.Equal(t, 3, n)
	assert.Len(t, r.frames, 3)
	assert.Equal(t, 3, p.presented)
	assert.Equal(t, Closing, l.State())
	require.Len(t, closes, 1)
	assert.Equal(t, input.KeyEscape, closes[0].Kind)
}

func TestLoopClosesOnceAndDrawsNothingAfter(t *testing.T) {
	p := &fakePlatform{width: 640, height: 480, batches: [][]input.Event{
		{{Kind: input.CloseRequest}, {Kind: input.KeyEscape}, input.Press(0, 0)},
	}}
	r := &recorder{}
	src := rotation.NewDrag()
	l := New(p, r, src)

	closes := 0
	l.OnClose = func(input.Event) { closes++ }

	assert.Equal(t, 1, l.Run())
	assert.Equal(t, 1, closes)
	assert.False(t, src.State.Dragging, "events after close are dropped")

	l.Step()
	l.Run()
	assert.Len(t, r.frames, 1)
	assert.Equal(t, 1, p.presented)
	assert.Equal(t, 1, closes)
}

func TestLoopFrameTransforms(t *testing.T) {
	p := &fakePlatform{width: 800, height: 600, now: 2, batches: [][]input.Event{{{Kind: input.CloseRequest}}}}
	r := &recorder{}
	New(p, r, rotation.NewClock(0)).Run()

	require.Len(t, r.frames, 1)
	f := r.frames[0]
	assert.Equal(t, 800, f.Width)
	assert.Equal(t, 600, f.Height)
	assert.Equal(t, float32(HalfExtent), f.HalfExtent)
	assert.InDelta(t, 50, f.Yaw, 1e-4)
	assert.InDelta(t, 36, f.Pitch, 1e-4)
	assert.True(t, f.Projection.ApproxEqual(view.Projection(800.0/600.0)))
	assert.True(t, f.View.ApproxEqual(view.LookAt()))
	assert.True(t, f.Model.ApproxEqual(rotation.Model(rotation.YawThenPitch, f.Yaw, f.Pitch)))
}

func TestLoopZeroHeightFramebuffer(t *testing.T) {
	p := &fakePlatform{width: 300, height: 0, batches: [][]input.Event{{{Kind: input.CloseRequest}}}}
	r := &recorder{}
	New(p, r, rotation.NewClock(0)).Run()

	require.Len(t, r.frames, 1)
	for _, v := range r.frames[0].Projection {
		assert.False(t, math.IsNaN(float64(v)) || math.IsInf(float64(v), 0))
	}
	assert.True(t, r.frames[0].Projection.ApproxEqual(view.Projection(300)))
}

func TestLoopFeedsDragEvents(t *testing.T) {
	p := &fakePlatform{width: 800, height: 600, batches: [][]input.Event{
		{input.Press(0, 0), input.Move(10, 0)},
		{input.Move(10, 10), input.Release(10, 10)},
		{input.Move(400, 400)},
		{{Kind: input.KeyEscape}},
	}}
	r := &recorder{}
	New(p, r, rotation.NewDrag()).Run()

	require.Len(t, r.frames, 4)
	assert.Zero(t, r.frames[0].Yaw)
	assert.InDelta(t, 3, r.frames[1].Yaw, 1e-6)
	assert.Zero(t, r.frames[1].Pitch)
	assert.InDelta(t, 3, r.frames[2].Yaw, 1e-6)
	assert.InDelta(t, 3, r.frames[2].Pitch, 1e-6)
	// released: the move in batch 3 does not turn the cube
	assert.Equal(t, r.frames[2].Yaw, r.frames[3].Yaw)
	assert.Equal(t, r.frames[2].Pitch, r.frames[3].Pitch)

	last := r.frames[3]
	assert.True(t, last.Model.ApproxEqual(rotation.Model(rotation.PitchThenYaw, last.Yaw, last.Pitch)))
}

func TestLoopClockAdvancesWithPlatformTime(t *testing.T) {
	p := &fakePlatform{width: 10, height: 10, now: 5, dt: 0.5, batches: [][]input.Event{
		nil, nil, nil, {{Kind: input.CloseRequest}},
	}}
	r := &recorder{}
	New(p, r, rotation.NewClock(5)).Run()

	require.Len(t, r.frames, 4)
	for i, f := range r.frames {
		assert.InDelta(t, float64(i)*0.5*rotation.YawRate, f.Yaw, 1e-4, "frame %d", i)
		assert.InDelta(t, float64(i)*0.5*rotation.PitchRate, f.Pitch, 1e-4, "frame %d", i)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "closing", Closing.String())
}
