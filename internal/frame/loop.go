// Package frame runs the per-frame cycle: size the viewport, build the transforms,
// render, present, then hand the polled input to the rotation source. It knows
// nothing about raylib; the window and the renderer are interfaces.
package frame

import (
	"github.com/go-gl/mathgl/mgl32"

	"spincube/internal/input"
	"spincube/internal/rotation"
	"spincube/internal/view"
)

// HalfExtent is the size of the cube drawn every frame.
const HalfExtent = 1.0

// State of the loop. Running is the only state in which frames are drawn.
type State int

const (
	Running State = iota
	Closing
)

func (s State) String() string {
	if s == Closing {
		return "closing"
	}
	return "running"
}

// Platform is the window/context service.
type Platform interface {
	FramebufferSize() (width, height int)
	Now() float64
	// Present shows the frame and polls the window for input.
	Present()
	// Events returns what the last Present polled, in arrival order.
	Events() []input.Event
}

// Frame is everything the renderer needs for one image.
type Frame struct {
	Width, Height int
	Projection    mgl32.Mat4
	View          mgl32.Mat4
	Model         mgl32.Mat4
	Yaw, Pitch    float32
	HalfExtent    float32
}

// Renderer clears the frame buffer and draws the cube for f.
type Renderer interface {
	Render(f Frame)
}

// Loop drives one window until escape or a close request.
type Loop struct {
	platform Platform
	renderer Renderer
	source   rotation.Source
	state    State
	frames   int
	// OnClose, if set, is called once when the loop leaves Running.
	OnClose func(reason input.Event)
}

// New returns a loop in the Running state.
func New(p Platform, r Renderer, src rotation.Source) *Loop {
	return &Loop{platform: p, renderer: r, source: src}
}

// State returns the current state.
func (l *Loop) State() State { return l.state }

// Frames returns how many frames have been rendered.
func (l *Loop) Frames() int { return l.frames }

// Run iterates until the loop is Closing and returns the number of frames rendered.
func (l *Loop) Run() int {
	for l.state == Running {
		l.Step()
	}
	return l.frames
}

// Step renders one frame, presents it and processes the polled events.
// It does nothing once the loop is Closing.
func (l *Loop) Step() {
	if l.state != Running {
		return
	}
	l.renderer.Render(l.build())
	l.frames++
	l.platform.Present()
	for _, ev := range l.platform.Events() {
		if !l.handle(ev) {
			break
		}
	}
}

// build assembles the transforms for the current frame.
func (l *Loop) build() Frame {
	w, h := l.platform.FramebufferSize()
	yaw, pitch := l.source.Angles(l.platform.Now())
	return Frame{
		Width:      w,
		Height:     h,
		Projection: view.Projection(view.Aspect(w, h)),
		View:       view.LookAt(),
		Model:      rotation.Model(l.source.Order(), yaw, pitch),
		Yaw:        yaw,
		Pitch:      pitch,
		HalfExtent: HalfExtent,
	}
}

// handle applies one event and reports whether the loop should keep reading the batch.
func (l *Loop) handle(ev input.Event) bool {
	if ev.Closes() {
		l.state = Closing
		if l.OnClose != nil {
			l.OnClose(ev)
		}
		return false
	}
	l.source.Handle(ev)
	return true
}
