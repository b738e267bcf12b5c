package input

import "fmt"

// Kind identifies what happened on the window during the last poll.
type Kind int

const (
	PointerPress Kind = iota
	PointerMove
	PointerRelease
	KeyEscape
	CloseRequest
)

var kindNames = [...]string{
	PointerPress:   "pointer-press",
	PointerMove:    "pointer-move",
	PointerRelease: "pointer-release",
	KeyEscape:      "key-escape",
	CloseRequest:   "close-request",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Event is one input occurrence. X and Y are the pointer position in window pixels;
// they are meaningful for pointer events only.
type Event struct {
	Kind Kind
	X, Y float32
}

// Press returns a pointer-press event at (x, y).
func Press(x, y float32) Event { return Event{Kind: PointerPress, X: x, Y: y} }

// Move returns a pointer-move event at (x, y).
func Move(x, y float32) Event { return Event{Kind: PointerMove, X: x, Y: y} }

// Release returns a pointer-release event at (x, y).
func Release(x, y float32) Event { return Event{Kind: PointerRelease, X: x, Y: y} }

// Closes reports whether the event asks the application to stop.
func (e Event) Closes() bool {
	return e.Kind == KeyEscape || e.Kind == CloseRequest
}

// Pointer is a snapshot of the pointer taken once per frame.
type Pointer struct {
	X, Y     float32
	Pressed  bool // button went down since the previous poll
	Released bool // button went up since the previous poll
}

// Translator turns per-frame pointer snapshots into events. Platforms without
// callbacks (raylib polls) use it to produce press/move/release in that order.
type Translator struct {
	lastX, lastY float32
	seen         bool
}

// Pointer appends the events implied by p to dst and returns it. A move is emitted
// only when the position changed since the previous snapshot.
func (t *Translator) Pointer(dst []Event, p Pointer) []Event {
	if p.Pressed {
		dst = append(dst, Press(p.X, p.Y))
	}
	if t.seen && (p.X != t.lastX || p.Y != t.lastY) {
		dst = append(dst, Move(p.X, p.Y))
	}
	if p.Released {
		dst = append(dst, Release(p.X, p.Y))
	}
	t.lastX, t.lastY, t.seen = p.X, p.Y, true
	return dst
}
