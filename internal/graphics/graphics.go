package graphics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"spincube/internal/engineconfig"
	"spincube/internal/input"
	"spincube/internal/logger"
	"spincube/internal/platform"
)

// Start-up failures returned by Open, matched with errors.Is.
var (
	ErrPlatformInit = platform.ErrPlatformInit
	ErrWindowCreate = platform.ErrWindowCreate
)

// Window is the raylib window and GL context. It implements frame.Platform.
// Raylib pins the calling goroutine to the main thread; use it from main only.
type Window struct {
	log     *logger.Logger
	pointer input.Translator
	events  []input.Event
	closed  bool
}

// Open creates the window described by prefs and routes raylib's trace log into log.
// Escape is not raylib's exit key; the frame loop decides when to close.
func Open(prefs engineconfig.Prefs, log *logger.Logger) (*Window, error) {
	var initFailed bool
	rl.SetTraceLogLevel(rl.LogInfo)
	rl.SetTraceLogCallback(func(level int, text string) {
		t := platform.Classify(level, text)
		initFailed = initFailed || t.InitFailed
		if t.Mirror {
			log.Error(t.Line)
			return
		}
		log.Log(t.Line)
	})

	var flags uint32 = rl.FlagWindowResizable
	if prefs.VSyncEnabled() {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(prefs.Width), int32(prefs.Height), prefs.Title)
	what := fmt.Sprintf("%dx%d %q", prefs.Width, prefs.Height, prefs.Title)
	if err := platform.OpenError(rl.IsWindowReady(), initFailed, what); err != nil {
		return nil, err
	}
	rl.SetExitKey(rl.KeyNull)
	log.Log(fmt.Sprintf("window %s vsync=%t", what, prefs.VSyncEnabled()))
	return &Window{log: log}, nil
}

// FramebufferSize returns the render size in pixels (HiDPI aware).
func (w *Window) FramebufferSize() (width, height int) {
	return rl.GetRenderWidth(), rl.GetRenderHeight()
}

// Now returns seconds since the window was opened.
func (w *Window) Now() float64 {
	return rl.GetTime()
}

// Present swaps buffers (waiting for vblank when vsync is on), polls input and
// collects the resulting events.
func (w *Window) Present() {
	rl.EndDrawing()
	w.events = w.events[:0]
	if rl.WindowShouldClose() {
		w.events = append(w.events, input.Event{Kind: input.CloseRequest})
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		w.events = append(w.events, input.Event{Kind: input.KeyEscape})
	}
	pos := rl.GetMousePosition()
	w.events = w.pointer.Pointer(w.events, input.Pointer{
		X:        pos.X,
		Y:        pos.Y,
		Pressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
	})
}

// Events returns the events collected by the last Present.
func (w *Window) Events() []input.Event {
	return w.events
}

// Close releases the window and GL context. Safe to call more than once.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	rl.CloseWindow()
	w.log.Log("window closed")
}
