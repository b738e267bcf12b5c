// Package platform interprets what the windowing layer reports: trace log lines,
// window start-up failures and the exit codes they lead to. It has no cgo
// dependency so the rules can be tested without a display.
package platform

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPlatformInit means the windowing system itself could not start.
	ErrPlatformInit = errors.New("graphics: windowing system init failed")
	// ErrWindowCreate means the window or its GL context could not be created.
	ErrWindowCreate = errors.New("graphics: window creation failed")
)

// Trace levels, numbered as raylib's TraceLogLevel.
const (
	LevelTrace   = 1
	LevelDebug   = 2
	LevelInfo    = 3
	LevelWarning = 4
	LevelError   = 5
	LevelFatal   = 6
)

// raylib reports a failed glfwInit with this trace message.
const glfwInitFailure = "GLFW: Failed to initialize GLFW"

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = -1
)

// Trace is one classified trace message.
type Trace struct {
	Line       string // level-prefixed text for the log
	Mirror     bool   // also write to the error stream
	InitFailed bool   // the windowing system did not start
}

// Classify prefixes text with its level name. Warnings and worse are mirrored
// to the error stream.
func Classify(level int, text string) Trace {
	t := Trace{Line: LevelName(level) + ": " + text}
	if level >= LevelWarning {
		t.Mirror = true
		t.InitFailed = strings.Contains(text, glfwInitFailure)
	}
	return t
}

// LevelName returns the upper-case name of a trace level.
func LevelName(level int) string {
	switch level {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	}
	return fmt.Sprintf("LOG(%d)", level)
}

// OpenError returns nil for a ready window, ErrPlatformInit when the windowing
// system failed to start, and ErrWindowCreate otherwise. what describes the
// requested window.
func OpenError(ready, initFailed bool, what string) error {
	switch {
	case ready:
		return nil
	case initFailed:
		return fmt.Errorf("%w: %s", ErrPlatformInit, what)
	}
	return fmt.Errorf("%w: %s", ErrWindowCreate, what)
}

// ExitCode maps the result of a run to the process exit status.
func ExitCode(err error) int {
	if err != nil {
		return ExitFailure
	}
	return ExitOK
}
