package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file, relative to the working directory.
const DefaultPath = "logs/cube.txt"

// Logger keeps diagnostic lines in memory and appends them to a file on disk.
// Errors are also written to the error stream.
type Logger struct {
	mu     sync.Mutex
	path   string
	lines  []string
	stderr io.Writer
	now    func() time.Time
}

// New returns a Logger writing to path (DefaultPath when empty) and ensures its directory exists.
func New(path string) *Logger {
	if path == "" {
		path = DefaultPath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, lines: make([]string, 0), stderr: os.Stderr, now: time.Now}
}

// SetErrorOutput replaces the stream Error writes to (os.Stderr by default).
func (l *Logger) SetErrorOutput(w io.Writer) {
	l.mu.Lock()
	l.stderr = w
	l.mu.Unlock()
}

// Log stores a line prefixed with [timestamp] and appends it to the log file.
func (l *Logger) Log(line string) {
	l.write(line, false)
}

// Error logs like Log and also writes the stamped line to the error stream.
func (l *Logger) Error(line string) {
	l.write(line, true)
}

func (l *Logger) write(line string, mirror bool) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	w := l.stderr
	l.mu.Unlock()

	if mirror && w != nil {
		_, _ = io.WriteString(w, stamped+"\n")
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Path returns the log file location.
func (l *Logger) Path() string {
	return l.path
}
