// Package good keeps one process-wide file logger.
//
// Instance creates the logger on first use under sync.Once; every call after
// that returns the same value. Log serialises writes with a mutex so lines
// from concurrent callers never interleave.
package good

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sghaida/patterns/internal/clock"
	"github.com/sghaida/patterns/internal/demo"
)

type Logger struct {
	mu    sync.Mutex
	path  string
	clock clock.Clock
}

var (
	instance *Logger
	once     sync.Once
)

// Instance returns the shared logger.
func Instance() *Logger {
	once.Do(func() {
		instance = &Logger{path: demo.DefaultLogFile, clock: clock.NewSystem()}
	})
	return instance
}

// Redirect points the logger at path for all later writes.
func (l *Logger) Redirect(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.path = path
}

// UseClock replaces the time source for log stamps.
func (l *Logger) UseClock(c clock.Clock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clock = c
}

// Path returns the current log file.
func (l *Logger) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}

// Log appends "<timestamp>: message" to the log file.
func (l *Logger) Log(message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("singleton: open log: %w", err)
	}
	if _, err := fmt.Fprintf(f, "%s: %s\n", l.clock.Now().Format(time.DateTime), message); err != nil {
		_ = f.Close()
		return fmt.Errorf("singleton: write log: %w", err)
	}
	return f.Close()
}

// Run fetches the logger twice and logs through both handles.
func Run(_ context.Context, env demo.Env) error {
	loggerA := Instance()
	loggerA.Redirect(env.LogFile)
	loggerA.UseClock(env.Clock)
	if err := loggerA.Log("Application started"); err != nil {
		return err
	}

	loggerB := Instance()
	if err := loggerB.Log("User logged in"); err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Same instance? %t\n", loggerA == loggerB)
	return nil
}
