// Package bad builds a new file logger wherever one is needed.
//
// Nothing stops two loggers from appending to the same file at once, and
// UnsafeInstance shows the usual attempt at a fix: lazy initialisation with
// no synchronisation, which races under concurrent first use.
package bad

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sghaida/patterns/internal/clock"
	"github.com/sghaida/patterns/internal/demo"
)

type Logger struct {
	path  string
	clock clock.Clock
}

func NewLogger(path string, clk clock.Clock) *Logger {
	return &Logger{path: path, clock: clk}
}

// Log appends "<timestamp>: message" to the log file.
func (l *Logger) Log(message string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("singleton: open log: %w", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s: %s\n", l.clock.Now().Format(time.DateTime), message)
	return err
}

var unsafeInstance *Logger

// UnsafeInstance lazily creates a shared logger. Concurrent first calls race.
func UnsafeInstance() *Logger {
	if unsafeInstance == nil {
		unsafeInstance = NewLogger(demo.DefaultLogFile, clock.NewSystem())
	}
	return unsafeInstance
}

// Run creates two loggers for the same file.
func Run(_ context.Context, env demo.Env) error {
	loggerA := NewLogger(env.LogFile, env.Clock)
	if err := loggerA.Log("Started application"); err != nil {
		return err
	}

	loggerB := NewLogger(env.LogFile, env.Clock)
	if err := loggerB.Log("User logged in"); err != nil {
		return err
	}

	fmt.Fprintf(env.Out, "Same instance? %t\n", loggerA == loggerB)
	return nil
}
