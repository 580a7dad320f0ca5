// Package demo defines what every runnable pattern example receives and returns.
//
// Examples never reach for globals: the console, logger, clock and latency
// simulator arrive through Env, which keeps each example runnable in tests with
// a bytes.Buffer and no real delays.
package demo

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/sghaida/patterns/internal/clock"
	"github.com/sghaida/patterns/internal/console"
	"github.com/sghaida/patterns/internal/latency"
)

// DefaultLogFile is where the singleton examples append when Env.LogFile is empty.
const DefaultLogFile = "app.log"

// Env carries the collaborators an example may use.
type Env struct {
	// Out receives the console narrative.
	Out io.Writer

	// Logger is for diagnostics, never for the narrative itself.
	Logger *slog.Logger

	// Clock stamps mementos and log lines.
	Clock clock.Clock

	// Latency simulates slow collaborators.
	Latency latency.Simulator

	// LogFile is the file the singleton examples append to.
	LogFile string
}

// Func is a runnable example.
type Func func(ctx context.Context, env Env) error

// Normalize fills unset fields with safe defaults and makes Out safe for
// concurrent writers.
func (e Env) Normalize() Env {
	if e.Out == nil {
		e.Out = io.Discard
	}
	e.Out = console.NewSyncWriter(e.Out)
	if e.Logger == nil {
		e.Logger = slog.New(slog.DiscardHandler)
	}
	if e.Clock == nil {
		e.Clock = clock.NewSystem()
	}
	if e.LogFile == "" {
		e.LogFile = DefaultLogFile
	}
	return e
}

// Sleep waits for the scaled duration d.
func (e Env) Sleep(ctx context.Context, d time.Duration) error {
	return e.Latency.Wait(ctx, d)
}
