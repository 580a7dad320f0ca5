package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sghaida/patterns/internal/demo"
	"github.com/sghaida/patterns/internal/telemetry"
)

// ErrExamplePanic is returned when an example panics while running.
var ErrExamplePanic = errors.New("catalog: panic during example")

// Runner executes examples against a shared Env.
type Runner struct {
	Env     demo.Env
	Metrics *telemetry.Metrics
	Logger  *slog.Logger
}

func (r Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Run prints a header for ex and runs it, converting panics into errors.
func (r Runner) Run(ctx context.Context, ex Example) error {
	env := r.Env.Normalize()
	log := r.logger().With("pattern", ex.Pattern, "variant", ex.Variant)

	fmt.Fprintf(env.Out, "=== %s ===\n", ex.Key())
	log.Info("example started")

	start := time.Now()
	err := safeRun(ctx, ex, env)
	took := time.Since(start)

	r.Metrics.ObserveRun(ex.Pattern, ex.Variant, took, err)
	if err != nil {
		log.Error("example failed", "duration", took, "error", err)
		return fmt.Errorf("%s: %w", ex.Key(), err)
	}
	log.Info("example finished", "duration", took)
	return nil
}

func safeRun(ctx context.Context, ex Example, env demo.Env) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrExamplePanic, rec)
		}
	}()
	if ex.Run == nil {
		return errors.New("catalog: example has no Run func")
	}
	return ex.Run(ctx, env)
}

// RunAll runs every example in order, separated by a blank line. It keeps
// going after a failure and returns all failures joined. A cancelled ctx
// stops the run before the next example.
func (r Runner) RunAll(ctx context.Context, examples []Example) error {
	env := r.Env.Normalize()
	r.Env = env

	var errs []error
	for i, ex := range examples {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if i > 0 {
			fmt.Fprintln(env.Out)
		}
		if err := r.Run(ctx, ex); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
