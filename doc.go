// Package patterns is a collection of runnable design pattern examples.
//
// Each pattern lives in its own directory under behavioural/, creational/ or
// structural/, with one package per variant:
//
//   - bad: a deliberately flawed version showing the problem the pattern solves
//   - good: the same program rewritten around the pattern
//   - extra variants (seq, observer, fireforget, generic, registry) explore
//     alternative shapes of the good version
//
// Every variant exposes
//
//	func Run(ctx context.Context, env demo.Env) error
//
// which prints its narrative to env.Out. The catalog package registers every
// variant under "<pattern>/<variant>", and cmd/patterns lists and runs them.
//
// All variants share a small amount of infrastructure in internal/: an
// injectable clock, scaled and cancellable latency, a goroutine-safe console
// writer with money formatting, configuration, and slog/prometheus telemetry.
//
// Start with:
//
//	go run ./cmd/patterns -list
//	go run ./cmd/patterns -pattern observer
//	PATTERNS_LATENCY_SCALE=0 go run ./cmd/patterns
package patterns
