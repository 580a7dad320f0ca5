// Package catalog registers every runnable pattern example under a stable
// key and runs them.
//
// A key is "<pattern>/<variant>", for example "observer/good" or
// "mediator/fireforget". The catalog only drives examples: it adds no data
// flow between them.
//
// Typical usage:
//
//	reg := catalog.Default()
//	examples, err := reg.Select("observer", "")
//	if err != nil {
//		// unknown pattern
//	}
//	err = catalog.Runner{Env: env, Logger: logger}.RunAll(ctx, examples)
//
// Runner recovers panics from examples and reports them as errors wrapping
// ErrExamplePanic, so one misbehaving demo cannot take down a full run.
package catalog
