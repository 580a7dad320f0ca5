package catalog

import (
	"slices"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sghaida/patterns/internal/demo"
)

// Category groups patterns the way the classic catalogue does.
type Category string

const (
	Behavioural Category = "behavioural"
	Creational  Category = "creational"
	Structural  Category = "structural"
)

// Example is one runnable variant of a pattern.
type Example struct {
	Pattern  string
	Variant  string
	Category Category
	Summary  string
	Run      demo.Func
}

// Key returns "<pattern>/<variant>".
func (e Example) Key() string { return e.Pattern + "/" + e.Variant }

// UnknownExampleError reports a pattern or pattern/variant with no registered example.
type UnknownExampleError struct {
	Key string
}

// Error implements the error interface.
func (e UnknownExampleError) Error() string {
	return "catalog: unknown example " + strconv.Quote(e.Key)
}

// Registry is an in-memory, insertion-ordered set of examples.
// It is built once at start-up and only read afterwards.
type Registry struct {
	items map[string]Example
	order []string
}

func NewRegistry() *Registry {
	return &Registry{items: map[string]Example{}}
}

// Provide stores ex under its key and returns the registry for chaining.
// Providing an existing key replaces the example but keeps its position.
func (r *Registry) Provide(ex Example) *Registry {
	key := ex.Key()
	if _, ok := r.items[key]; !ok {
		r.order = append(r.order, key)
	}
	r.items[key] = ex
	return r
}

// Lookup returns the example for pattern and variant.
func (r *Registry) Lookup(pattern, variant string) (Example, error) {
	key := pattern + "/" + variant
	ex, ok := r.items[key]
	if !ok {
		return Example{}, UnknownExampleError{Key: key}
	}
	return ex, nil
}

// Len returns the number of registered examples.
func (r *Registry) Len() int { return len(r.order) }

// Examples returns every example in registration order.
func (r *Registry) Examples() []Example {
	out := make([]Example, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.items[key])
	}
	return out
}

// Filter returns the examples matching pattern and variant in registration
// order. An empty pattern or variant matches anything.
func (r *Registry) Filter(pattern, variant string) []Example {
	var out []Example
	for _, key := range r.order {
		ex := r.items[key]
		if pattern != "" && ex.Pattern != pattern {
			continue
		}
		if variant != "" && ex.Variant != variant {
			continue
		}
		out = append(out, ex)
	}
	return out
}

// Select is Filter that fails with UnknownExampleError when nothing matches.
func (r *Registry) Select(pattern, variant string) ([]Example, error) {
	out := r.Filter(pattern, variant)
	if len(out) == 0 {
		key := pattern
		if variant != "" {
			key += "/" + variant
		}
		return nil, UnknownExampleError{Key: key}
	}
	return out, nil
}

// Patterns returns the distinct pattern names, sorted.
func (r *Registry) Patterns() []string {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, ex := range r.items {
		set.Add(ex.Pattern)
	}
	out := set.ToSlice()
	slices.Sort(out)
	return out
}
