package catalog

import (
	"context"
	"testing"

	"github.com/sghaida/patterns/internal/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, demo.Env) error { return nil }

func ex(pattern, variant string) Example {
	return Example{Pattern: pattern, Variant: variant, Category: Behavioural, Run: noop}
}

//
// -----------------------------------------------------------------------------
// NewRegistry / Provide
// -----------------------------------------------------------------------------

func TestNewRegistry_Empty(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NotNil(t, r)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Examples())
}

func TestProvide_ChainsAndKeepsOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	ret := r.Provide(ex("b", "good")).Provide(ex("a", "bad"))
	require.Same(t, r, ret)

	keys := []string{}
	for _, e := range r.Examples() {
		keys = append(keys, e.Key())
	}
	assert.Equal(t, []string{"b/good", "a/bad"}, keys)
}

func TestProvide_ReplaceKeepsPosition(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide(ex("a", "x")).Provide(ex("b", "x"))
	replacement := ex("a", "x")
	replacement.Summary = "second"
	r.Provide(replacement)

	require.Equal(t, 2, r.Len())
	assert.Equal(t, "a/x", r.Examples()[0].Key())
	assert.Equal(t, "second", r.Examples()[0].Summary)
}

//
// -----------------------------------------------------------------------------
// Lookup
// -----------------------------------------------------------------------------

func TestLookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide(ex("observer", "good"))

	got, err := r.Lookup("observer", "good")
	require.NoError(t, err)
	assert.Equal(t, "observer/good", got.Key())

	_, err = r.Lookup("observer", "ugly")
	var unknown UnknownExampleError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "observer/ugly", unknown.Key)
	assert.EqualError(t, err, `catalog: unknown example "observer/ugly"`)
}

//
// -----------------------------------------------------------------------------
// Filter / Select / Patterns
// -----------------------------------------------------------------------------

func TestFilter(t *testing.T) {
	t.Parallel()

	r := NewRegistry().
		Provide(ex("chain", "bad")).
		Provide(ex("chain", "good")).
		Provide(ex("state", "good"))

	tests := []struct {
		name    string
		pattern string
		variant string
		want    []string
	}{
		{name: "everything", want: []string{"chain/bad", "chain/good", "state/good"}},
		{name: "by pattern", pattern: "chain", want: []string{"chain/bad", "chain/good"}},
		{name: "by variant", variant: "good", want: []string{"chain/good", "state/good"}},
		{name: "both", pattern: "state", variant: "good", want: []string{"state/good"}},
		{name: "none", pattern: "state", variant: "bad", want: nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got []string
			for _, e := range r.Filter(tc.pattern, tc.variant) {
				got = append(got, e.Key())
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSelect_UnknownKey(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide(ex("chain", "bad"))

	_, err := r.Select("chains", "")
	assert.EqualError(t, err, `catalog: unknown example "chains"`)

	_, err = r.Select("chain", "good")
	assert.EqualError(t, err, `catalog: unknown example "chain/good"`)

	got, err := r.Select("chain", "")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestPatterns_DistinctAndSorted(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide(ex("state", "bad")).Provide(ex("chain", "bad")).Provide(ex("state", "good"))
	assert.Equal(t, []string{"chain", "state"}, r.Patterns())
}
