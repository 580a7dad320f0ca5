package good_test

import (
	"testing"

	"github.com/sghaida/patterns/behavioural/iterator/good"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"[A, Left: [B, Left: [D], Right: [E]], Right: [C]]",
		"Depth-First: A B D E C ",
		"Breadth-First: A B C D E ",
	}, demotest.Run(t, good.Run))
}

func TestIterators(t *testing.T) {
	t.Parallel()

	tree := good.SampleTree()

	tests := []struct {
		name string
		it   good.Iterator[string]
		want []string
	}{
		{name: "depth first", it: tree.DepthFirst(), want: []string{"A", "B", "D", "E", "C"}},
		{name: "breadth first", it: tree.BreadthFirst(), want: []string{"A", "B", "C", "D", "E"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, good.Collect(tc.it))
		})
	}
}

func TestIterator_ExhaustedReturnsError(t *testing.T) {
	t.Parallel()

	it := good.Tree[int]{Root: good.NewNode[int](1, nil, nil)}.DepthFirst()
	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	assert.False(t, it.HasMore())
	_, err = it.Next()
	require.ErrorIs(t, err, good.ErrExhausted)
}

func TestIterator_EmptyTree(t *testing.T) {
	t.Parallel()

	var tree good.Tree[string]
	assert.False(t, tree.DepthFirst().HasMore())
	assert.False(t, tree.BreadthFirst().HasMore())
	assert.Equal(t, "[]", tree.String())
}

func TestIterators_AreIndependent(t *testing.T) {
	t.Parallel()

	tree := good.SampleTree()
	a, b := tree.DepthFirst(), tree.DepthFirst()

	_, _ = a.Next()
	_, _ = a.Next()
	v, err := b.Next()
	require.NoError(t, err)
	assert.Equal(t, "A", v)
}
