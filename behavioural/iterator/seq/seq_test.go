package seq_test

import (
	"slices"
	"testing"

	"github.com/sghaida/patterns/behavioural/iterator/seq"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/stretchr/testify/assert"
)

func sample() seq.Tree[string] {
	return seq.Tree[string]{Root: seq.Node("A", seq.Node("B", seq.Leaf("D"), seq.Leaf("E")), seq.Leaf("C"))}
}

func TestRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"[A, Left: [B, Left: [D], Right: [E]], Right: [C]]",
		"In-Order: D B E A C ",
		"Depth-First: A B D E C ",
		"Breadth-First: A B C D E ",
		"Last value in In-Order: C",
		"Last value in Breadth-First: E",
	}, demotest.Run(t, seq.Run))
}

func TestSequences(t *testing.T) {
	t.Parallel()

	tree := sample()
	assert.Equal(t, []string{"D", "B", "E", "A", "C"}, slices.Collect(tree.All()))
	assert.Equal(t, []string{"A", "B", "D", "E", "C"}, slices.Collect(tree.DepthFirst()))
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, slices.Collect(tree.BreadthFirst()))
}

func TestSequences_StopEarly(t *testing.T) {
	t.Parallel()

	var seen []string
	for v := range sample().DepthFirst() {
		seen = append(seen, v)
		if v == "D" {
			break
		}
	}
	assert.Equal(t, []string{"A", "B", "D"}, seen)
}

func TestInOrder_Reset(t *testing.T) {
	t.Parallel()

	it := sample().Iterator()
	assert.Equal(t, "", it.Current())
	assert.True(t, it.MoveNext())
	assert.Equal(t, "D", it.Current())

	it.Reset()
	assert.Equal(t, "", it.Current())
	assert.True(t, it.MoveNext())
	assert.Equal(t, "D", it.Current())
}

func TestLast(t *testing.T) {
	t.Parallel()

	var empty seq.Tree[int]
	_, ok := seq.Last(empty.All())
	assert.False(t, ok)
	assert.Empty(t, slices.Collect(empty.BreadthFirst()))

	v, ok := seq.Last(sample().DepthFirst())
	assert.True(t, ok)
	assert.Equal(t, "C", v)
}
