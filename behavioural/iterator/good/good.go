// Package good moves tree traversal into iterator objects.
//
// The tree hands out independent iterators; callers only ever ask HasMore and
// Next, so a walk can be paused, resumed or abandoned at any point.
package good

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sghaida/patterns/internal/demo"
)

// ErrExhausted is returned by Next once the iterator has no elements left.
var ErrExhausted = errors.New("iterator: no more elements")

type BinaryNode[T any] struct {
	Value T
	Left  *BinaryNode[T]
	Right *BinaryNode[T]
}

// NewNode is a small constructor so trees read top-down.
func NewNode[T any](value T, left, right *BinaryNode[T]) *BinaryNode[T] {
	return &BinaryNode[T]{Value: value, Left: left, Right: right}
}

func (n *BinaryNode[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%v", n.Value)
	if n.Left != nil {
		b.WriteString(", Left: " + n.Left.String())
	}
	if n.Right != nil {
		b.WriteString(", Right: " + n.Right.String())
	}
	b.WriteString("]")
	return b.String()
}

// Iterator walks a collection one element at a time.
type Iterator[T any] interface {
	HasMore() bool
	Next() (T, error)
}

type Tree[T any] struct {
	Root *BinaryNode[T]
}

func (t Tree[T]) String() string {
	if t.Root == nil {
		return "[]"
	}
	return t.Root.String()
}

// DepthFirst returns a pre-order iterator.
func (t Tree[T]) DepthFirst() Iterator[T] {
	it := &depthFirst[T]{}
	if t.Root != nil {
		it.stack = append(it.stack, t.Root)
	}
	return it
}

// BreadthFirst returns a level-order iterator.
func (t Tree[T]) BreadthFirst() Iterator[T] {
	it := &breadthFirst[T]{}
	if t.Root != nil {
		it.queue = append(it.queue, t.Root)
	}
	return it
}

type depthFirst[T any] struct {
	stack []*BinaryNode[T]
}

func (it *depthFirst[T]) HasMore() bool { return len(it.stack) > 0 }

func (it *depthFirst[T]) Next() (T, error) {
	if !it.HasMore() {
		var zero T
		return zero, ErrExhausted
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	// right first so left pops first
	if n.Right != nil {
		it.stack = append(it.stack, n.Right)
	}
	if n.Left != nil {
		it.stack = append(it.stack, n.Left)
	}
	return n.Value, nil
}

type breadthFirst[T any] struct {
	queue []*BinaryNode[T]
}

func (it *breadthFirst[T]) HasMore() bool { return len(it.queue) > 0 }

func (it *breadthFirst[T]) Next() (T, error) {
	if !it.HasMore() {
		var zero T
		return zero, ErrExhausted
	}
	n := it.queue[0]
	it.queue = it.queue[1:]
	if n.Left != nil {
		it.queue = append(it.queue, n.Left)
	}
	if n.Right != nil {
		it.queue = append(it.queue, n.Right)
	}
	return n.Value, nil
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for it.HasMore() {
		v, err := it.Next()
		if err != nil {
			break
		}
		out = append(out, v)
	}
	return out
}

// SampleTree is A(B(D,E),C).
func SampleTree() Tree[string] {
	return Tree[string]{Root: NewNode("A",
		NewNode("B", NewNode[string]("D", nil, nil), NewNode[string]("E", nil, nil)),
		NewNode[string]("C", nil, nil),
	)}
}

func printWalk[T any](env demo.Env, label string, it Iterator[T]) error {
	fmt.Fprint(env.Out, label+": ")
	for it.HasMore() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "%v ", v)
	}
	fmt.Fprintln(env.Out)
	return nil
}

// Run prints the sample tree and both traversals.
func Run(_ context.Context, env demo.Env) error {
	tree := SampleTree()
	fmt.Fprintln(env.Out, tree)

	if err := printWalk(env, "Depth-First", tree.DepthFirst()); err != nil {
		return err
	}
	return printWalk(env, "Breadth-First", tree.BreadthFirst())
}
