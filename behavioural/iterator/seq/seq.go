// Package seq exposes tree traversals the way Go code consumes them: as
// range-over-func sequences.
//
// An explicit InOrder cursor (MoveNext/Current/Reset) is kept alongside for
// callers that need to step manually. DepthFirst and BreadthFirst are plain
// iter.Seq values, so they compose with for-range, early break and helpers
// like Last.
package seq

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/sghaida/patterns/internal/demo"
)

type BinaryNode[T any] struct {
	Value T
	Left  *BinaryNode[T]
	Right *BinaryNode[T]
}

func Leaf[T any](value T) *BinaryNode[T] { return &BinaryNode[T]{Value: value} }

func Node[T any](value T, left, right *BinaryNode[T]) *BinaryNode[T] {
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

type Tree[T any] struct {
	Root *BinaryNode[T]
}

func (t Tree[T]) String() string {
	if t.Root == nil {
		return "[]"
	}
	return t.Root.String()
}

// InOrder is a manual in-order cursor.
type InOrder[T any] struct {
	root    *BinaryNode[T]
	stack   []*BinaryNode[T]
	current *BinaryNode[T]
}

// Iterator returns a cursor positioned before the first in-order element.
func (t Tree[T]) Iterator() *InOrder[T] {
	it := &InOrder[T]{root: t.Root}
	it.Reset()
	return it
}

func (it *InOrder[T]) pushLeft(n *BinaryNode[T]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.Left
	}
}

// MoveNext advances the cursor and reports whether Current is valid.
func (it *InOrder[T]) MoveNext() bool {
	if len(it.stack) == 0 {
		it.current = nil
		return false
	}
	it.current = it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(it.current.Right)
	return true
}

// Current is the element at the cursor, or the zero value before the first
// MoveNext and after the last.
func (it *InOrder[T]) Current() T {
	if it.current == nil {
		var zero T
		return zero
	}
	return it.current.Value
}

// Reset rewinds the cursor to the start.
func (it *InOrder[T]) Reset() {
	it.current = nil
	it.stack = it.stack[:0]
	it.pushLeft(it.root)
}

// All yields the values in order.
func (t Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.Iterator()
		for it.MoveNext() {
			if !yield(it.Current()) {
				return
			}
		}
	}
}

// DepthFirst yields the values in pre-order.
func (t Tree[T]) DepthFirst() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.Root == nil {
			return
		}
		stack := []*BinaryNode[T]{t.Root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.Value) {
				return
			}
			if n.Right != nil {
				stack = append(stack, n.Right)
			}
			if n.Left != nil {
				stack = append(stack, n.Left)
			}
		}
	}
}

// BreadthFirst yields the values level by level.
func (t Tree[T]) BreadthFirst() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.Root == nil {
			return
		}
		queue := []*BinaryNode[T]{t.Root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if !yield(n.Value) {
				return
			}
			if n.Left != nil {
				queue = append(queue, n.Left)
			}
			if n.Right != nil {
				queue = append(queue, n.Right)
			}
		}
	}
}

// Last returns the final element of s. ok is false for an empty sequence.
func Last[T any](s iter.Seq[T]) (last T, ok bool) {
	for v := range s {
		last, ok = v, true
	}
	return last, ok
}

// Run prints the three traversals and the last element of two of them.
func Run(_ context.Context, env demo.Env) error {
	tree := Tree[string]{Root: Node("A", Node("B", Leaf("D"), Leaf("E")), Leaf("C"))}
	fmt.Fprintln(env.Out, tree)

	it := tree.Iterator()
	fmt.Fprint(env.Out, "In-Order: ")
	for it.MoveNext() {
		fmt.Fprintf(env.Out, "%v ", it.Current())
	}
	it.Reset()
	fmt.Fprintln(env.Out)

	fmt.Fprint(env.Out, "Depth-First: ")
	for v := range tree.DepthFirst() {
		fmt.Fprintf(env.Out, "%v ", v)
	}
	fmt.Fprintln(env.Out)

	next, stop := iter.Pull(tree.BreadthFirst())
	defer stop()
	fmt.Fprint(env.Out, "Breadth-First: ")
	for v, ok := next(); ok; v, ok = next() {
		fmt.Fprintf(env.Out, "%v ", v)
	}
	fmt.Fprintln(env.Out)

	last, _ := Last(tree.All())
	fmt.Fprintf(env.Out, "Last value in In-Order: %v\n", last)
	last, _ = Last(tree.BreadthFirst())
	fmt.Fprintf(env.Out, "Last value in Breadth-First: %v\n", last)
	return nil
}
