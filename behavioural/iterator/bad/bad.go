// Package bad walks a binary tree with throwaway closures written at the call site.
//
// Every caller that wants a traversal writes its own, and nothing can pause
// a walk halfway through.
package bad

import (
	"context"
	"fmt"
	"strings"

	"github.com/sghaida/patterns/internal/demo"
)

type BinaryNode[T any] struct {
	Value T
	Left  *BinaryNode[T]
	Right *BinaryNode[T]
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

func (t Tree[T]) String() string { return t.Root.String() }

// Run builds A(B(D,E),C) and prints two traversals.
func Run(_ context.Context, env demo.Env) error {
	nodeE := &BinaryNode[string]{Value: "E"}
	nodeD := &BinaryNode[string]{Value: "D"}
	nodeC := &BinaryNode[string]{Value: "C"}
	nodeB := &BinaryNode[string]{Value: "B", Left: nodeD, Right: nodeE}
	nodeA := &BinaryNode[string]{Value: "A", Left: nodeB, Right: nodeC}
	tree := Tree[string]{Root: nodeA}
	fmt.Fprintln(env.Out, tree)

	var depthFirst func(node *BinaryNode[string]) string
	depthFirst = func(node *BinaryNode[string]) string {
		if node == nil {
			return ""
		}
		left := depthFirst(node.Left)
		right := depthFirst(node.Right)
		return strings.TrimSpace(fmt.Sprintf("%s %s %s", node.Value, left, right))
	}
	fmt.Fprintf(env.Out, "Depth-First: %s\n", depthFirst(tree.Root))

	breadthFirst := func(node *BinaryNode[string]) string {
		if node == nil {
			return ""
		}
		queue := []*BinaryNode[string]{node}
		result := ""
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			result += current.Value + " "
			if current.Left != nil {
				queue = append(queue, current.Left)
			}
			if current.Right != nil {
				queue = append(queue, current.Right)
			}
		}
		return strings.TrimSpace(result)
	}
	fmt.Fprintf(env.Out, "Breadth-First: %s\n", breadthFirst(tree.Root))
	return nil
}
