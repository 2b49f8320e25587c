package tree

import (
	"fmt"
	"io"
)

// Node - A binary tree node. Left and Right are nil when there is no child.
type Node[T any] struct {
	Left  *Node[T]
	Right *Node[T]
	Value T
}

// NewNode - Returns a pointer to a new leaf node holding value
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// Add - Descends from N and links node as a leaf. At every level goRight(parent, node) decides whether node
// continues into the right subtree, otherwise it continues into the left one.
func (N *Node[T]) Add(node *Node[T], goRight func(parent, node *Node[T]) bool) {
	if node == nil {
		return
	}

	parent := N
	for {
		if goRight(parent, node) {
			if parent.Right == nil {
				parent.Right = node
				return
			}
			parent = parent.Right
		} else {
			if parent.Left == nil {
				parent.Left = node
				return
			}
			parent = parent.Left
		}
	}
}

// Find - Searches a sorted tree for value. cmp returns a negative number if value sorts before the node value,
// a positive number if after and zero on a match.
func (N *Node[T]) Find(value T, cmp func(value, nodeValue T) int) *Node[T] {
	for node := N; node != nil; {
		c := cmp(value, node.Value)
		switch {
		case c == 0:
			return node
		case c > 0:
			node = node.Right
		default:
			node = node.Left
		}
	}

	return nil
}

// Walk - Calls fn for every node in order, left subtree first
func (N *Node[T]) Walk(fn func(node *Node[T])) {
	if N == nil {
		return
	}
	N.Left.Walk(fn)
	fn(N)
	N.Right.Walk(fn)
}

// Free - Unlinks all nodes below and including N, children before parents, handing each to free if not nil
func (N *Node[T]) Free(free func(node *Node[T])) {
	if N == nil {
		return
	}
	N.Left.Free(free)
	N.Right.Free(free)
	N.Left, N.Right = nil, nil
	if free != nil {
		free(N)
	}
}

// Print - Clears the terminal and draws the tree with its root at column x, row y, using ANSI cursor movement.
// printNode writes one node value and returns the number of columns it used.
func (N *Node[T]) Print(w io.Writer, x, y int, printNode func(w io.Writer, node *Node[T]) int) {
	_, _ = fmt.Fprint(w, "\x1b[1;1H\x1b[2J")
	N.print(w, x, y, printNode)
	_, _ = fmt.Fprint(w, "\n")
}

// print - Draws the subtree at N and returns the first free column to the right of it
func (N *Node[T]) print(w io.Writer, x, y int, printNode func(w io.Writer, node *Node[T]) int) int {
	if N == nil {
		return x
	}

	if N.Left != nil {
		x = N.Left.print(w, x, y+2, printNode)
		cursor(w, x-1, y+1)
		_, _ = fmt.Fprint(w, "/")
	}

	cursor(w, x, y)
	x += printNode(w, N)

	if N.Right != nil {
		cursor(w, x, y+1)
		_, _ = fmt.Fprint(w, "\\")
		x = N.Right.print(w, x, y+2, printNode)
	}

	return x
}

// cursor - Moves the terminal cursor to column x, row y
func cursor(w io.Writer, x, y int) {
	_, _ = fmt.Fprintf(w, "\x1b[%d;%dH", y, x)
}
