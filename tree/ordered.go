package tree

import "golang.org/x/exp/constraints"

// Ascending - Add predicate for trees sorted from smallest to biggest value, equal values go left
func Ascending[T constraints.Ordered](parent, node *Node[T]) bool {
	return node.Value > parent.Value
}

// Compare - Find comparison matching Ascending
func Compare[T constraints.Ordered](value, nodeValue T) int {
	switch {
	case value < nodeValue:
		return -1
	case value > nodeValue:
		return 1
	}
	return 0
}
