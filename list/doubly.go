package list

// Doubly - A node of a doubly linked list. Linking functions keep next and previous pointers consistent.
type Doubly[T any] struct {
	next     *Doubly[T]
	previous *Doubly[T]
	Value    T
}

// NewDoubly - Returns a pointer to a new unlinked node holding value
func NewDoubly[T any](value T) *Doubly[T] {
	return &Doubly[T]{Value: value}
}

// Next - Returns the node after D, or nil
func (D *Doubly[T]) Next() *Doubly[T] {
	return D.next
}

// Previous - Returns the node before D, or nil
func (D *Doubly[T]) Previous() *Doubly[T] {
	return D.previous
}

// AddEnd - Links node after the last node of the list D belongs to
func (D *Doubly[T]) AddEnd(node *Doubly[T]) {
	D.TraverseRight(-1).InsertNext(node)
}

// AddStart - Links node before the first node of the list D belongs to
func (D *Doubly[T]) AddStart(node *Doubly[T]) {
	D.TraverseLeft(-1).InsertPrevious(node)
}

// InsertNext - Links node directly after D
func (D *Doubly[T]) InsertNext(node *Doubly[T]) {
	node.previous = D
	node.next = D.next
	if D.next != nil {
		D.next.previous = node
	}
	D.next = node
}

// InsertPrevious - Links node directly before D
func (D *Doubly[T]) InsertPrevious(node *Doubly[T]) {
	node.next = D
	node.previous = D.previous
	if D.previous != nil {
		D.previous.next = node
	}
	D.previous = node
}

// RemoveNext - Unlinks the node after D, if any, and hands it to free
func (D *Doubly[T]) RemoveNext(free FreeFunc[*Doubly[T]]) {
	removed := D.next
	if removed == nil {
		return
	}

	D.next = removed.next
	if removed.next != nil {
		removed.next.previous = D
	}
	removed.next, removed.previous = nil, nil
	if free != nil {
		free(removed)
	}
}

// RemovePrevious - Unlinks the node before D, if any, and hands it to free
func (D *Doubly[T]) RemovePrevious(free FreeFunc[*Doubly[T]]) {
	removed := D.previous
	if removed == nil {
		return
	}

	D.previous = removed.previous
	if removed.previous != nil {
		removed.previous.next = D
	}
	removed.next, removed.previous = nil, nil
	if free != nil {
		free(removed)
	}
}

// TraverseRight - Returns the node n steps to the right of D, or the last node if the list ends first.
// A negative n walks to the end, stopping on cycles.
func (D *Doubly[T]) TraverseRight(n int) *Doubly[T] {
	return D.traverse(n, func(node *Doubly[T]) *Doubly[T] { return node.next })
}

// TraverseLeft - Returns the node n steps to the left of D, or the first node if the list starts first.
// A negative n walks to the start, stopping on cycles.
func (D *Doubly[T]) TraverseLeft(n int) *Doubly[T] {
	return D.traverse(n, func(node *Doubly[T]) *Doubly[T] { return node.previous })
}

// Values - Returns the values from the start of the list D belongs to until its end
func (D *Doubly[T]) Values() (values []T) {
	seen := make(map[*Doubly[T]]bool)
	for node := D.TraverseLeft(-1); node != nil && !seen[node]; node = node.next {
		seen[node] = true
		values = append(values, node.Value)
	}

	return
}

func (D *Doubly[T]) traverse(n int, step func(node *Doubly[T]) *Doubly[T]) *Doubly[T] {
	node := D
	if n < 0 {
		seen := map[*Doubly[T]]bool{D: true}
		for step(node) != nil && !seen[step(node)] {
			node = step(node)
			seen[node] = true
		}
		return node
	}

	for ; step(node) != nil && n > 0; n-- {
		node = step(node)
	}

	return node
}

// FreeDoubly - Rewinds to the first node of the list node belongs to, then unlinks every node and hands each to free
func FreeDoubly[T any](node *Doubly[T], free FreeFunc[*Doubly[T]]) {
	if node == nil {
		return
	}

	seen := make(map[*Doubly[T]]bool)
	for n := node.TraverseLeft(-1); n != nil && !seen[n]; {
		seen[n] = true
		next := n.next
		n.next, n.previous = nil, nil
		if free != nil {
			free(n)
		}
		n = next
	}
}
