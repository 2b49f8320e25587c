package list

// FreeFunc - Is called with every node that is removed from or released with a list. It may be nil.
type FreeFunc[N any] func(node N)

// Singly - A node of a singly linked list. A lone node is a list of length one.
type Singly[T any] struct {
	next  *Singly[T]
	Value T
}

// NewSingly - Returns a pointer to a new unlinked node holding value
func NewSingly[T any](value T) *Singly[T] {
	return &Singly[T]{Value: value}
}

// Next - Returns the node after S, or nil
func (S *Singly[T]) Next() *Singly[T] {
	return S.next
}

// AddEnd - Links node after the last node reachable from S. If the list loops back on itself the node is linked
// in just before the loop would be entered a second time.
func (S *Singly[T]) AddEnd(node *Singly[T]) {
	last := S
	seen := map[*Singly[T]]bool{S: true}
	for last.next != nil && !seen[last.next] {
		last = last.next
		seen[last] = true
	}
	node.next = last.next
	last.next = node
}

// InsertNext - Links node directly after S, keeping the rest of the list after node
func (S *Singly[T]) InsertNext(node *Singly[T]) {
	node.next = S.next
	S.next = node
}

// RemoveNext - Unlinks the node after S, if any, and hands it to free
func (S *Singly[T]) RemoveNext(free FreeFunc[*Singly[T]]) {
	removed := S.next
	if removed == nil {
		return
	}

	S.next = removed.next
	removed.next = nil
	if free != nil {
		free(removed)
	}
}

// TraverseRight - Returns the node n steps to the right of S, or the last node if the list ends first.
// A negative n walks to the end of the list, stopping on cycles.
func (S *Singly[T]) TraverseRight(n int) *Singly[T] {
	node := S
	if n < 0 {
		seen := map[*Singly[T]]bool{S: true}
		for node.next != nil && !seen[node.next] {
			node = node.next
			seen[node] = true
		}
		return node
	}

	for ; node.next != nil && n > 0; n-- {
		node = node.next
	}

	return node
}

// Len - Returns number of nodes from S to the end of the list, stopping on cycles
func (S *Singly[T]) Len() (n int) {
	seen := make(map[*Singly[T]]bool)
	for node := S; node != nil && !seen[node]; node = node.next {
		seen[node] = true
		n++
	}

	return
}

// Values - Returns the values from S to the end of the list, stopping on cycles
func (S *Singly[T]) Values() (values []T) {
	seen := make(map[*Singly[T]]bool)
	for node := S; node != nil && !seen[node]; node = node.next {
		seen[node] = true
		values = append(values, node.Value)
	}

	return
}

// FreeSingly - Unlinks every node from head to the end of the list and hands each to free
func FreeSingly[T any](head *Singly[T], free FreeFunc[*Singly[T]]) {
	seen := make(map[*Singly[T]]bool)
	for node := head; node != nil && !seen[node]; {
		seen[node] = true
		next := node.next
		node.next = nil
		if free != nil {
			free(node)
		}
		node = next
	}
}
