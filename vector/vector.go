package vector

import "sort"

// NotFound - Index returned by searches that did not match anything. It is the all bits set value, so it is
// distinguishable from any valid index and reads as -1.
const NotFound int64 = -1

// Vector - A growable array of elements of type T. The zero value is an empty vector ready for use.
type Vector[T any] struct {
	arr []T
}

// New - Returns a pointer to a new empty Vector, no storage is allocated until the first push.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// Len - Returns number of elements in the vector
func (V *Vector[T]) Len() int64 {
	return int64(len(V.arr))
}

// PushBack - Appends e at the back of the vector
func (V *Vector[T]) PushBack(e T) {
	V.arr = append(V.arr, e)
}

// At - Returns the n:th element, it panics if n is out of range just as indexing a slice would
func (V *Vector[T]) At(n int64) T {
	return V.arr[n]
}

// Set - Replaces the n:th element
func (V *Vector[T]) Set(n int64, e T) {
	V.arr[n] = e
}

// Back - Returns the last element and false if the vector is empty
func (V *Vector[T]) Back() (e T, ok bool) {
	if len(V.arr) == 0 {
		return
	}

	return V.arr[len(V.arr)-1], true
}

// PopBack - Removes the last element, does nothing on an empty vector
func (V *Vector[T]) PopBack() {
	if len(V.arr) == 0 {
		return
	}

	var zero T
	V.arr[len(V.arr)-1] = zero
	V.arr = V.arr[:len(V.arr)-1]
}

// PopAt - Removes the n:th element shifting all following elements one step towards the front.
// An out of range n is ignored.
func (V *Vector[T]) PopAt(n int64) {
	if n < 0 || n >= int64(len(V.arr)) {
		return
	}

	last := len(V.arr) - 1
	copy(V.arr[n:], V.arr[n+1:])
	var zero T
	V.arr[last] = zero
	V.arr = V.arr[:last]
}

// Find - Returns index of the first element for which match returns true, or NotFound
func (V *Vector[T]) Find(match func(e T) bool) int64 {
	for i, e := range V.arr {
		if match(e) {
			return int64(i)
		}
	}

	return NotFound
}

// Sort - Sorts the vector so that no two neighbours a, b satisfies outOfOrder(a, b).
// The sort is stable, equal elements keep their relative order.
func (V *Vector[T]) Sort(outOfOrder func(a, b T) bool) {
	sort.SliceStable(V.arr, func(i, j int) bool {
		return outOfOrder(V.arr[j], V.arr[i])
	})
}

// Each - Calls fn for every element in index order
func (V *Vector[T]) Each(fn func(i int64, e T)) {
	for i, e := range V.arr {
		fn(int64(i), e)
	}
}

// Slice - Returns the backing slice, it is only valid until the next mutation of the vector
func (V *Vector[T]) Slice() []T {
	return V.arr
}

// Free - Releases storage and resets the vector to empty
func (V *Vector[T]) Free() {
	V.arr = nil
}
