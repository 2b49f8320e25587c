package cds

import "github.com/gostonefire/cds/vector"

// Bucket - The chain of elements that hash to one slot of a HashTable. Elements are kept contiguously in
// insertion order, each exactly pair size bytes.
type Bucket struct {
	records  vector.Bytes
	pairSize int64
}

// Len - Returns number of elements in the bucket
func (B *Bucket) Len() int64 {
	return B.records.Len()
}

// At - Returns the i:th element as a slice into bucket storage. The content may be modified in place, but the
// slice must not be held across any Insert, Pop, ResizeTo or Free on the owning table. It panics if i is not
// within 0 -> Len() - 1.
func (B *Bucket) At(i int64) []byte {
	return B.records.AtSized(i, B.pairSize)
}

// Find - Scans the bucket in index order and returns the index of the first element for which
// equals(element, target) is true, or NotFound.
func (B *Bucket) Find(target []byte, equals Equals) int64 {
	n := B.records.Len()
	for i := int64(0); i < n; i++ {
		if equals(B.At(i), target) {
			return i
		}
	}

	return NotFound
}

// append - Adds a copy of element at the end of the bucket
func (B *Bucket) append(element []byte) {
	B.records.AppendSized(B.pairSize, element)
}

// remove - Removes the i:th element
func (B *Bucket) remove(i int64) {
	B.records.PopAtSized(i, B.pairSize)
}

// free - Releases the bucket storage
func (B *Bucket) free() {
	B.records.Free()
}
