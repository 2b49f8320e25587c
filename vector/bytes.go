package vector

import "fmt"

// Bytes - A growable array of raw elements that all have the same size (stride). The stride is given on every
// call rather than stored, the caller is responsible for being consistent.
//
// Any append may move the backing storage, so slices returned by AtSized must not be held across an append.
type Bytes struct {
	arr  []byte
	size int64
}

// Len - Returns number of stride sized elements in the array
func (B *Bytes) Len() int64 {
	return B.size
}

// AppendSized - Grows the array by one stride sized element and copies data into it.
// If data is shorter than stride the remainder of the element is zero, if longer it is truncated.
func (B *Bytes) AppendSized(stride int64, data []byte) {
	start := B.size * stride
	if int64(cap(B.arr)) >= start+stride {
		B.arr = B.arr[:start+stride]
		for i := start; i < start+stride; i++ {
			B.arr[i] = 0
		}
	} else {
		B.arr = append(B.arr[:start], make([]byte, stride)...)
	}
	copy(B.arr[start:start+stride], data)
	B.size++
}

// AtSized - Returns the n:th stride sized element as a slice into the backing storage.
// Writing to the slice changes the element in place. It panics if n is out of range, just as At on a Vector does,
// since the storage beyond Len may still hold removed elements.
func (B *Bytes) AtSized(n, stride int64) []byte {
	if n < 0 || n >= B.size {
		panic(fmt.Sprintf("vector: index out of range [%d] with length %d", n, B.size))
	}

	start := n * stride
	return B.arr[start : start+stride : start+stride]
}

// PopAtSized - Removes the n:th element shifting all following elements one step towards the front.
// An out of range n is ignored.
func (B *Bytes) PopAtSized(n, stride int64) {
	if n < 0 || n >= B.size {
		return
	}

	start := n * stride
	end := B.size * stride
	copy(B.arr[start:], B.arr[start+stride:end])
	B.arr = B.arr[:end-stride]
	B.size--
}

// PopBackSized - Removes the last element, does nothing on an empty array
func (B *Bytes) PopBackSized(stride int64) {
	if B.size == 0 {
		return
	}

	B.arr = B.arr[:(B.size-1)*stride]
	B.size--
}

// Free - Releases storage and resets the array to empty
func (B *Bytes) Free() {
	B.arr = nil
	B.size = 0
}
