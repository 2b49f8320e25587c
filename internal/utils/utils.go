package utils

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// ExtendByteSlice - Returns a copy of a extended with a number of zero bytes, prepended or appended
func ExtendByteSlice(a []byte, extension int64, prepend bool) (b []byte) {
	b = make([]byte, len(a))
	_ = copy(b, a)
	if extension > 0 {
		if prepend {
			b = append(make([]byte, extension), b...)
		} else {
			b = append(b, make([]byte, extension)...)
		}
	}

	return
}

// FixedLength - Returns a copy of a that is exactly length bytes, zero padded at the end or truncated
func FixedLength(a []byte, length int64) (b []byte) {
	if int64(len(a)) >= length {
		b = make([]byte, length)
		_ = copy(b, a)
		return
	}

	return ExtendByteSlice(a, length-int64(len(a)), false)
}

// TrimZeros - Returns a without its trailing zero bytes
func TrimZeros(a []byte) []byte {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}

	return a[:n]
}
