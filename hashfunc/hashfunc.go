package hashfunc

import (
	"encoding/binary"
	"github.com/cespare/xxhash/v2"
	"hash/crc32"
)

// HashFunc - Given the current number of buckets and an element it returns the index of the bucket the element
// belongs to. Any index outside 0 -> bucketCount - 1 will result in an error down stream.
//
// The function is called again with a doubled bucketCount whenever the table rehashes, so it must derive the index
// from bucketCount rather than from any size it captured when it was created.
type HashFunc func(bucketCount int64, element []byte) int64

// CRC32 - Returns a HashFunc that takes crc32.ChecksumIEEE over the key part of an element and reduces it
// modulo the bucket count.
//   - keyStart is the offset of the key within the element
//   - keyLength is the length of the key
func CRC32(keyStart, keyLength int64) HashFunc {
	return func(bucketCount int64, element []byte) int64 {
		h := int64(crc32.ChecksumIEEE(element[keyStart : keyStart+keyLength]))
		return h % bucketCount
	}
}

// XXHash - Returns a HashFunc that takes xxhash.Sum64 over the key part of an element and reduces it
// modulo the bucket count.
//   - keyStart is the offset of the key within the element
//   - keyLength is the length of the key
func XXHash(keyStart, keyLength int64) HashFunc {
	return func(bucketCount int64, element []byte) int64 {
		h := xxhash.Sum64(element[keyStart : keyStart+keyLength])
		return int64(h % uint64(bucketCount))
	}
}

// ByteSum - Returns a HashFunc that adds up the bytes of the key, stopping at the first zero byte, and reduces
// the sum modulo the bucket count. It distributes poorly but is easy to reason about for short text keys.
func ByteSum(keyStart, keyLength int64) HashFunc {
	return func(bucketCount int64, element []byte) int64 {
		var sum int64
		for _, b := range element[keyStart : keyStart+keyLength] {
			if b == 0 {
				break
			}
			sum += int64(b)
		}
		return sum % bucketCount
	}
}

// Uint64 - Returns a HashFunc that reads a little endian uint64 at keyStart and reduces it modulo the bucket count.
// The pair size must be at least keyStart + 8, the returned HashFunc panics on shorter elements.
func Uint64(keyStart int64) HashFunc {
	return func(bucketCount int64, element []byte) int64 {
		k := binary.LittleEndian.Uint64(element[keyStart : keyStart+8])
		return int64(k % uint64(bucketCount))
	}
}
