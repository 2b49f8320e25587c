package cds

import "fmt"

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Matches any NoRecordFound regardless of message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// NotInitialized - Custom error to inform that the hash table has no buckets, no hash function, a zero max per
// bucket or a zero pair size. Operations returning it have no effect.
type NotInitialized struct {
	msg string
}

// Error - Used to notify that the hash table is not initialized
func (N NotInitialized) Error() string {
	if N.msg == "" {
		return "hash table not initialized"
	}
	return N.msg
}

// Is - Matches any NotInitialized regardless of message
func (N NotInitialized) Is(target error) bool {
	_, ok := target.(NotInitialized)
	return ok
}

// WrongPairSize - Custom error to inform that an element does not have the pair size of the hash table
type WrongPairSize struct {
	Expected int64
	Actual   int64
}

// Error - Used to notify that an element has the wrong length
func (W WrongPairSize) Error() string {
	return fmt.Sprintf("wrong length of element, should be %d but was %d", W.Expected, W.Actual)
}

// Is - Matches any WrongPairSize regardless of sizes
func (W WrongPairSize) Is(target error) bool {
	_, ok := target.(WrongPairSize)
	return ok
}

// HashOutOfRange - Custom error to inform that the hash function broke its contract by returning an index
// outside 0 -> bucket count - 1
type HashOutOfRange struct {
	Index       int64
	BucketCount int64
}

// Error - Used to notify that the hash function returned an invalid index
func (H HashOutOfRange) Error() string {
	return fmt.Sprintf("index %d provided by hash function is out of range for %d buckets", H.Index, H.BucketCount)
}

// Is - Matches any HashOutOfRange regardless of index and bucket count
func (H HashOutOfRange) Is(target error) bool {
	_, ok := target.(HashOutOfRange)
	return ok
}
