package cds

import (
	"github.com/gostonefire/cds/hashfunc"
	"github.com/gostonefire/cds/internal/utils"
	"github.com/gostonefire/cds/vector"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NotFound - Index returned when a search misses, the all bits set value which reads as -1
const NotFound = vector.NotFound

// Equals - Returns true if element is the one searched for by target
type Equals func(element, target []byte) bool

// Visitor - Is called with each element during a traversal. The element is a slice into bucket storage.
type Visitor func(element []byte)

// HashTableInfo - Information structure describing the shape of a hash table
//   - BucketCount is the current number of buckets, it doubles every time a bucket overflows
//   - MaxPerBucket is the number of elements a bucket may hold before a rehash is triggered
//   - PairSize is the fixed size in bytes of every element
type HashTableInfo struct {
	BucketCount  int64
	MaxPerBucket int64
	PairSize     int64
}

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of elements stored
//   - UsedBuckets is the number of buckets holding at least one element
//   - LongestBucket is the number of elements in the fullest bucket
//   - BucketDistribution is the number of elements stored in each bucket
type HashTableStat struct {
	Records            int64
	UsedBuckets        int64
	LongestBucket      int64
	BucketDistribution []int64
}

// HashTable - A chained hash table of fixed size byte elements. The table never interprets element contents,
// it only hands them to the caller supplied hash function and equality predicates.
//
// The table is not safe for concurrent use.
type HashTable struct {
	buckets      []Bucket
	hashFunc     hashfunc.HashFunc
	maxPerBucket int64
	pairSize     int64
	logger       logrus.FieldLogger
}

// NewHashTable - Returns a pointer to a new hash table without buckets. ResizeTo must be called before any
// element can be inserted.
//   - hashFunc maps an element to a bucket index given the current bucket count
//   - maxPerBucket is the number of elements a bucket may hold, one more triggers a doubling of the bucket count
//   - pairSize is the size in bytes of every element
func NewHashTable(hashFunc hashfunc.HashFunc, maxPerBucket, pairSize int64) *HashTable {
	return &HashTable{
		hashFunc:     hashFunc,
		maxPerBucket: maxPerBucket,
		pairSize:     pairSize,
		logger:       logrus.StandardLogger(),
	}
}

// SetLogger - Replaces the logger used to report hash function contract violations and rehashes
func (H *HashTable) SetLogger(logger logrus.FieldLogger) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	H.logger = logger
}

// ResizeTo - Discards all buckets, and thereby all elements, and allocates bucketCount empty buckets.
// It is the only way of setting the initial bucket count.
func (H *HashTable) ResizeTo(bucketCount int64) (err error) {
	if bucketCount <= 0 {
		err = errors.Errorf("bucket count must be a positive value higher than 0 (zero), got %d", bucketCount)
		return
	}

	H.Free()
	H.buckets = make([]Bucket, bucketCount)
	for i := range H.buckets {
		H.buckets[i].pairSize = H.pairSize
	}

	return
}

// Free - Releases every bucket and leaves the table without buckets. Memory referenced from within elements is
// not touched, release that with ForEach first. Calling Free on a freed or never sized table is a no-op, and the
// table can be sized again with ResizeTo.
func (H *HashTable) Free() {
	for i := range H.buckets {
		H.buckets[i].free()
	}
	H.buckets = nil
}

// Info - Returns the current shape of the table
func (H *HashTable) Info() HashTableInfo {
	return HashTableInfo{
		BucketCount:  int64(len(H.buckets)),
		MaxPerBucket: H.maxPerBucket,
		PairSize:     H.pairSize,
	}
}

// KeyEquals - Returns an Equals that compares the key part of element and target byte by byte
//   - keyStart is the offset of the key within an element
//   - keyLength is the length of the key
func KeyEquals(keyStart, keyLength int64) Equals {
	return func(element, target []byte) bool {
		return utils.IsEqual(element[keyStart:keyStart+keyLength], target[keyStart:keyStart+keyLength])
	}
}

// checkElement - Verifies that the table is usable and that element has the right size
func (H *HashTable) checkElement(element []byte) (err error) {
	if len(H.buckets) == 0 || H.hashFunc == nil || H.maxPerBucket <= 0 || H.pairSize <= 0 {
		err = NotInitialized{}
		return
	}

	if int64(len(element)) != H.pairSize {
		err = WrongPairSize{Expected: H.pairSize, Actual: int64(len(element))}
		return
	}

	return
}

// getBucketNo - Returns the index of the bucket element belongs to, or HashOutOfRange if the hash function
// returns an index outside the table.
func (H *HashTable) getBucketNo(element []byte) (bucketNo int64, err error) {
	bucketCount := int64(len(H.buckets))
	bucketNo = H.hashFunc(bucketCount, element)
	if bucketNo < 0 || bucketNo >= bucketCount {
		err = HashOutOfRange{Index: bucketNo, BucketCount: bucketCount}
		H.logger.WithFields(logrus.Fields{
			"index":       bucketNo,
			"bucketCount": bucketCount,
		}).Error("index provided by hash function is out of range")
		return
	}

	return
}
