package cds

import "github.com/sirupsen/logrus"

// move - An element at index from in the bucket being rehashed that belongs in bucket to
type move struct {
	from int64
	to   int64
}

// rehash - Doubles the bucket count and moves every element of the original buckets whose index changes under
// the new count. Elements keeping their index stay where they are, and the new buckets are never rehashed
// themselves since everything in them was placed using the new count.
//
// Each original bucket is handled in two passes: first the moves are collected, then the elements are appended
// to their new buckets in their original order and removed from the old bucket from the back.
func (H *HashTable) rehash() {
	oldCount := int64(len(H.buckets))
	newCount := oldCount * 2

	H.buckets = append(H.buckets, make([]Bucket, oldCount)...)
	for i := oldCount; i < newCount; i++ {
		H.buckets[i].pairSize = H.pairSize
	}

	H.logger.WithFields(logrus.Fields{
		"fromBuckets": oldCount,
		"toBuckets":   newCount,
	}).Debug("rehashing hash table")

	var moves []move
	for i := int64(0); i < oldCount; i++ {
		bucket := &H.buckets[i]
		moves = moves[:0]

		n := bucket.Len()
		for j := int64(0); j < n; j++ {
			to := H.hashFunc(newCount, bucket.At(j))
			if to == i {
				continue
			}
			if to < 0 || to >= newCount {
				H.logger.WithFields(logrus.Fields{
					"index":       to,
					"bucketCount": newCount,
				}).Error("index provided by hash function is out of range, element left in place")
				continue
			}
			moves = append(moves, move{from: j, to: to})
		}

		for _, m := range moves {
			H.buckets[m.to].append(bucket.At(m.from))
		}
		for k := len(moves) - 1; k >= 0; k-- {
			bucket.remove(moves[k].from)
		}
	}
}
