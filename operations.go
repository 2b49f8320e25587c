package cds

// Insert - Adds a copy of element to the bucket given by the hash function. If that bucket then holds more than
// max per bucket elements the bucket count is doubled and the table rehashed.
//   - element has to be of the pair size given in the call to NewHashTable
//
// It returns:
//   - err is NotInitialized, WrongPairSize or HashOutOfRange, in which case the table is left unchanged
func (H *HashTable) Insert(element []byte) (err error) {
	if err = H.checkElement(element); err != nil {
		return
	}

	bucketNo, err := H.getBucketNo(element)
	if err != nil {
		return
	}

	bucket := &H.buckets[bucketNo]
	bucket.append(element)

	if bucket.Len() > H.maxPerBucket {
		H.rehash()
	}

	return
}

// LocateBucket - Returns the bucket that target hashes to. The bucket is only valid until the next Insert, Pop,
// ResizeTo or Free.
//   - target has to be of the pair size given in the call to NewHashTable
//
// It returns:
//   - bucket is the bucket, nil if err is not nil
//   - err is NotInitialized, WrongPairSize or HashOutOfRange
func (H *HashTable) LocateBucket(target []byte) (bucket *Bucket, err error) {
	if err = H.checkElement(target); err != nil {
		return
	}

	bucketNo, err := H.getBucketNo(target)
	if err != nil {
		return
	}

	bucket = &H.buckets[bucketNo]

	return
}

// Find - Locates the bucket of target and scans it for the first element for which equals(element, target) is true.
//   - target is an element carrying at least what equals and the hash function look at
//   - equals decides whether an element is the one searched for
//
// It returns:
//   - element is a copy of the matching element
//   - index is the position of the element within its bucket, or NotFound
//   - err is NoRecordFound on a miss, or NotInitialized, WrongPairSize or HashOutOfRange
func (H *HashTable) Find(target []byte, equals Equals) (element []byte, index int64, err error) {
	index = NotFound

	bucket, err := H.LocateBucket(target)
	if err != nil {
		return
	}

	i := bucket.Find(target, equals)
	if i == NotFound {
		err = NoRecordFound{}
		return
	}

	element = make([]byte, H.pairSize)
	_ = copy(element, bucket.At(i))
	index = i

	return
}

// Pop - Removes the first element matching target, as found by Find, and returns it.
//
// It returns:
//   - element is a copy of the removed element
//   - err is NoRecordFound on a miss, or NotInitialized, WrongPairSize or HashOutOfRange
func (H *HashTable) Pop(target []byte, equals Equals) (element []byte, err error) {
	bucket, err := H.LocateBucket(target)
	if err != nil {
		return
	}

	i := bucket.Find(target, equals)
	if i == NotFound {
		err = NoRecordFound{}
		return
	}

	element = make([]byte, H.pairSize)
	_ = copy(element, bucket.At(i))
	bucket.remove(i)

	return
}

// ForEach - Calls visitor with every element, bucket by bucket and in element order within each bucket.
// The visitor may modify element contents in place but must not insert or pop elements.
func (H *HashTable) ForEach(visitor Visitor) {
	for i := range H.buckets {
		bucket := &H.buckets[i]
		n := bucket.Len()
		for j := int64(0); j < n; j++ {
			visitor(bucket.At(j))
		}
	}
}

// Stat - Walks through all buckets and produces a HashTableStat.
//   - includeDistribution set to true will include a slice with the number of elements per bucket, false leaves HashTableStat.BucketDistribution nil.
func (H *HashTable) Stat(includeDistribution bool) (hashTableStat HashTableStat) {
	if includeDistribution {
		hashTableStat.BucketDistribution = make([]int64, len(H.buckets))
	}

	for i := range H.buckets {
		n := H.buckets[i].Len()
		hashTableStat.Records += n
		if n > 0 {
			hashTableStat.UsedBuckets++
		}
		if n > hashTableStat.LongestBucket {
			hashTableStat.LongestBucket = n
		}
		if includeDistribution {
			hashTableStat.BucketDistribution[i] = n
		}
	}

	return
}
