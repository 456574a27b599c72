// Package distribution measures how evenly hash values spread over a fixed
// number of buckets.
package distribution

import (
	"errors"
	"iter"
)

// CriticalValue is the 95% chi-square critical value for 2052 degrees of
// freedom, i.e. 2053 buckets.
const CriticalValue = 2158.4981036918693

var (
	ErrNoBuckets      = errors.New("bucket count must be positive")
	ErrBadExpectation = errors.New("expected bucket size must be positive")
)

// Tally counts hashes per bucket, the bucket being hash mod numBuckets.
func Tally(hashes iter.Seq[uint64], numBuckets uint64) ([]uint64, error) {
	if numBuckets == 0 {
		return nil, ErrNoBuckets
	}

	buckets := make([]uint64, numBuckets)
	for h := range hashes {
		buckets[h%numBuckets]++
	}

	return buckets, nil
}

// Pearson returns Σ (count − expected)² / expected over all buckets.
func Pearson(buckets []uint64, expected float64) (float64, error) {
	if len(buckets) == 0 {
		return 0, ErrNoBuckets
	}
	if !(expected > 0) {
		return 0, ErrBadExpectation
	}

	var stat float64
	for _, size := range buckets {
		diff := float64(size) - expected
		stat += diff * diff / expected
	}

	return stat, nil
}
