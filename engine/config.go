// Package engine implements the bucketed ordered-set core: a sorted
// sequence of unique terms partitioned into capacity-bounded buckets, with
// binary search across and within buckets and a split policy that keeps
// every per-operation cost bounded by the bucket size.
//
// The engine is single-threaded by design. It never blocks, never performs
// I/O, and carries no internal synchronization; exclusive access is the
// caller's responsibility.
package engine

import "fmt"

// Configuration holds the immutable tuning parameters of a set.
type Configuration struct {
	// MaxBucketSize is the hard upper bound on bucket length after any
	// completed operation. Must be positive.
	MaxBucketSize int

	// InitialSetCapacity is a preallocation hint for the bucket list.
	InitialSetCapacity int
}

// NewConfiguration derives a configuration from an expected item count.
// The bucket-list capacity is expectedItems/maxBucketSize plus one, so a
// set loaded to its expected size does not reallocate the bucket list.
// maxBucketSize must be positive.
func NewConfiguration(expectedItems, maxBucketSize int) Configuration {
	return Configuration{
		MaxBucketSize:      maxBucketSize,
		InitialSetCapacity: expectedItems/maxBucketSize + 1,
	}
}

// Validate reports whether the configuration is usable.
func (c Configuration) Validate() error {
	if c.MaxBucketSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxBucketSize, c.MaxBucketSize)
	}
	return nil
}
