package engine

import "errors"

// Engine-layer sentinels. These are used internally; the sortego package
// translates them into its public error contract.
var (
	// ErrInvalidMaxBucketSize is returned when a configuration carries a
	// non-positive max bucket size.
	ErrInvalidMaxBucketSize = errors.New("max bucket size must be positive")

	// ErrMaxBucketSizeExceeded is returned by AppendBucket when the payload
	// is longer than the configured max bucket size.
	ErrMaxBucketSizeExceeded = errors.New("max bucket size exceeded")

	// ErrUnorderedBucket is returned by AppendBucket when the payload is not
	// strictly ascending under the total order.
	ErrUnorderedBucket = errors.New("bucket items not strictly ascending")

	// ErrBucketOutOfOrder is returned by AppendBucket when the payload's
	// minimum does not sort strictly after the set's current maximum.
	ErrBucketOutOfOrder = errors.New("bucket does not sort after existing contents")
)
