package sortego

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sortego/engine"
	"github.com/hupe1980/sortego/gate"
	"github.com/hupe1980/sortego/term"
)

var (
	// ErrNotFound is returned by Remove and FindIndex when no equal element
	// exists in the set.
	ErrNotFound = errors.New("not found")

	// ErrContended is returned when the set's exclusive gate is held by
	// another in-flight call. Transient: retry is the caller's choice.
	ErrContended = errors.New("contended")

	// ErrThrottled is returned when the configured admission rate rejects
	// the call. Transient, like ErrContended.
	ErrThrottled = errors.New("throttled")

	// ErrBadHandle is returned by a Registry when a handle is unknown or
	// already released.
	ErrBadHandle = errors.New("bad handle")

	// ErrInvalidMaxBucketSize is returned by the constructors when the max
	// bucket size is not positive.
	ErrInvalidMaxBucketSize = errors.New("max bucket size must be positive")

	// ErrUnorderedBucket is returned by AppendBucket when the bulk payload
	// is not strictly ascending under the total order.
	ErrUnorderedBucket = errors.New("bucket items not strictly ascending")

	// ErrBucketOutOfOrder is returned by AppendBucket when the bulk payload
	// does not sort strictly after the set's current contents.
	ErrBucketOutOfOrder = errors.New("bucket does not sort after existing contents")
)

// ErrOutOfBounds indicates an At index at or past the current size.
type ErrOutOfBounds struct {
	Index int
	Size  int
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("index out of bounds: %d >= %d", e.Index, e.Size)
}

// ErrMaxBucketSizeExceeded indicates an AppendBucket payload longer than
// the configured max bucket size. The set is unchanged.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMaxBucketSizeExceeded struct {
	Length        int
	MaxBucketSize int
	cause         error
}

func (e *ErrMaxBucketSizeExceeded) Error() string {
	return fmt.Sprintf("max bucket size exceeded: %d > %d", e.Length, e.MaxBucketSize)
}

func (e *ErrMaxBucketSizeExceeded) Unwrap() error { return e.cause }

// ErrUnsupportedType indicates a foreign value outside the five supported
// kinds. Detected at the boundary; such values never reach the engine.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrUnsupportedType struct {
	GoType string
	cause  error
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported type: %s", e.GoType)
}

func (e *ErrUnsupportedType) Unwrap() error { return e.cause }

// translateError maps gate, term and engine errors onto the public
// contract.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Transient boundary conditions.
	if errors.Is(err, gate.ErrContended) {
		return fmt.Errorf("%w: %w", ErrContended, err)
	}
	if errors.Is(err, gate.ErrThrottled) {
		return fmt.Errorf("%w: %w", ErrThrottled, err)
	}

	// Boundary validation.
	var ut *term.ErrUnsupportedType
	if errors.As(err, &ut) {
		return &ErrUnsupportedType{GoType: ut.GoType, cause: err}
	}

	// Engine sentinels. ErrMaxBucketSizeExceeded is translated at the call
	// site, which knows the offending lengths.
	if errors.Is(err, engine.ErrUnorderedBucket) {
		return fmt.Errorf("%w: %w", ErrUnorderedBucket, err)
	}
	if errors.Is(err, engine.ErrBucketOutOfOrder) {
		return fmt.Errorf("%w: %w", ErrBucketOutOfOrder, err)
	}
	if errors.Is(err, engine.ErrInvalidMaxBucketSize) {
		return fmt.Errorf("%w: %w", ErrInvalidMaxBucketSize, err)
	}

	return err
}
