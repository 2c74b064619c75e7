// Package sortego provides an embeddable ordered-set engine for Go.
//
// A Set maintains unique, heterogeneously-typed values in strict ascending
// order with sub-linear amortized cost: the sorted sequence is partitioned
// into capacity-bounded buckets, located by binary search across bucket
// bounds and within buckets, and split when an insert would overflow a
// bucket. Supported values are the five closed kinds of the term model:
// integers, atoms (text), tuples, lists and bitstrings, ordered first by
// kind and then by payload (see the term package).
//
// # Quick Start
//
//	set, err := sortego.New(10_000, 500) // expected items, max bucket size
//	if err != nil {
//	    panic(err)
//	}
//
//	res, _ := set.Add(3)
//	res, _ = set.Add("three")
//	res, _ = set.Add(3) // res.Duplicate == true
//
//	items, _ := set.ToList() // [int64(3), "three"]
//
// # Concurrency
//
// Every operation, read or write, runs under a fail-fast exclusive gate:
// if another call is in flight, the operation fails immediately with
// ErrContended instead of blocking. Retry policy belongs to the embedder.
// No operation blocks, suspends or performs I/O.
//
// # Handles
//
// Embedders that address sets by opaque identifier rather than pointer can
// use a Registry, which owns set lifetime and resolves handles.
package sortego

import (
	"errors"
	"time"

	"github.com/hupe1980/sortego/engine"
	"github.com/hupe1980/sortego/gate"
	"github.com/hupe1980/sortego/term"
)

// AddResult reports the outcome of an Add: the element's global index, and
// whether it was already present (in which case the set is unchanged and
// Index is the existing element's position).
type AddResult struct {
	Index     int
	Duplicate bool
}

// Set is an ordered set of unique terms behind a fail-fast exclusive gate.
type Set struct {
	set     *engine.SortedSet
	gate    *gate.Gate
	logger  *Logger
	metrics MetricsCollector
}

// Empty creates a set with no preallocation.
func Empty(maxBucketSize int, optFns ...Option) (*Set, error) {
	cfg := engine.Configuration{MaxBucketSize: maxBucketSize}
	es, err := engine.Empty(cfg)
	if err != nil {
		return nil, translateError(err)
	}
	return newSet(es, optFns), nil
}

// New creates a set preallocated for roughly expectedItems elements:
// bucket-list storage is reserved for expectedItems/maxBucketSize+1
// buckets, avoiding reallocation churn while the set grows to its expected
// size.
func New(expectedItems, maxBucketSize int, optFns ...Option) (*Set, error) {
	if maxBucketSize <= 0 {
		return nil, translateError(engine.ErrInvalidMaxBucketSize)
	}
	es, err := engine.New(engine.NewConfiguration(expectedItems, maxBucketSize))
	if err != nil {
		return nil, translateError(err)
	}
	return newSet(es, optFns), nil
}

func newSet(es *engine.SortedSet, optFns []Option) *Set {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Set{
		set:     es,
		gate:    gate.NewLimited(opts.opsRate, opts.burst),
		logger:  opts.logger,
		metrics: opts.metrics,
	}
}

// MaxBucketSize returns the set's immutable bucket capacity bound.
func (s *Set) MaxBucketSize() int {
	return s.set.Configuration().MaxBucketSize
}

// Add inserts v unless an equal element is already present.
//
// v may be any supported foreign shape (see term.FromAny) or a term.Term.
// Unsupported shapes fail with *ErrUnsupportedType before the engine is
// touched.
func (s *Set) Add(v any) (AddResult, error) {
	start := time.Now()
	res, err := s.add(v)
	err = translateError(err)
	s.metrics.RecordAdd(time.Since(start), err)
	s.logger.LogAdd(res.Index, res.Duplicate, err)
	if err != nil {
		return AddResult{}, err
	}
	return res, nil
}

func (s *Set) add(v any) (AddResult, error) {
	item, err := term.FromAny(v)
	if err != nil {
		return AddResult{}, err
	}
	var res AddResult
	err = s.gate.Do(func() error {
		idx, added := s.set.Add(item)
		res = AddResult{Index: idx, Duplicate: !added}
		return nil
	})
	return res, err
}

// Remove deletes the element equal to v, returning its prior global index.
// Fails with ErrNotFound when no equal element exists.
func (s *Set) Remove(v any) (int, error) {
	start := time.Now()
	idx, err := s.remove(v)
	err = translateError(err)
	s.metrics.RecordRemove(time.Since(start), err)
	s.logger.LogRemove(idx, err)
	if err != nil {
		return 0, err
	}
	return idx, nil
}

func (s *Set) remove(v any) (int, error) {
	item, err := term.FromAny(v)
	if err != nil {
		return 0, err
	}
	var idx int
	err = s.gate.Do(func() error {
		i, removed := s.set.Remove(item)
		if !removed {
			return ErrNotFound
		}
		idx = i
		return nil
	})
	return idx, err
}

// FindIndex returns the global index of the element equal to v without
// mutating the set. Fails with ErrNotFound when no equal element exists.
func (s *Set) FindIndex(v any) (int, error) {
	start := time.Now()
	idx, err := s.findIndex(v)
	err = translateError(err)
	s.metrics.RecordRead(time.Since(start), err)
	s.logger.LogRead("find_index", err)
	if err != nil {
		return 0, err
	}
	return idx, nil
}

func (s *Set) findIndex(v any) (int, error) {
	item, err := term.FromAny(v)
	if err != nil {
		return 0, err
	}
	var idx int
	err = s.gate.Do(func() error {
		fr, found := s.set.FindIndex(item)
		if !found {
			return ErrNotFound
		}
		idx = fr.Index
		return nil
	})
	return idx, err
}

// At returns the element at the global index. Fails with *ErrOutOfBounds
// when index is at or past the current size.
func (s *Set) At(index int) (any, error) {
	start := time.Now()
	var out any
	err := s.gate.Do(func() error {
		item, ok := s.set.At(index)
		if !ok {
			return &ErrOutOfBounds{Index: index, Size: s.set.Size()}
		}
		out = term.ToAny(item)
		return nil
	})
	err = translateError(err)
	s.metrics.RecordRead(time.Since(start), err)
	s.logger.LogRead("at", err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Slice returns up to amount consecutive elements starting at the global
// ordinal start. It returns fewer (possibly zero) elements when the set is
// exhausted first; a start at or past the size yields an empty slice, not
// an error.
func (s *Set) Slice(start, amount int) ([]any, error) {
	begin := time.Now()
	var out []any
	err := s.gate.Do(func() error {
		out = term.ToAnySlice(s.set.Slice(start, amount))
		return nil
	})
	err = translateError(err)
	s.metrics.RecordRead(time.Since(begin), err)
	s.logger.LogRead("slice", err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AppendBucket appends items as a new terminal bucket, bypassing
// per-element search: the bulk-load fast path for pre-partitioned,
// already-ordered data.
//
// The payload must fit within the max bucket size
// (*ErrMaxBucketSizeExceeded), be strictly ascending (ErrUnorderedBucket)
// and sort strictly after the current contents (ErrBucketOutOfOrder). A
// failed call leaves the set unchanged.
func (s *Set) AppendBucket(items []any) error {
	start := time.Now()
	err := s.appendBucket(items)
	err = translateError(err)
	if errors.Is(err, engine.ErrMaxBucketSizeExceeded) {
		err = &ErrMaxBucketSizeExceeded{
			Length:        len(items),
			MaxBucketSize: s.set.Configuration().MaxBucketSize,
			cause:         err,
		}
	}
	s.metrics.RecordAppendBucket(len(items), time.Since(start), err)
	s.logger.LogAppendBucket(len(items), err)
	return err
}

func (s *Set) appendBucket(items []any) error {
	terms, err := term.FromAnySlice(items)
	if err != nil {
		return err
	}
	return s.gate.Do(func() error {
		return s.set.AppendBucket(terms)
	})
}

// Size returns the total element count.
func (s *Set) Size() (int, error) {
	start := time.Now()
	var size int
	err := s.gate.Do(func() error {
		size = s.set.Size()
		return nil
	})
	err = translateError(err)
	s.metrics.RecordRead(time.Since(start), err)
	s.logger.LogRead("size", err)
	if err != nil {
		return 0, err
	}
	return size, nil
}

// ToList flattens the set into one ascending slice of foreign values.
func (s *Set) ToList() ([]any, error) {
	start := time.Now()
	var out []any
	err := s.gate.Do(func() error {
		out = term.ToAnySlice(s.set.ToSlice())
		return nil
	})
	err = translateError(err)
	s.metrics.RecordRead(time.Since(start), err)
	s.logger.LogRead("to_list", err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Debug renders the bucket structure for diagnostics. The format is not
// part of any compatibility contract.
func (s *Set) Debug() (string, error) {
	start := time.Now()
	var out string
	err := s.gate.Do(func() error {
		out = s.set.Debug()
		return nil
	})
	err = translateError(err)
	s.metrics.RecordRead(time.Since(start), err)
	s.logger.LogRead("debug", err)
	if err != nil {
		return "", err
	}
	return out, nil
}
