package engine

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/hupe1980/sortego/term"
)

// SortedSet is the bucketed ordered-set core. It holds an ordered list of
// buckets whose concatenation is the full ascending, duplicate-free
// contents of the set.
//
// After every completed operation: each bucket is strictly ascending, the
// maximum of bucket i sorts strictly before the minimum of any later
// non-empty bucket, and no bucket exceeds the configured max bucket size.
// Buckets are split on insert overflow but never merged or deleted on
// removal, so long deletion-heavy workloads retain (empty) buckets; this is
// a deliberate simplicity/memory trade-off.
type SortedSet struct {
	cfg     Configuration
	buckets []*bucket
}

// FindResult locates an element both locally and globally.
type FindResult struct {
	// BucketIndex is the position of the owning bucket in the bucket list.
	BucketIndex int
	// InnerIndex is the element's position within the owning bucket.
	InnerIndex int
	// Index is the global zero-based ordinal across the whole set.
	Index int
}

// Empty creates a set with zero buckets and no preallocation.
func Empty(cfg Configuration) (*SortedSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SortedSet{cfg: cfg}, nil
}

// New creates a set with zero buckets, reserving bucket-list storage for
// the configured initial capacity to avoid reallocation churn during
// growth.
func New(cfg Configuration) (*SortedSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SortedSet{
		cfg:     cfg,
		buckets: make([]*bucket, 0, max(cfg.InitialSetCapacity, 0)),
	}, nil
}

// Configuration returns the set's immutable configuration.
func (s *SortedSet) Configuration() Configuration { return s.cfg }

// Size returns the total element count across all buckets.
func (s *SortedSet) Size() int {
	total := 0
	for _, b := range s.buckets {
		total += b.len()
	}
	return total
}

// Add inserts item unless an equal element is already present. It returns
// the element's global index and whether the set changed: (index, true) for
// a fresh insert, (index, false) when item was a duplicate of the element
// at index.
//
// When the insert pushes the owning bucket past the max bucket size, the
// bucket is split in two contiguous halves that replace it in the bucket
// list.
func (s *SortedSet) Add(item term.Term) (int, bool) {
	if len(s.buckets) == 0 {
		b := newBucket(s.cfg.MaxBucketSize)
		b.insertAt(0, item)
		s.buckets = append(s.buckets, b)
		return 0, true
	}

	bi := s.ownerBucket(item)
	b := s.buckets[bi]
	pos, found := b.locate(item)
	idx := s.prefixLen(bi) + pos
	if found {
		return idx, false
	}

	b.insertAt(pos, item)
	if b.len() > s.cfg.MaxBucketSize {
		upper := b.split()
		s.buckets = slices.Insert(s.buckets, bi+1, upper)
	}
	return idx, true
}

// Remove deletes the element equal to item. It returns the element's prior
// global index and true, or (0, false) when no equal element exists.
// Buckets shrink but are never merged or deleted.
func (s *SortedSet) Remove(item term.Term) (int, bool) {
	fr, ok := s.FindIndex(item)
	if !ok {
		return 0, false
	}
	s.buckets[fr.BucketIndex].removeAt(fr.InnerIndex)
	return fr.Index, true
}

// FindIndex locates the element equal to item without mutating the set.
func (s *SortedSet) FindIndex(item term.Term) (FindResult, bool) {
	if len(s.buckets) == 0 {
		return FindResult{}, false
	}
	bi := s.ownerBucket(item)
	pos, found := s.buckets[bi].locate(item)
	if !found {
		return FindResult{}, false
	}
	return FindResult{
		BucketIndex: bi,
		InnerIndex:  pos,
		Index:       s.prefixLen(bi) + pos,
	}, true
}

// At returns the element at the global index, or false when the index is
// at or past the current size.
func (s *SortedSet) At(index int) (term.Term, bool) {
	if index < 0 {
		return term.Term{}, false
	}
	remaining := index
	for _, b := range s.buckets {
		if remaining < b.len() {
			return b.at(remaining), true
		}
		remaining -= b.len()
	}
	return term.Term{}, false
}

// Slice returns up to amount consecutive elements starting at the global
// ordinal start, spanning bucket boundaries. It returns fewer elements
// (possibly none) when the set is exhausted first; a start at or past the
// size yields an empty result, never a failure.
func (s *SortedSet) Slice(start, amount int) []term.Term {
	if start < 0 || amount <= 0 {
		return nil
	}
	out := make([]term.Term, 0, min(amount, s.Size()))
	remaining := start
	for _, b := range s.buckets {
		n := b.len()
		if remaining >= n {
			remaining -= n
			continue
		}
		for pos := remaining; pos < n && len(out) < amount; pos++ {
			out = append(out, b.at(pos))
		}
		remaining = 0
		if len(out) == amount {
			break
		}
	}
	return out
}

// ToSlice flattens all buckets into one ascending sequence.
func (s *SortedSet) ToSlice() []term.Term {
	out := make([]term.Term, 0, s.Size())
	for _, b := range s.buckets {
		out = append(out, b.items...)
	}
	return out
}

// AppendBucket appends items as a new terminal bucket, bypassing
// per-element search. This is the bulk-load fast path for pre-partitioned,
// already-ordered data.
//
// The payload must fit in one bucket (ErrMaxBucketSizeExceeded), be
// strictly ascending under the total order (ErrUnorderedBucket), and sort
// strictly after everything already in the set (ErrBucketOutOfOrder). A
// failed call leaves the set unchanged. An empty payload is a no-op.
func (s *SortedSet) AppendBucket(items []term.Term) error {
	if len(items) > s.cfg.MaxBucketSize {
		return fmt.Errorf("%w: %d > %d", ErrMaxBucketSizeExceeded, len(items), s.cfg.MaxBucketSize)
	}
	for i := 1; i < len(items); i++ {
		if term.Compare(items[i-1], items[i]) >= 0 {
			return fmt.Errorf("%w: position %d", ErrUnorderedBucket, i)
		}
	}
	if len(items) == 0 {
		return nil
	}
	if maxItem, ok := s.maxItem(); ok && term.Compare(items[0], maxItem) <= 0 {
		return fmt.Errorf("%w: %s does not sort after %s", ErrBucketOutOfOrder, items[0], maxItem)
	}
	s.buckets = append(s.buckets, bucketOf(slices.Clone(items)))
	return nil
}

// Debug renders the bucket structure for diagnostics. The format is not
// part of any compatibility contract.
func (s *SortedSet) Debug() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SortedSet{max_bucket_size: %d, size: %d, buckets: [", s.cfg.MaxBucketSize, s.Size())
	for i, b := range s.buckets {
		if i > 0 {
			sb.WriteString(", ")
		}
		if b.len() == 0 {
			sb.WriteString("0")
			continue
		}
		fmt.Fprintf(&sb, "%d(%s..%s)", b.len(), b.min(), b.max())
	}
	sb.WriteString("]}")
	return sb.String()
}

// BucketLens returns the current bucket lengths in order. Diagnostic, like
// Debug, but structured; used by tests to observe the split policy.
func (s *SortedSet) BucketLens() []int {
	lens := make([]int, len(s.buckets))
	for i, b := range s.buckets {
		lens[i] = b.len()
	}
	return lens
}

// ownerBucket binary-searches the bucket list for the bucket that owns or
// would receive item. Empty buckets inherit the bound of their nearest
// non-empty left neighbor, which keeps the search predicate monotonic; the
// search therefore never resolves to an empty bucket except when it falls
// back to the terminal one. The bucket list must be non-empty.
func (s *SortedSet) ownerBucket(item term.Term) int {
	n := len(s.buckets)
	i := sort.Search(n, func(i int) bool {
		for ; i >= 0; i-- {
			if b := s.buckets[i]; b.len() > 0 {
				return term.Compare(b.max(), item) >= 0
			}
		}
		return false
	})
	if i == n {
		// Greater than every bound: the terminal bucket takes it.
		return n - 1
	}
	return i
}

// prefixLen sums the lengths of all buckets strictly before bucketIdx.
func (s *SortedSet) prefixLen(bucketIdx int) int {
	if bucketIdx > len(s.buckets) {
		panic(fmt.Sprintf("engine: prefix sum past bucket list (%d > %d)", bucketIdx, len(s.buckets)))
	}
	total := 0
	for _, b := range s.buckets[:bucketIdx] {
		total += b.len()
	}
	return total
}

// maxItem returns the set's current maximum, scanning back over trailing
// empty buckets.
func (s *SortedSet) maxItem() (term.Term, bool) {
	for i := len(s.buckets) - 1; i >= 0; i-- {
		if b := s.buckets[i]; b.len() > 0 {
			return b.max(), true
		}
	}
	return term.Term{}, false
}
