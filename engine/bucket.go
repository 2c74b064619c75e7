package engine

import (
	"slices"

	"github.com/hupe1980/sortego/term"
)

// bucket is one capacity-bounded, strictly ascending, duplicate-free run of
// terms. It is the unit of local search and splitting; the capacity bound
// itself is enforced by the owning set.
type bucket struct {
	items []term.Term
}

// newBucket returns a bucket preallocated for capacity items.
func newBucket(capacity int) *bucket {
	return &bucket{items: make([]term.Term, 0, capacity)}
}

// bucketOf wraps an existing ascending run without copying.
func bucketOf(items []term.Term) *bucket {
	return &bucket{items: items}
}

// len returns the number of items in the bucket.
func (b *bucket) len() int { return len(b.items) }

// min returns the smallest item. The bucket must be non-empty.
func (b *bucket) min() term.Term { return b.items[0] }

// max returns the largest item. The bucket must be non-empty.
func (b *bucket) max() term.Term { return b.items[len(b.items)-1] }

// locate binary-searches the bucket for item. It returns the position of an
// equal element and true, or the insertion point that preserves ascending
// order and false.
func (b *bucket) locate(item term.Term) (int, bool) {
	return slices.BinarySearchFunc(b.items, item, term.Compare)
}

// insertAt inserts item at pos, shifting trailing elements up.
func (b *bucket) insertAt(pos int, item term.Term) {
	b.items = slices.Insert(b.items, pos, item)
}

// removeAt removes the element at pos, shifting trailing elements down.
func (b *bucket) removeAt(pos int) {
	b.items = slices.Delete(b.items, pos, pos+1)
}

// at returns the element at local offset pos.
func (b *bucket) at(pos int) term.Term { return b.items[pos] }

// split divides the bucket into two contiguous halves and returns the upper
// half as a new bucket, keeping the lower half in place. Both halves are
// non-empty; their concatenation equals the original contents. The bucket
// must hold at least two items.
func (b *bucket) split() *bucket {
	mid := len(b.items) / 2
	upper := make([]term.Term, len(b.items)-mid)
	copy(upper, b.items[mid:])
	b.items = b.items[:mid:mid]
	return bucketOf(upper)
}
