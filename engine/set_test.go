package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/hupe1980/sortego/term"
)

func mustNew(t *testing.T, expectedItems, maxBucketSize int) *SortedSet {
	t.Helper()
	s, err := New(NewConfiguration(expectedItems, maxBucketSize))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestConfigurationValidate(t *testing.T) {
	if _, err := Empty(Configuration{MaxBucketSize: 0}); !errors.Is(err, ErrInvalidMaxBucketSize) {
		t.Fatalf("Empty with zero bucket size: %v, want ErrInvalidMaxBucketSize", err)
	}

	cfg := NewConfiguration(1000, 16)
	if cfg.InitialSetCapacity != 1000/16+1 {
		t.Fatalf("InitialSetCapacity = %d, want %d", cfg.InitialSetCapacity, 1000/16+1)
	}
}

func TestAddScenario(t *testing.T) {
	// max_bucket_size = 4; add 1, 5, 3, 2, 4, 6.
	s := mustNew(t, 0, 4)

	for _, v := range []int64{1, 5, 3, 2, 4, 6} {
		if _, added := s.Add(term.Integer(v)); !added {
			t.Fatalf("Add(%d) reported duplicate", v)
		}
	}

	if s.Size() != 6 {
		t.Fatalf("Size = %d, want 6", s.Size())
	}
	for i, want := range []int64{1, 2, 3, 4, 5, 6} {
		got, ok := s.At(i)
		if !ok || got.Int() != want {
			t.Fatalf("At(%d) = (%v, %v), want %d", i, got, ok, want)
		}
	}

	fr, found := s.FindIndex(term.Integer(3))
	if !found || fr.Index != 2 {
		t.Fatalf("FindIndex(3) = (%+v, %v), want Index 2", fr, found)
	}

	idx, removed := s.Remove(term.Integer(5))
	if !removed || idx != 4 {
		t.Fatalf("Remove(5) = (%d, %v), want (4, true)", idx, removed)
	}
	assertContents(t, s, 1, 2, 3, 4, 6)
}

func TestAddDuplicate(t *testing.T) {
	s := mustNew(t, 0, 4)

	idx1, added := s.Add(term.Atom("x"))
	if !added || idx1 != 0 {
		t.Fatalf("first Add = (%d, %v), want (0, true)", idx1, added)
	}
	idx2, added := s.Add(term.Atom("x"))
	if added || idx2 != idx1 {
		t.Fatalf("second Add = (%d, %v), want (%d, false)", idx2, added, idx1)
	}
	if s.Size() != 1 {
		t.Fatalf("Size = %d after duplicate add, want 1", s.Size())
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	s := mustNew(t, 0, 3)
	for _, v := range []int64{10, 20, 30, 40, 50} {
		s.Add(term.Integer(v))
	}

	addIdx, added := s.Add(term.Integer(35))
	if !added {
		t.Fatal("Add(35) reported duplicate")
	}
	removeIdx, removed := s.Remove(term.Integer(35))
	if !removed || removeIdx != addIdx {
		t.Fatalf("Remove index %d != Add index %d", removeIdx, addIdx)
	}
	assertContents(t, s, 10, 20, 30, 40, 50)
}

func TestRemoveNotFound(t *testing.T) {
	s := mustNew(t, 0, 4)
	if _, removed := s.Remove(term.Integer(1)); removed {
		t.Fatal("Remove on empty set reported success")
	}
	s.Add(term.Integer(1))
	if _, removed := s.Remove(term.Integer(2)); removed {
		t.Fatal("Remove of absent value reported success")
	}
}

func TestRemoveKeepsEmptyBuckets(t *testing.T) {
	s := mustNew(t, 0, 2)
	for v := int64(1); v <= 8; v++ {
		s.Add(term.Integer(v))
	}
	bucketCount := len(s.BucketLens())

	// Empty out a middle range; buckets shrink to zero but stay.
	for v := int64(3); v <= 6; v++ {
		if _, removed := s.Remove(term.Integer(v)); !removed {
			t.Fatalf("Remove(%d) failed", v)
		}
	}
	if len(s.BucketLens()) != bucketCount {
		t.Fatalf("bucket count changed on removal: %d -> %d", bucketCount, len(s.BucketLens()))
	}
	assertContents(t, s, 1, 2, 7, 8)

	// Emptied buckets stay usable: re-insert into the hollowed-out middle.
	for v := int64(3); v <= 6; v++ {
		if _, added := s.Add(term.Integer(v)); !added {
			t.Fatalf("re-Add(%d) reported duplicate", v)
		}
	}
	assertContents(t, s, 1, 2, 3, 4, 5, 6, 7, 8)
}

func TestSplitting(t *testing.T) {
	// With max_bucket_size = m, inserting m*K+1 ascending values must
	// produce more than K buckets while staying ascending.
	const m, k = 4, 5
	s := mustNew(t, 0, m)

	for v := int64(0); v < m*k+1; v++ {
		s.Add(term.Integer(v))
	}

	lens := s.BucketLens()
	if len(lens) <= k {
		t.Fatalf("bucket count = %d, want > %d (debug: %s)", len(lens), k, s.Debug())
	}
	for i, n := range lens {
		if n > m {
			t.Fatalf("bucket %d has %d items, max is %d", i, n, m)
		}
	}
	if s.Size() != m*k+1 {
		t.Fatalf("Size = %d, want %d", s.Size(), m*k+1)
	}
	assertAscending(t, s.ToSlice())
}

func TestAddRandomOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := mustNew(t, 500, 8)

	perm := rng.Perm(500)
	for _, v := range perm {
		if _, added := s.Add(term.Integer(int64(v))); !added {
			t.Fatalf("Add(%d) reported duplicate", v)
		}
	}

	if s.Size() != 500 {
		t.Fatalf("Size = %d, want 500", s.Size())
	}
	out := s.ToSlice()
	assertAscending(t, out)
	for i, item := range out {
		if item.Int() != int64(i) {
			t.Fatalf("ToSlice[%d] = %d, want %d", i, item.Int(), i)
		}
	}
}

func TestAtOutOfBounds(t *testing.T) {
	s := mustNew(t, 0, 4)
	s.Add(term.Integer(1))

	if _, ok := s.At(1); ok {
		t.Fatal("At(size) should be out of bounds")
	}
	if _, ok := s.At(-1); ok {
		t.Fatal("At(-1) should be out of bounds")
	}
}

func TestSlice(t *testing.T) {
	s := mustNew(t, 0, 3)
	for v := int64(0); v < 10; v++ {
		s.Add(term.Integer(v))
	}

	// Spanning bucket boundaries.
	got := s.Slice(2, 5)
	if len(got) != 5 {
		t.Fatalf("Slice(2, 5) returned %d items", len(got))
	}
	for i, item := range got {
		if item.Int() != int64(i+2) {
			t.Fatalf("Slice(2, 5)[%d] = %d, want %d", i, item.Int(), i+2)
		}
	}

	// Clipped at the end.
	if got := s.Slice(8, 5); len(got) != 2 {
		t.Fatalf("Slice(8, 5) returned %d items, want 2", len(got))
	}
	// Past the end: empty, not a failure.
	if got := s.Slice(10, 3); len(got) != 0 {
		t.Fatalf("Slice(size, 3) returned %d items, want 0", len(got))
	}
	if got := s.Slice(100, 3); len(got) != 0 {
		t.Fatalf("Slice past size returned %d items, want 0", len(got))
	}
}

func TestAtMatchesToSlice(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := mustNew(t, 0, 4)
	for _, v := range rng.Perm(50) {
		s.Add(term.Integer(int64(v)))
	}

	all := s.ToSlice()
	for i := range all {
		got, ok := s.At(i)
		if !ok || !term.Equal(got, all[i]) {
			t.Fatalf("At(%d) = (%s, %v), want %s", i, got, ok, all[i])
		}
	}
	if _, ok := s.At(len(all)); ok {
		t.Fatal("At(size) should fail")
	}
}

func TestAppendBucket(t *testing.T) {
	s := mustNew(t, 0, 3)

	if err := s.AppendBucket(ints(10, 11, 12)); err != nil {
		t.Fatalf("AppendBucket of exact capacity failed: %v", err)
	}

	// Over capacity: fails, set unchanged.
	err := s.AppendBucket(ints(13, 14, 15, 16))
	if !errors.Is(err, ErrMaxBucketSizeExceeded) {
		t.Fatalf("err = %v, want ErrMaxBucketSizeExceeded", err)
	}
	assertContents(t, s, 10, 11, 12)

	// Unsorted payload.
	err = s.AppendBucket(ints(20, 19))
	if !errors.Is(err, ErrUnorderedBucket) {
		t.Fatalf("err = %v, want ErrUnorderedBucket", err)
	}
	// Duplicates count as unordered (strict ascent required).
	err = s.AppendBucket(ints(20, 20))
	if !errors.Is(err, ErrUnorderedBucket) {
		t.Fatalf("err = %v, want ErrUnorderedBucket", err)
	}

	// Overlapping the existing maximum.
	err = s.AppendBucket(ints(12, 13))
	if !errors.Is(err, ErrBucketOutOfOrder) {
		t.Fatalf("err = %v, want ErrBucketOutOfOrder", err)
	}
	assertContents(t, s, 10, 11, 12)

	// A second well-formed bucket, then normal adds interleave correctly.
	if err := s.AppendBucket(ints(20, 21)); err != nil {
		t.Fatalf("AppendBucket failed: %v", err)
	}
	s.Add(term.Integer(15))
	assertContents(t, s, 10, 11, 12, 15, 20, 21)
}

func TestAppendBucketEmptyPayload(t *testing.T) {
	s := mustNew(t, 0, 3)
	if err := s.AppendBucket(nil); err != nil {
		t.Fatalf("AppendBucket(nil) = %v, want nil", err)
	}
	if got := len(s.BucketLens()); got != 0 {
		t.Fatalf("empty payload created %d buckets", got)
	}
}

func TestMixedKindOrdering(t *testing.T) {
	s := mustNew(t, 0, 2)

	// One of each kind, inserted in descending rank order.
	items := []term.Term{
		term.Bitstring([]byte{1}),
		term.List(term.Integer(1)),
		term.Tuple(term.Integer(1), term.Integer(2)),
		term.Atom("a"),
		term.Integer(1),
	}
	for _, item := range items {
		s.Add(item)
	}

	out := s.ToSlice()
	assertAscending(t, out)
	wantKinds := []term.Kind{
		term.KindInteger, term.KindAtom, term.KindTuple, term.KindList, term.KindBitstring,
	}
	for i, k := range wantKinds {
		if out[i].Kind() != k {
			t.Fatalf("ToSlice[%d].Kind = %s, want %s", i, out[i].Kind(), k)
		}
	}
}

func TestDebug(t *testing.T) {
	s := mustNew(t, 0, 2)
	for v := int64(1); v <= 3; v++ {
		s.Add(term.Integer(v))
	}
	out := s.Debug()
	if out == "" {
		t.Fatal("Debug returned empty string")
	}
}

func assertContents(t *testing.T, s *SortedSet, want ...int64) {
	t.Helper()
	out := s.ToSlice()
	if len(out) != len(want) {
		t.Fatalf("contents %v, want %v", out, want)
	}
	for i, v := range want {
		if out[i].Kind() != term.KindInteger || out[i].Int() != v {
			t.Fatalf("contents[%d] = %s, want %d", i, out[i], v)
		}
	}
	if s.Size() != len(want) {
		t.Fatalf("Size = %d, want %d", s.Size(), len(want))
	}
}

func assertAscending(t *testing.T, items []term.Term) {
	t.Helper()
	for i := 1; i < len(items); i++ {
		if term.Compare(items[i-1], items[i]) >= 0 {
			t.Fatalf("not strictly ascending at %d: %s >= %s", i, items[i-1], items[i])
		}
	}
}
