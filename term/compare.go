package term

import (
	"bytes"
	"cmp"
)

// Compare defines the strict total order over terms. It returns a negative
// value when a sorts before b, zero when they are equal, and a positive
// value when a sorts after b.
//
// Cross-kind ordering follows the kind rank (Integer < Atom < Tuple < List
// < Bitstring) regardless of payload. Within a kind:
//
//   - Integer: numeric order.
//   - Atom: bytewise lexicographic order of the text.
//   - Tuple: shorter arity first, then elements pairwise.
//   - List: elements pairwise, then shorter length first.
//   - Bitstring: bytewise lexicographic, shorter first on an equal prefix.
//
// The relation is reflexive-consistent, antisymmetric and transitive, which
// the engine's binary searches rely on.
func Compare(a, b Term) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}

	switch a.kind {
	case KindInteger:
		return cmp.Compare(a.num, b.num)
	case KindAtom:
		// Bytewise on the text, same rule as bitstrings.
		return cmp.Compare(a.text, b.text)
	case KindTuple:
		if c := cmp.Compare(len(a.elems), len(b.elems)); c != 0 {
			return c
		}
		return compareElems(a.elems, b.elems)
	case KindList:
		if c := compareElems(a.elems, b.elems); c != 0 {
			return c
		}
		return cmp.Compare(len(a.elems), len(b.elems))
	case KindBitstring:
		return bytes.Compare(a.bytes, b.bytes)
	default:
		// The variant set is closed; construction never produces other tags.
		panic("term: compare on invalid kind")
	}
}

// Equal reports whether a and b are equal under the total order.
func Equal(a, b Term) bool {
	return Compare(a, b) == 0
}

// compareElems compares two element sequences pairwise up to the shorter
// length, returning the first non-equal result.
func compareElems(a, b []Term) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}
