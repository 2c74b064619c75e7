// Package term implements the closed value model of the ordered set: a
// tagged variant with exactly five kinds and a strict total order over them.
//
// Kinds are ranked for cross-kind ordering: Integer < Atom < Tuple < List <
// Bitstring. Composite kinds (Tuple, List) contain terms recursively.
package term

import (
	"fmt"
	"strings"
)

// Kind discriminates the five supported term variants.
// The numeric value is the cross-kind ordering rank.
type Kind uint8

const (
	KindInteger Kind = iota
	KindAtom
	KindTuple
	KindList
	KindBitstring
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindAtom:
		return "atom"
	case KindTuple:
		return "tuple"
	case KindList:
		return "list"
	case KindBitstring:
		return "bitstring"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Term is one value of the ordered set. Exactly one payload field is
// meaningful, selected by Kind; the zero Term is the integer 0.
//
// Terms are treated as immutable once constructed. Callers must not mutate
// the Elems or Bytes slices of a term after handing it to the engine.
type Term struct {
	kind  Kind
	num   int64
	text  string
	elems []Term
	bytes []byte
}

// Integer returns an integer term.
func Integer(v int64) Term {
	return Term{kind: KindInteger, num: v}
}

// Atom returns an atom term with the given text.
func Atom(text string) Term {
	return Term{kind: KindAtom, text: text}
}

// Tuple returns a tuple term with the given elements in order.
func Tuple(elems ...Term) Term {
	return Term{kind: KindTuple, elems: elems}
}

// List returns a list term with the given elements in order.
func List(elems ...Term) Term {
	return Term{kind: KindList, elems: elems}
}

// Bitstring returns a bitstring term with the given raw bytes.
func Bitstring(b []byte) Term {
	return Term{kind: KindBitstring, bytes: b}
}

// Kind returns the variant tag of t.
func (t Term) Kind() Kind { return t.kind }

// Int returns the integer payload. Meaningful only for KindInteger.
func (t Term) Int() int64 { return t.num }

// Text returns the atom payload. Meaningful only for KindAtom.
func (t Term) Text() string { return t.text }

// Elems returns the element slice of a tuple or list term.
func (t Term) Elems() []Term { return t.elems }

// Bytes returns the bitstring payload. Meaningful only for KindBitstring.
func (t Term) Bytes() []byte { return t.bytes }

// String renders the term for diagnostics.
func (t Term) String() string {
	switch t.kind {
	case KindInteger:
		return fmt.Sprintf("%d", t.num)
	case KindAtom:
		return t.text
	case KindTuple:
		return "{" + joinElems(t.elems) + "}"
	case KindList:
		return "[" + joinElems(t.elems) + "]"
	case KindBitstring:
		return fmt.Sprintf("<<%x>>", t.bytes)
	default:
		return fmt.Sprintf("term(%d)", uint8(t.kind))
	}
}

func joinElems(elems []Term) string {
	var sb strings.Builder
	for i, e := range elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}
