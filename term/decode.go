package term

import (
	"fmt"
	"math"
)

// TupleValue marks a Go slice as a fixed-arity tuple during decoding.
// A plain []any decodes as a list; wrap it in TupleValue to decode as a
// tuple instead.
type TupleValue []any

// ErrUnsupportedType indicates a foreign value that does not map to one of
// the five supported kinds. The whole value is rejected, even when only a
// nested element is unsupported.
type ErrUnsupportedType struct {
	GoType string
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported type: %s", e.GoType)
}

// FromAny decodes a foreign Go value into a term.
//
// Supported shapes: Go signed integers and unsigned integers within int64
// range (Integer), string (Atom), []byte (Bitstring), TupleValue (Tuple),
// []any (List), and Term itself, which passes through unchanged. Decoding
// recurses into TupleValue and []any elements; any unsupported element
// anywhere in the structure rejects the entire value with
// *ErrUnsupportedType.
func FromAny(v any) (Term, error) {
	switch x := v.(type) {
	case Term:
		return x, nil
	case int:
		return Integer(int64(x)), nil
	case int8:
		return Integer(int64(x)), nil
	case int16:
		return Integer(int64(x)), nil
	case int32:
		return Integer(int64(x)), nil
	case int64:
		return Integer(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return Term{}, &ErrUnsupportedType{GoType: fmt.Sprintf("uint overflowing int64 (%d)", x)}
		}
		return Integer(int64(x)), nil
	case uint8:
		return Integer(int64(x)), nil
	case uint16:
		return Integer(int64(x)), nil
	case uint32:
		return Integer(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return Term{}, &ErrUnsupportedType{GoType: fmt.Sprintf("uint64 overflowing int64 (%d)", x)}
		}
		return Integer(int64(x)), nil
	case string:
		return Atom(x), nil
	case []byte:
		return Bitstring(x), nil
	case TupleValue:
		elems, err := fromAnySlice(x)
		if err != nil {
			return Term{}, err
		}
		return Tuple(elems...), nil
	case []any:
		elems, err := fromAnySlice(x)
		if err != nil {
			return Term{}, err
		}
		return List(elems...), nil
	default:
		return Term{}, &ErrUnsupportedType{GoType: fmt.Sprintf("%T", v)}
	}
}

func fromAnySlice(vs []any) ([]Term, error) {
	if len(vs) == 0 {
		return nil, nil
	}
	elems := make([]Term, 0, len(vs))
	for _, v := range vs {
		t, err := FromAny(v)
		if err != nil {
			return nil, err
		}
		elems = append(elems, t)
	}
	return elems, nil
}

// FromAnySlice decodes each element of vs independently, for bulk paths
// where the payload is a sequence of foreign values rather than one list.
func FromAnySlice(vs []any) ([]Term, error) {
	return fromAnySlice(vs)
}

// ToAny encodes a term back into the foreign representation accepted by
// FromAny: int64, string, []byte, TupleValue or []any.
func ToAny(t Term) any {
	switch t.Kind() {
	case KindInteger:
		return t.Int()
	case KindAtom:
		return t.Text()
	case KindTuple:
		return TupleValue(toAnySlice(t.Elems()))
	case KindList:
		return toAnySlice(t.Elems())
	case KindBitstring:
		return t.Bytes()
	default:
		panic("term: encode on invalid kind")
	}
}

// ToAnySlice encodes each term of ts via ToAny.
func ToAnySlice(ts []Term) []any {
	return toAnySlice(ts)
}

func toAnySlice(ts []Term) []any {
	vs := make([]any, len(ts))
	for i, t := range ts {
		vs[i] = ToAny(t)
	}
	return vs
}
