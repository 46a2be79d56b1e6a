package sortedset

import "fmt"

// Kind identifies which of the accepted value domains an Item holds.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindAtom
	KindString
	KindTuple
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindAtom:
		return "atom"
	case KindString:
		return "string"
	case KindTuple:
		return "tuple"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Atom marks a string value as a symbol rather than text. AtomItem("x")
// and StringItem("x") are distinct, non-equal Items.
type Atom string

// Tuple marks a slice as fixed-arity rather than an ordered list. Pass
// a Tuple to FromValue to get a KindTuple Item; a plain []any becomes
// a KindList Item instead.
type Tuple []any

// Item is an opaque, totally ordered value accepted into a Set. The
// zero Item is the Nil item. Items are immutable once built and are
// safe to copy and compare.
type Item struct {
	kind  Kind
	i     int64
	s     string
	b     bool
	elems []Item
}

// NilItem returns the unit/nil Item.
func NilItem() Item { return Item{kind: KindNil} }

// BoolItem wraps a boolean value.
func BoolItem(v bool) Item { return Item{kind: KindBool, b: v} }

// IntItem wraps an integer value.
func IntItem(v int64) Item { return Item{kind: KindInt, i: v} }

// AtomItem wraps a symbol/atom value.
func AtomItem(v string) Item { return Item{kind: KindAtom, s: v} }

// StringItem wraps a text value.
func StringItem(v string) Item { return Item{kind: KindString, s: v} }

// TupleItem builds a fixed-arity Item from already-validated elements.
func TupleItem(elems ...Item) Item {
	return Item{kind: KindTuple, elems: append([]Item(nil), elems...)}
}

// ListItem builds an ordered-sequence Item from already-validated
// elements.
func ListItem(elems ...Item) Item {
	return Item{kind: KindList, elems: append([]Item(nil), elems...)}
}

// Kind reports which domain the Item was built from.
func (it Item) Kind() Kind { return it.kind }

// Int returns the wrapped integer and whether the Item is a KindInt.
func (it Item) Int() (int64, bool) {
	if it.kind != KindInt {
		return 0, false
	}
	return it.i, true
}

// Bool returns the wrapped boolean and whether the Item is a KindBool.
func (it Item) Bool() (bool, bool) {
	if it.kind != KindBool {
		return false, false
	}
	return it.b, true
}

// Str returns the wrapped text and whether the Item is a KindString or
// KindAtom (the atom's name is returned for atoms).
func (it Item) Str() (string, bool) {
	if it.kind != KindString && it.kind != KindAtom {
		return "", false
	}
	return it.s, true
}

// Elems returns the wrapped elements and whether the Item is a
// KindTuple or KindList.
func (it Item) Elems() ([]Item, bool) {
	if it.kind != KindTuple && it.kind != KindList {
		return nil, false
	}
	return append([]Item(nil), it.elems...), true
}

func (it Item) String() string {
	switch it.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return fmt.Sprintf("%t", it.b)
	case KindInt:
		return fmt.Sprintf("%d", it.i)
	case KindAtom:
		return ":" + it.s
	case KindString:
		return fmt.Sprintf("%q", it.s)
	case KindTuple:
		return fmt.Sprintf("tuple%v", it.elems)
	case KindList:
		return fmt.Sprintf("list%v", it.elems)
	default:
		return "<invalid item>"
	}
}

// FromValue converts an arbitrary Go value into an Item, applying the
// item value contract: integers, strings, Atom, bools, nil, Tuple, and
// []any (lists) of accepted kinds are accepted; floating-point numbers,
// pointers, channels, and functions are rejected, and a composite that
// contains a rejected kind anywhere is itself rejected.
func FromValue(v any) (Item, error) {
	switch x := v.(type) {
	case nil:
		return NilItem(), nil
	case Item:
		return x, nil
	case bool:
		return BoolItem(x), nil
	case int:
		return IntItem(int64(x)), nil
	case int8:
		return IntItem(int64(x)), nil
	case int16:
		return IntItem(int64(x)), nil
	case int32:
		return IntItem(int64(x)), nil
	case int64:
		return IntItem(x), nil
	case uint:
		return IntItem(int64(x)), nil
	case uint8:
		return IntItem(int64(x)), nil
	case uint16:
		return IntItem(int64(x)), nil
	case uint32:
		return IntItem(int64(x)), nil
	case uint64:
		return IntItem(int64(x)), nil
	case string:
		return StringItem(x), nil
	case Atom:
		return AtomItem(string(x)), nil
	case Tuple:
		elems, err := fromValues([]any(x))
		if err != nil {
			return Item{}, err
		}
		return TupleItem(elems...), nil
	case []any:
		elems, err := fromValues(x)
		if err != nil {
			return Item{}, err
		}
		return ListItem(elems...), nil
	default:
		return Item{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

func fromValues(vs []any) ([]Item, error) {
	out := make([]Item, len(vs))
	for i, v := range vs {
		it, err := FromValue(v)
		if err != nil {
			return nil, err
		}
		out[i] = it
	}
	return out, nil
}

// kindRank fixes the cross-kind total order: Nil < Bool < Int < Atom <
// String < Tuple < List.
func kindRank(k Kind) int {
	switch k {
	case KindNil:
		return 0
	case KindBool:
		return 1
	case KindInt:
		return 2
	case KindAtom:
		return 3
	case KindString:
		return 4
	case KindTuple:
		return 5
	case KindList:
		return 6
	default:
		return 7
	}
}

// compareItems returns -1, 0, or 1 as a is less than, equal to, or
// greater than b. Equality is consistent with order:
// compareItems(a,b)==0 iff a equals b.
func compareItems(a, b Item) int {
	if a.kind != b.kind {
		if kindRank(a.kind) < kindRank(b.kind) {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindNil:
		return 0
	case KindBool:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case KindInt:
		switch {
		case a.i < b.i:
			return -1
		case a.i > b.i:
			return 1
		default:
			return 0
		}
	case KindAtom, KindString:
		switch {
		case a.s < b.s:
			return -1
		case a.s > b.s:
			return 1
		default:
			return 0
		}
	case KindTuple, KindList:
		n := len(a.elems)
		if len(b.elems) < n {
			n = len(b.elems)
		}
		for i := 0; i < n; i++ {
			if c := compareItems(a.elems[i], b.elems[i]); c != 0 {
				return c
			}
		}
		switch {
		case len(a.elems) < len(b.elems):
			return -1
		case len(a.elems) > len(b.elems):
			return 1
		default:
			return 0
		}
	default:
		return 0
	}
}
