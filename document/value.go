package document

import (
	"math"
	"slices"
	"sort"
)

// Kind identifies the variant held by a [Value].
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is any JSON-shaped value that can live in a document.
//
// The set of implementations is closed: [*Object], [Array], [String],
// [Number], [Bool] and [Null]. A type switch over those six cases is
// exhaustive.
type Value interface {
	Kind() Kind
	isValue()
}

// String is a JSON string.
type String string

// Number is a JSON number. Integers are exact up to 2^53.
type Number float64

// Bool is a JSON boolean.
type Bool bool

// Null is the JSON null literal.
type Null struct{}

// Array is an ordered JSON array.
type Array []Value

func (String) Kind() Kind  { return KindString }
func (Number) Kind() Kind  { return KindNumber }
func (Bool) Kind() Kind    { return KindBool }
func (Null) Kind() Kind    { return KindNull }
func (Array) Kind() Kind   { return KindArray }
func (*Object) Kind() Kind { return KindObject }

func (String) isValue()  {}
func (Number) isValue()  {}
func (Bool) isValue()    {}
func (Null) isValue()    {}
func (Array) isValue()   {}
func (*Object) isValue() {}

// maxExactInt is the largest integer a float64 represents exactly.
const maxExactInt = 1 << 53

// IsInteger reports whether n has no fractional part and is exactly
// representable, i.e. |n| <= 2^53.
func (n Number) IsInteger() bool {
	f := float64(n)
	return !math.IsNaN(f) && f == math.Trunc(f) && math.Abs(f) <= maxExactInt
}

// isNil reports whether v is absent: a nil interface or a nil *Object.
func isNil(v Value) bool {
	if v == nil {
		return true
	}
	o, ok := v.(*Object)
	return ok && o == nil
}

// Clone returns a deep copy of v.
func Clone(v Value) Value {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return Null{}
		}
		out := &Object{
			keys:   slices.Clone(t.keys),
			values: make(map[string]Value, len(t.values)),
		}
		for k, child := range t.values {
			out.values[k] = Clone(child)
		}
		return out
	case Array:
		if t == nil {
			return Array{}
		}
		out := make(Array, len(t))
		for i, child := range t {
			out[i] = Clone(child)
		}
		return out
	case nil:
		return nil
	default:
		return t
	}
}

// Equal reports whether a and b hold the same JSON value.
// Object key order is ignored; array order is not.
func Equal(a, b Value) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) == isNil(b)
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Object:
		y := b.(*Object)
		if x.Len() != y.Len() {
			return false
		}
		for k, xv := range x.values {
			yv, ok := y.values[k]
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	case Array:
		y := b.(Array)
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// sortedKeys returns the keys of m in lexical order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
