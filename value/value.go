// Package value implements a dynamically-typed variant container. A Value
// holds exactly one payload at a time, discriminated by Kind: nothing
// (invalid/undefined), a scalar (bool, int, double, date), a string, an
// ordered list of child values, an insertion-ordered map of string keys to
// child values, or an opaque application-defined Custom payload.
//
// Child values are owned exclusively by their parent, so a value graph is
// always an acyclic tree. A Value is not safe for concurrent mutation.
package value

import (
	"errors"
	"time"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// DefaultMaxDepth is the default nesting depth budget enforced by the tree
// bridge and the formatters when no explicit limit is given.
const DefaultMaxDepth = 256

// ErrTooDeep is returned when converting or formatting a value whose nesting
// exceeds the configured depth budget.
var ErrTooDeep = errors.New("value too deeply nested")

// Custom is an opaque application-defined payload embeddable in a Value.
// It exposes exactly one capability: a textual representation. The payload
// is shared, not copied, when the enclosing Value is copied, so ToString
// must be safe to call from every holder.
type Custom interface {
	ToString() string
}

// Value is a tagged union. The zero Value is invalid. Which payload field is
// meaningful is decided by the kind alone.
type Value struct {
	kind Kind

	b bool
	i int64 // int payload, or unix seconds for KindDate
	d float64
	s string
	l []Value
	m *linkedhashmap.Map // string -> Value, insertion-ordered
	c Custom
}

// NewUndefined returns an undefined Value.
func NewUndefined() Value { return Value{kind: KindUndefined} }

// NewBool returns a bool Value.
func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewInt returns an int Value.
func NewInt(i int64) Value { return Value{kind: KindInt, i: i} }

// NewDouble returns a double Value.
func NewDouble(d float64) Value { return Value{kind: KindDouble, d: d} }

// NewString returns a string Value.
func NewString(s string) Value { return Value{kind: KindString, s: s} }

// NewDate returns a date Value holding t truncated to second precision.
func NewDate(t time.Time) Value { return Value{kind: KindDate, i: t.Unix()} }

// NewList returns a list Value holding the given elements.
func NewList(elems ...Value) Value {
	return Value{kind: KindList, l: append([]Value(nil), elems...)}
}

// NewMap returns an empty map Value. Entries iterate in insertion order.
func NewMap() Value {
	return Value{kind: KindMap, m: linkedhashmap.New()}
}

// NewCustom returns a custom Value sharing the given payload.
func NewCustom(c Custom) Value { return Value{kind: KindCustom, c: c} }

// Kind returns the active variant.
func (v *Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds any variant other than KindInvalid.
func (v *Value) IsValid() bool { return v.kind != KindInvalid }

// Clear destroys the current payload, whatever the kind, and resets v to
// invalid. Clearing an already invalid Value is a no-op.
func (v *Value) Clear() {
	// Zeroing drops all payload references; the runtime reclaims
	// string/list/map buffers and releases the shared Custom handle.
	*v = Value{}
}

// Copy initializes v from other. String, list and map payloads are deep
// copied down to leaf scalars; a Custom payload is shared, not copied;
// trivial payloads are copied inline.
//
// The receiver must be invalid, either zero or freshly cleared. Copying
// onto an already initialized Value is a programming error and panics.
func (v *Value) Copy(other *Value) {
	if v.kind != KindInvalid {
		panic("value: Copy destination must be invalid, call Clear first")
	}
	*v = *other
	switch other.kind {
	case KindList:
		v.l = make([]Value, len(other.l))
		for i := range other.l {
			v.l[i].Copy(&other.l[i])
		}
	case KindMap:
		v.m = linkedhashmap.New()
		it := other.m.Iterator()
		for it.Next() {
			elem := it.Value().(Value)
			v.m.Put(it.Key(), elem.Clone())
		}
	}
}

// Clone returns a deep copy of v. Custom payloads are shared by the clone.
func (v *Value) Clone() Value {
	var dst Value
	dst.Copy(v)
	return dst
}

// Conversions are lenient: a mismatched kind yields the zero value of the
// requested type instead of failing, matching the coercive feel of a
// dynamic scripting value. Int and double coerce into each other, and a
// date coerces to its underlying unix time.

// Bool returns the bool payload, or false for any other kind.
func (v *Value) Bool() bool { return v.b }

// Int returns the int payload. A double truncates, a date yields its unix
// seconds, and any other kind yields 0.
func (v *Value) Int() int64 {
	if v.kind == KindDouble {
		return int64(v.d)
	}
	return v.i
}

// Double returns the double payload. An int converts, and any other kind
// yields 0.
func (v *Value) Double() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.d
}

// Str returns the string payload, or "" for any other kind.
func (v *Value) Str() string { return v.s }

// Date returns the date payload. An int is interpreted as unix seconds, and
// any other kind yields the zero time.
func (v *Value) Date() time.Time {
	if v.kind != KindDate && v.kind != KindInt {
		return time.Time{}
	}
	return time.Unix(v.i, 0)
}

// Custom returns the shared custom payload, or nil for any other kind.
func (v *Value) Custom() Custom { return v.c }

// Len returns the number of elements of a list or entries of a map, and 0
// for any other kind.
func (v *Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.l)
	case KindMap:
		return v.m.Size()
	}
	return 0
}

// Append appends elements to a list Value. It panics for any other kind.
func (v *Value) Append(elems ...Value) {
	if v.kind != KindList {
		panic("value: Append on a non-list value")
	}
	v.l = append(v.l, elems...)
}

// Index returns the i-th element of a list Value. It panics for any other
// kind or if i is out of range.
//
// The returned Value shares child containers with v; Clone it for an
// independent copy.
func (v *Value) Index(i int) Value {
	if v.kind != KindList {
		panic("value: Index on a non-list value")
	}
	return v.l[i]
}

// Put sets key to elem in a map Value, replacing any existing entry in
// place. It panics for any other kind.
func (v *Value) Put(key string, elem Value) {
	if v.kind != KindMap {
		panic("value: Put on a non-map value")
	}
	v.m.Put(key, elem)
}

// Get returns the entry for key of a map Value. The second result reports
// whether the key is present. It panics for any other kind.
//
// The returned Value shares child containers with v; Clone it for an
// independent copy.
func (v *Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		panic("value: Get on a non-map value")
	}
	elem, ok := v.m.Get(key)
	if !ok {
		return Value{}, false
	}
	return elem.(Value), true
}

// Range calls fn for each entry of a map Value in insertion order, stopping
// early if fn returns false. It panics for any other kind.
func (v *Value) Range(fn func(key string, elem Value) bool) {
	if v.kind != KindMap {
		panic("value: Range on a non-map value")
	}
	it := v.m.Iterator()
	for it.Next() {
		if !fn(it.Key().(string), it.Value().(Value)) {
			return
		}
	}
}
