package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustom struct {
	text string
}

func (c *fakeCustom) ToString() string { return c.text }

// prototypes returns one value of every kind.
func prototypes() map[string]Value {
	list := NewList(NewInt(1), NewString("x"))
	m := NewMap()
	m.Put("a", NewInt(1))
	m.Put("b", NewList(NewBool(true)))
	return map[string]Value{
		"invalid":   {},
		"undefined": NewUndefined(),
		"bool":      NewBool(true),
		"int":       NewInt(42),
		"double":    NewDouble(5.5),
		"string":    NewString("hello"),
		"date":      NewDate(time.Unix(1700000000, 0)),
		"list":      list,
		"map":       m,
		"custom":    NewCustom(&fakeCustom{text: "payload"}),
	}
}

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{name: "invalid", want: KindInvalid},
		{name: "undefined", want: KindUndefined},
		{name: "bool", want: KindBool},
		{name: "int", want: KindInt},
		{name: "double", want: KindDouble},
		{name: "string", want: KindString},
		{name: "date", want: KindDate},
		{name: "list", want: KindList},
		{name: "map", want: KindMap},
		{name: "custom", want: KindCustom},
	}
	protos := prototypes()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := protos[tt.name]
			assert.Equal(t, tt.want, v.Kind())
			assert.Equal(t, tt.want != KindInvalid, v.IsValid())
		})
	}
}

func TestClear(t *testing.T) {
	for name, proto := range prototypes() {
		t.Run(name, func(t *testing.T) {
			v := proto.Clone()
			v.Clear()
			assert.Equal(t, KindInvalid, v.Kind())
			// clearing twice is a no-op
			v.Clear()
			assert.Equal(t, KindInvalid, v.Kind())
		})
	}
}

func TestCopyPrecondition(t *testing.T) {
	src := NewInt(1)
	dst := NewString("occupied")
	assert.Panics(t, func() { dst.Copy(&src) })
	dst.Clear()
	assert.NotPanics(t, func() { dst.Copy(&src) })
	assert.Equal(t, int64(1), dst.Int())
}

// Cycle a single destination through every kind pair via Clear and Copy.
// No payload of a prior kind may leak into or corrupt the next one.
func TestKindTransitions(t *testing.T) {
	protos := prototypes()
	var dst Value
	for from, fromProto := range protos {
		for to, toProto := range protos {
			dst.Clear()
			dst.Copy(&fromProto)
			require.True(t, Equal(&dst, &fromProto), "copy of %s not equal", from)
			dst.Clear()
			dst.Copy(&toProto)
			require.True(t, Equal(&dst, &toProto), "%s -> %s transition corrupted payload", from, to)
		}
	}
}

func TestCopyIsDeep(t *testing.T) {
	orig := NewMap()
	orig.Put("list", NewList(NewInt(1)))
	inner := NewMap()
	inner.Put("s", NewString("x"))
	orig.Put("map", inner)

	dup := orig.Clone()
	// mutate the copy's nested containers
	elem, ok := dup.Get("list")
	require.True(t, ok)
	elem.Append(NewInt(2))
	dup.Put("list", elem)
	elem, ok = dup.Get("map")
	require.True(t, ok)
	elem.Put("s", NewString("changed"))

	// the original is untouched
	elem, ok = orig.Get("list")
	require.True(t, ok)
	assert.Equal(t, 1, elem.Len())
	elem, ok = orig.Get("map")
	require.True(t, ok)
	child, ok := elem.Get("s")
	require.True(t, ok)
	assert.Equal(t, "x", child.Str())
}

func TestCustomIsShared(t *testing.T) {
	payload := &fakeCustom{text: "before"}
	orig := NewCustom(payload)
	dup := orig.Clone()
	payload.text = "after"
	// both holders observe the mutation: the payload is shared, not copied
	assert.Equal(t, "after", orig.Custom().ToString())
	assert.Equal(t, "after", dup.Custom().ToString())
}

func TestLenientConversions(t *testing.T) {
	v := NewString("not a number")
	assert.False(t, v.Bool())
	assert.Equal(t, int64(0), v.Int())
	assert.Equal(t, float64(0), v.Double())
	assert.True(t, v.Date().IsZero())
	assert.Nil(t, v.Custom())
	assert.Equal(t, 0, v.Len())

	i := NewInt(7)
	assert.Equal(t, float64(7), i.Double())
	d := NewDouble(7.9)
	assert.Equal(t, int64(7), d.Int())
	assert.Equal(t, "", d.Str())

	date := NewDate(time.Unix(1700000000, 0))
	assert.Equal(t, int64(1700000000), date.Int())
	assert.Equal(t, time.Unix(1700000000, 0), date.Date().Local())
}

func TestContainerAccess(t *testing.T) {
	list := NewList(NewInt(1), NewString("x"))
	assert.Equal(t, 2, list.Len())
	elem0 := list.Index(0)
	assert.Equal(t, int64(1), elem0.Int())
	elem1 := list.Index(1)
	assert.Equal(t, "x", elem1.Str())

	m := NewMap()
	m.Put("a", NewInt(1))
	m.Put("b", NewInt(2))
	m.Put("a", NewInt(3)) // replaces in place, keeps position
	assert.Equal(t, 2, m.Len())
	var keys []string
	m.Range(func(key string, elem Value) bool {
		keys = append(keys, key)
		return true
	})
	assert.Equal(t, []string{"a", "b"}, keys)
	elem, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(3), elem.Int())
	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestContainerKindPanics(t *testing.T) {
	v := NewInt(1)
	assert.Panics(t, func() { v.Append(NewInt(2)) })
	assert.Panics(t, func() { v.Put("k", NewInt(2)) })
	assert.Panics(t, func() { v.Get("k") })
	assert.Panics(t, func() { v.Index(0) })
	assert.Panics(t, func() { v.Range(func(string, Value) bool { return true }) })
}
