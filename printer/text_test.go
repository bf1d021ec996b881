package printer

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tableauio/variant/value"
)

func formatText(t *testing.T, f *Text, v *value.Value) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Format(&buf, v))
	return buf.String()
}

func TestTextScalars(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{name: "invalid", v: value.Value{}, want: "null"},
		{name: "undefined", v: value.NewUndefined(), want: "null"},
		{name: "bool", v: value.NewBool(true), want: "true"},
		{name: "int", v: value.NewInt(42), want: "42"},
		{name: "double", v: value.NewDouble(5.5), want: "5.5"},
		// strings render unquoted: this output is for people
		{name: "string", v: value.NewString(`say "hi"`), want: `say "hi"`},
		{name: "custom", v: value.NewCustom(&fakeCustom{text: "payload"}), want: "payload"},
	}
	f := &Text{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatText(t, f, &tt.v))
		})
	}
}

func TestTextList(t *testing.T) {
	f := &Text{}
	v := value.NewList(value.NewInt(1), value.NewString("x"))
	assert.Equal(t, "[ 1, x ]", formatText(t, f, &v))

	empty := value.NewList()
	assert.Equal(t, "[  ]", formatText(t, f, &empty))

	nested := value.NewList(value.NewList(value.NewInt(1)), value.NewInt(2))
	assert.Equal(t, "[ [ 1 ], 2 ]", formatText(t, f, &nested))
}

func TestTextMap(t *testing.T) {
	f := &Text{}
	m := value.NewMap()
	m.Put("a", value.NewInt(1))
	m.Put("b", value.NewList(value.NewInt(1), value.NewInt(2)))
	m.Put("c", value.NewString("s"))
	assert.Equal(t, "a: 1\nb: [ 1, 2 ]\nc: s\n", formatText(t, f, &m))
}

func TestTextNestedMap(t *testing.T) {
	// each level of map nesting indents one extra space;
	// list nesting does not indent
	f := &Text{}
	inner := value.NewMap()
	inner.Put("b", value.NewInt(1))
	innermost := value.NewMap()
	innermost.Put("d", value.NewBool(false))
	inner.Put("c", innermost)
	m := value.NewMap()
	m.Put("a", inner)
	m.Put("e", value.NewInt(2))
	want := "a:\n" +
		" b: 1\n" +
		" c:\n" +
		"  d: false\n" +
		"e: 2\n"
	assert.Equal(t, want, formatText(t, f, &m))
}

func TestTextDate(t *testing.T) {
	f := &Text{Location: time.UTC}
	v := value.NewDate(time.Unix(0, 0))
	assert.Equal(t, "1970-01-01 00:00:00", formatText(t, f, &v))
}

func TestTextDepthLimit(t *testing.T) {
	f := &Text{MaxDepth: 5}
	v := value.NewList()
	for i := 0; i < 10; i++ {
		v = value.NewList(v)
	}
	var buf bytes.Buffer
	err := f.Format(&buf, &v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, value.ErrTooDeep))
}
