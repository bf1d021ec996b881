package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	mapAB := func(a, b int64) Value {
		m := NewMap()
		m.Put("a", NewInt(a))
		m.Put("b", NewInt(b))
		return m
	}
	mapBA := func(a, b int64) Value {
		m := NewMap()
		m.Put("b", NewInt(b))
		m.Put("a", NewInt(a))
		return m
	}
	tests := []struct {
		name string
		a    Value
		b    Value
		want bool
	}{
		{name: "invalid", a: Value{}, b: Value{}, want: true},
		{name: "invalid-vs-undefined", a: Value{}, b: NewUndefined(), want: false},
		{name: "int", a: NewInt(5), b: NewInt(5), want: true},
		{name: "int-vs-double", a: NewInt(5), b: NewDouble(5), want: false},
		{name: "nan", a: NewDouble(math.NaN()), b: NewDouble(math.NaN()), want: true},
		{name: "string", a: NewString("x"), b: NewString("x"), want: true},
		{name: "list", a: NewList(NewInt(1)), b: NewList(NewInt(1)), want: true},
		{name: "list-order", a: NewList(NewInt(1), NewInt(2)), b: NewList(NewInt(2), NewInt(1)), want: false},
		{name: "map-order-insensitive", a: mapAB(1, 2), b: mapBA(1, 2), want: true},
		{name: "map-value-differs", a: mapAB(1, 2), b: mapAB(1, 3), want: false},
		{
			name: "custom-by-text",
			a:    NewCustom(&fakeCustom{text: "same"}),
			b:    NewCustom(&fakeCustom{text: "same"}),
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(&tt.a, &tt.b))
			assert.Equal(t, tt.want, Equal(&tt.b, &tt.a))
		})
	}
}
