package value

import "math"

// Equal reports whether a and b hold the same kind and structurally equal
// payloads. Lists compare elementwise in order; maps compare entry sets
// regardless of insertion order; custom payloads compare by their textual
// representation, the only capability they expose. NaN doubles compare
// equal to each other so that Equal stays reflexive.
func Equal(a, b *Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInvalid, KindUndefined:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt, KindDate:
		return a.i == b.i
	case KindDouble:
		if math.IsNaN(a.d) || math.IsNaN(b.d) {
			return math.IsNaN(a.d) && math.IsNaN(b.d)
		}
		return a.d == b.d
	case KindString:
		return a.s == b.s
	case KindList:
		if len(a.l) != len(b.l) {
			return false
		}
		for i := range a.l {
			if !Equal(&a.l[i], &b.l[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if a.m.Size() != b.m.Size() {
			return false
		}
		equal := true
		a.Range(func(key string, elem Value) bool {
			other, ok := b.Get(key)
			if !ok || !Equal(&elem, &other) {
				equal = false
			}
			return equal
		})
		return equal
	case KindCustom:
		if a.c == nil || b.c == nil {
			return a.c == b.c
		}
		return a.c.ToString() == b.c.ToString()
	default:
		return false
	}
}
