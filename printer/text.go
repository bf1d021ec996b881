package printer

import (
	"io"
	"strings"
	"time"

	"github.com/tableauio/variant/internal/x/xtime"
	"github.com/tableauio/variant/value"
	"github.com/tableauio/variant/xerrors"
)

// Text is the indented human-readable formatter. Output is meant for
// people, not for round-tripping: strings render unquoted and unescaped.
//
// Scalars, strings, and lists render inline; lists as "[ a, b, c ]". A map
// renders one "key: value" line per entry, indented by one space per level
// of map nesting (list nesting does not indent). A map-valued entry starts
// its nested lines on the following line.
type Text struct {
	// Location renders dates in this location. Nil means time.Local.
	Location *time.Location
	// MaxDepth is the nesting depth budget.
	//
	// Default: value.DefaultMaxDepth.
	MaxDepth int
}

func (f *Text) maxDepth() int {
	if f.MaxDepth <= 0 {
		return value.DefaultMaxDepth
	}
	return f.MaxDepth
}

// Format renders v on w.
func (f *Text) Format(w io.Writer, v *value.Value) error {
	return f.format(w, v, 0, 0)
}

// format tracks two depths: depth counts every recursion for the budget,
// while indent counts only enclosing maps.
func (f *Text) format(w io.Writer, v *value.Value, depth, indent int) error {
	if depth > f.maxDepth() {
		return xerrors.WrapKV(value.ErrTooDeep, "depth", depth)
	}
	switch v.Kind() {
	case value.KindBool:
		return writeBool(w, v.Bool())
	case value.KindInt:
		return writeInt(w, v.Int())
	case value.KindDouble:
		return writeDouble(w, v.Double())
	case value.KindString:
		return writeString(w, v.Str())
	case value.KindCustom:
		if c := v.Custom(); c != nil {
			return writeString(w, c.ToString())
		}
		return writeString(w, "null")
	case value.KindDate:
		return writeString(w, xtime.Format(v.Date(), f.Location))
	case value.KindList:
		if err := writeString(w, "[ "); err != nil {
			return err
		}
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				if err := writeString(w, ", "); err != nil {
					return err
				}
			}
			elem := v.Index(i)
			if err := f.format(w, &elem, depth+1, indent); err != nil {
				return err
			}
		}
		return writeString(w, " ]")
	case value.KindMap:
		prefix := strings.Repeat(" ", indent)
		var rangeErr error
		v.Range(func(key string, elem value.Value) bool {
			if rangeErr = writeString(w, prefix+key+":"); rangeErr != nil {
				return false
			}
			if elem.Kind() == value.KindMap {
				if rangeErr = writeString(w, "\n"); rangeErr != nil {
					return false
				}
				rangeErr = f.format(w, &elem, depth+1, indent+1)
				return rangeErr == nil
			}
			if rangeErr = writeString(w, " "); rangeErr != nil {
				return false
			}
			if rangeErr = f.format(w, &elem, depth+1, indent); rangeErr != nil {
				return false
			}
			rangeErr = writeString(w, "\n")
			return rangeErr == nil
		})
		return rangeErr
	default: // invalid and undefined
		return writeString(w, "null")
	}
}
