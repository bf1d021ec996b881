package printer

import (
	"io"
	"time"

	"github.com/tableauio/variant/internal/x/xtime"
	"github.com/tableauio/variant/value"
	"github.com/tableauio/variant/xerrors"
)

// JSON is the streaming JSON formatter. It renders a value directly as
// JSON text without building an intermediate parse tree.
//
// Two outputs differ from the tree-mediated Serialize path: a date renders
// as formatted time text instead of its numeric unix value, and a nil
// custom payload renders as an empty string instead of null. Custom
// payloads are escaped exactly like strings on both paths.
type JSON struct {
	// Location renders dates in this location. Nil means time.Local.
	Location *time.Location
	// MaxDepth is the nesting depth budget.
	//
	// Default: value.DefaultMaxDepth.
	MaxDepth int
}

func (f *JSON) maxDepth() int {
	if f.MaxDepth <= 0 {
		return value.DefaultMaxDepth
	}
	return f.MaxDepth
}

// Format renders v as a compact JSON document on w.
func (f *JSON) Format(w io.Writer, v *value.Value) error {
	return f.format(w, v, 0)
}

func (f *JSON) format(w io.Writer, v *value.Value, depth int) error {
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
		return writeEscaped(w, v.Str())
	case value.KindCustom:
		var s string
		if c := v.Custom(); c != nil {
			s = c.ToString()
		}
		return writeEscaped(w, s)
	case value.KindDate:
		return writeEscaped(w, xtime.Format(v.Date(), f.Location))
	case value.KindList:
		if err := writeString(w, "["); err != nil {
			return err
		}
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				if err := writeString(w, ","); err != nil {
					return err
				}
			}
			elem := v.Index(i)
			if err := f.format(w, &elem, depth+1); err != nil {
				return err
			}
		}
		return writeString(w, "]")
	case value.KindMap:
		if err := writeString(w, "{"); err != nil {
			return err
		}
		first := true
		var rangeErr error
		v.Range(func(key string, elem value.Value) bool {
			if !first {
				if rangeErr = writeString(w, ","); rangeErr != nil {
					return false
				}
			}
			first = false
			if rangeErr = writeEscaped(w, key); rangeErr != nil {
				return false
			}
			if rangeErr = writeString(w, ":"); rangeErr != nil {
				return false
			}
			rangeErr = f.format(w, &elem, depth+1)
			return rangeErr == nil
		})
		if rangeErr != nil {
			return rangeErr
		}
		return writeString(w, "}")
	default: // invalid and undefined
		return writeString(w, "null")
	}
}

const hexdigits = "0123456789abcdef"

// escapeOf returns the escape sequence for c, or "" if c passes through
// unchanged. Escaping is per byte: multi-byte UTF-8 sequences pass through
// byte by byte.
func escapeOf(c byte) string {
	switch c {
	case '\b':
		return `\b`
	case '\f':
		return `\f`
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case '"':
		return `\"`
	case '\\':
		return `\\`
	default:
		if c < 0x20 || c == 0x7f {
			return `\u00` + string([]byte{hexdigits[c>>4], hexdigits[c&0xf]})
		}
		return ""
	}
}

// writeEscaped emits s as a quoted JSON string. The unescaped run before
// each escape is flushed as one chunk, so a string with nothing to escape
// is written verbatim between its quotes with no intermediate copy.
func writeEscaped(w io.Writer, s string) error {
	if err := writeString(w, `"`); err != nil {
		return err
	}
	start := 0
	for i := 0; i < len(s); i++ {
		esc := escapeOf(s[i])
		if esc == "" {
			continue
		}
		if i > start {
			if err := writeString(w, s[start:i]); err != nil {
				return err
			}
		}
		if err := writeString(w, esc); err != nil {
			return err
		}
		start = i + 1
	}
	if start < len(s) {
		if err := writeString(w, s[start:]); err != nil {
			return err
		}
	}
	return writeString(w, `"`)
}
