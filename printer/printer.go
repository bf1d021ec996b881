// Package printer renders variant values as text. A Formatter streams
// contiguous text chunks to an io.Writer sink strictly in emission order;
// chunk boundaries carry no meaning, only the concatenation does.
//
// Two formatters are provided: JSON emits a machine-readable JSON document
// and Text emits an indented human-readable form. Both recurse over the
// value tree and fail with value.ErrTooDeep when nesting exceeds their
// depth budget.
package printer

import (
	"io"
	"strconv"

	"github.com/tableauio/variant/value"
)

// Formatter renders a value to the sink w.
type Formatter interface {
	Format(w io.Writer, v *value.Value) error
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeBool(w io.Writer, b bool) error {
	if b {
		return writeString(w, "true")
	}
	return writeString(w, "false")
}

func writeInt(w io.Writer, i int64) error {
	var buf [20]byte
	_, err := w.Write(strconv.AppendInt(buf[:0], i, 10))
	return err
}

// writeDouble emits the shortest 'g' form that parses back exactly.
func writeDouble(w io.Writer, d float64) error {
	var buf [32]byte
	_, err := w.Write(strconv.AppendFloat(buf[:0], d, 'g', -1, 64))
	return err
}
