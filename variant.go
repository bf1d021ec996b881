// Package variant is the facade over the variant value container: parsing
// JSON documents into values, serializing values back to JSON through the
// parse tree, and rendering values with the streaming formatters.
package variant

import (
	"bytes"
	"time"

	"github.com/tableauio/variant/options"
	"github.com/tableauio/variant/printer"
	"github.com/tableauio/variant/tree"
	"github.com/tableauio/variant/value"
	"github.com/tableauio/variant/xerrors"
)

// Parse parses a JSON document into a Value. The second result reports
// success; on failure the returned Value is invalid, never partial.
func Parse(text []byte, setters ...options.Option) (value.Value, bool) {
	opts := options.ParseOptions(setters...)
	return tree.Parse(text, &tree.Options{MaxDepth: opts.MaxDepth})
}

// Serialize renders v as a JSON document via the parse tree, compact or
// pretty (4-space indent).
func Serialize(v *value.Value, pretty bool, setters ...options.Option) (string, error) {
	opts := options.ParseOptions(setters...)
	return tree.Serialize(v, pretty, &tree.Options{MaxDepth: opts.MaxDepth})
}

// FormatJSON renders v with the streaming JSON formatter. This path differs
// from Serialize in that dates render as formatted time text rather than
// numbers.
func FormatJSON(v *value.Value, setters ...options.Option) (string, error) {
	opts := options.ParseOptions(setters...)
	loc, err := loadLocation(opts.LocationName)
	if err != nil {
		return "", err
	}
	f := &printer.JSON{Location: loc, MaxDepth: opts.MaxDepth}
	var buf bytes.Buffer
	if err := f.Format(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatText renders v with the indented human-readable formatter.
func FormatText(v *value.Value, setters ...options.Option) (string, error) {
	opts := options.ParseOptions(setters...)
	loc, err := loadLocation(opts.LocationName)
	if err != nil {
		return "", err
	}
	f := &printer.Text{Location: loc, MaxDepth: opts.MaxDepth}
	var buf bytes.Buffer
	if err := f.Format(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, xerrors.WrapKV(err, "locationName", name)
	}
	return loc, nil
}
