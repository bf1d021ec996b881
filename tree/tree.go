// Package tree converts between variant values and the generic JSON parse
// tree produced and consumed by valyala/fastjson. Nodes are never retained
// past a conversion call: Parse discards the parsed tree once converted,
// and Serialize discards the built tree once rendered.
package tree

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/tableauio/variant/value"
	"github.com/tableauio/variant/xerrors"
	"github.com/valyala/fastjson"
)

// Options control a conversion. A nil *Options means defaults.
type Options struct {
	// MaxDepth is the maximum nesting depth accepted before a conversion
	// fails with value.ErrTooDeep instead of recursing without bound.
	//
	// Default: value.DefaultMaxDepth.
	MaxDepth int
}

func (o *Options) maxDepth() int {
	if o == nil || o.MaxDepth <= 0 {
		return value.DefaultMaxDepth
	}
	return o.MaxDepth
}

// Parse parses a JSON document into a Value. The second result reports
// success: on malformed input or overlong nesting it is false and the
// returned Value is invalid, never a partial conversion.
func Parse(text []byte, opts *Options) (value.Value, bool) {
	v, err := Decode(text, opts)
	if err != nil {
		return value.Value{}, false
	}
	return v, true
}

// Decode is Parse with the failure cause preserved.
func Decode(text []byte, opts *Options) (value.Value, error) {
	root, err := fastjson.ParseBytes(text)
	if err != nil {
		return value.Value{}, xerrors.WrapKV(err, xerrors.KeyReason, "malformed JSON")
	}
	return FromNode(root, opts)
}

// Serialize renders v as a JSON document, building a parse tree via ToNode
// and printing it compact, or re-indented with 4 spaces when pretty is set.
func Serialize(v *value.Value, pretty bool, opts *Options) (string, error) {
	var arena fastjson.Arena
	node, err := ToNode(&arena, v, opts)
	if err != nil {
		return "", err
	}
	out := node.MarshalTo(nil)
	if pretty {
		// fastjson only prints compact; indent the stable compact bytes
		// for the pretty form.
		var buf bytes.Buffer
		if err := json.Indent(&buf, out, "", "    "); err != nil {
			return "", xerrors.Wrap(err)
		}
		return buf.String(), nil
	}
	return string(out), nil
}

// FromNode converts a parsed JSON node into a Value:
//
//   - null     -> invalid (the null-vs-absent distinction is lost)
//   - false    -> bool, true -> bool
//   - number   -> int when the value equals its integer truncation,
//     double otherwise
//   - string   -> string
//   - array    -> list, order preserved
//   - object   -> map, insertion-ordered; on duplicate keys the last
//     occurrence wins
func FromNode(node *fastjson.Value, opts *Options) (value.Value, error) {
	return fromNode(node, 0, opts.maxDepth())
}

func fromNode(node *fastjson.Value, depth, maxDepth int) (value.Value, error) {
	if depth > maxDepth {
		return value.Value{}, xerrors.WrapKV(value.ErrTooDeep, "depth", depth)
	}
	switch node.Type() {
	case fastjson.TypeNull:
		return value.Value{}, nil
	case fastjson.TypeTrue:
		return value.NewBool(true), nil
	case fastjson.TypeFalse:
		return value.NewBool(false), nil
	case fastjson.TypeNumber:
		if i, err := node.Int64(); err == nil {
			return value.NewInt(i), nil
		}
		f, err := node.Float64()
		if err != nil {
			return value.Value{}, xerrors.Wrap(err)
		}
		// 5.0 stores as int 5: a fractionless double in int64 range is
		// an integer.
		if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return value.NewInt(int64(f)), nil
		}
		return value.NewDouble(f), nil
	case fastjson.TypeString:
		sb, err := node.StringBytes()
		if err != nil {
			return value.Value{}, xerrors.Wrap(err)
		}
		return value.NewString(string(sb)), nil
	case fastjson.TypeArray:
		arr, err := node.Array()
		if err != nil {
			return value.Value{}, xerrors.Wrap(err)
		}
		list := value.NewList()
		for i, child := range arr {
			elem, err := fromNode(child, depth+1, maxDepth)
			if err != nil {
				return value.Value{}, xerrors.WrapKV(err, "index", i)
			}
			list.Append(elem)
		}
		return list, nil
	case fastjson.TypeObject:
		obj, err := node.Object()
		if err != nil {
			return value.Value{}, xerrors.Wrap(err)
		}
		m := value.NewMap()
		var visitErr error
		obj.Visit(func(key []byte, child *fastjson.Value) {
			if visitErr != nil {
				return
			}
			elem, err := fromNode(child, depth+1, maxDepth)
			if err != nil {
				visitErr = xerrors.WrapKV(err, "key", string(key))
				return
			}
			m.Put(string(key), elem)
		})
		if visitErr != nil {
			return value.Value{}, visitErr
		}
		return m, nil
	default:
		return value.Value{}, xerrors.Errorf("unhandled node type: %v", node.Type())
	}
}

// ToNode builds a JSON node for v in the given arena:
//
//   - invalid, undefined -> null
//   - bool               -> true/false
//   - int, date          -> number (a date serializes as its unix time and
//     parses back as an int, not a date)
//   - double             -> number
//   - string, custom     -> string, both escaped normally
//   - list               -> array, order preserved
//   - map                -> object, insertion order
func ToNode(arena *fastjson.Arena, v *value.Value, opts *Options) (*fastjson.Value, error) {
	return toNode(arena, v, 0, opts.maxDepth())
}

func toNode(arena *fastjson.Arena, v *value.Value, depth, maxDepth int) (*fastjson.Value, error) {
	if depth > maxDepth {
		return nil, xerrors.WrapKV(value.ErrTooDeep, "depth", depth)
	}
	switch v.Kind() {
	case value.KindBool:
		if v.Bool() {
			return arena.NewTrue(), nil
		}
		return arena.NewFalse(), nil
	case value.KindInt, value.KindDate:
		return arena.NewNumberInt(int(v.Int())), nil
	case value.KindDouble:
		return arena.NewNumberFloat64(v.Double()), nil
	case value.KindString:
		return arena.NewString(v.Str()), nil
	case value.KindCustom:
		if c := v.Custom(); c != nil {
			return arena.NewString(c.ToString()), nil
		}
		return arena.NewNull(), nil
	case value.KindList:
		out := arena.NewArray()
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			child, err := toNode(arena, &elem, depth+1, maxDepth)
			if err != nil {
				return nil, xerrors.WrapKV(err, "index", i)
			}
			out.SetArrayItem(i, child)
		}
		return out, nil
	case value.KindMap:
		out := arena.NewObject()
		var rangeErr error
		v.Range(func(key string, elem value.Value) bool {
			child, err := toNode(arena, &elem, depth+1, maxDepth)
			if err != nil {
				rangeErr = xerrors.WrapKV(err, "key", key)
				return false
			}
			out.Set(key, child)
			return true
		})
		if rangeErr != nil {
			return nil, rangeErr
		}
		return out, nil
	default: // invalid and undefined both map to null
		return arena.NewNull(), nil
	}
}
