package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

// ParseJSON parses a JSON document, keeping object fields in
// document order.
func ParseJSON(d []byte) (*Node, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromFastJSON(v), nil
}

// FromFastJSON converts a parsed fastjson value to a node.  The
// result does not reference v.
func FromFastJSON(v *fastjson.Value) *Node {
	switch v.Type() {
	case fastjson.TypeObject:
		o, _ := v.Object()
		kvs := make([]KeyVal, 0, o.Len())
		o.Visit(func(key []byte, vv *fastjson.Value) {
			kvs = append(kvs, KeyVal{Key: FromString(string(key)), Val: FromFastJSON(vv)})
		})
		return FromKeyVals(kvs)
	case fastjson.TypeArray:
		a, _ := v.Array()
		vs := make([]*Node, len(a))
		for i, av := range a {
			vs[i] = FromFastJSON(av)
		}
		return FromSlice(vs)
	case fastjson.TypeString:
		sb, _ := v.StringBytes()
		return FromString(string(sb))
	case fastjson.TypeNumber:
		if i, err := v.Int64(); err == nil {
			return FromInt(i)
		}
		if f, err := v.Float64(); err == nil {
			return FromFloat(f)
		}
		return FromNumber(v.String())
	case fastjson.TypeTrue:
		return FromBool(true)
	case fastjson.TypeFalse:
		return FromBool(false)
	}
	return Null()
}

// EncodeJSON encodes y as compact JSON.  Repeated object keys are
// written in order, each with its own value.
func EncodeJSON(y *Node) []byte {
	var a fastjson.Arena
	return appendJSON(nil, &a, y)
}

// appendJSON writes containers itself since fastjson.Object.Set
// replaces a key that is already present.
func appendJSON(dst []byte, a *fastjson.Arena, y *Node) []byte {
	if y == nil {
		return append(dst, "null"...)
	}
	switch y.Type {
	case ArrayType:
		dst = append(dst, '[')
		for i, v := range y.Values {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendJSON(dst, a, v)
		}
		return append(dst, ']')
	case ObjectType:
		dst = append(dst, '{')
		for i, f := range y.Fields {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = a.NewString(f.String).MarshalTo(dst)
			dst = append(dst, ':')
			dst = appendJSON(dst, a, y.Values[i])
		}
		return append(dst, '}')
	}
	return ToFastJSON(a, y).MarshalTo(dst)
}

// EncodeJSONIndent encodes y as JSON indented by indent.
func EncodeJSONIndent(y *Node, indent string) []byte {
	d := EncodeJSON(y)
	buf := bytes.NewBuffer(make([]byte, 0, len(d)*2))
	if err := json.Indent(buf, d, "", indent); err != nil {
		return d
	}
	return buf.Bytes()
}

// ToFastJSON converts y to a fastjson value allocated in a.  A
// fastjson object holds each key once, so for repeated keys the last
// value wins; EncodeJSON keeps them all.
func ToFastJSON(a *fastjson.Arena, y *Node) *fastjson.Value {
	if y == nil {
		return a.NewNull()
	}
	switch y.Type {
	case BoolType:
		if y.Bool {
			return a.NewTrue()
		}
		return a.NewFalse()
	case NumberType:
		switch {
		case y.Int64 != nil:
			return a.NewNumberString(strconv.FormatInt(*y.Int64, 10))
		case y.Float64 != nil:
			return a.NewNumberString(formatFloat(*y.Float64))
		default:
			return a.NewNumberString(y.Number)
		}
	case StringType:
		return a.NewString(y.String)
	case ArrayType:
		arr := a.NewArray()
		for i, v := range y.Values {
			arr.SetArrayItem(i, ToFastJSON(a, v))
		}
		return arr
	case ObjectType:
		obj := a.NewObject()
		for i, f := range y.Fields {
			obj.Set(f.String, ToFastJSON(a, y.Values[i]))
		}
		return obj
	}
	return a.NewNull()
}

// formatFloat formats f so that it parses back as a float.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func (y *Node) MarshalJSON() ([]byte, error) {
	return EncodeJSON(y), nil
}

func (y *Node) UnmarshalJSON(d []byte) error {
	n, err := ParseJSON(d)
	if err != nil {
		return err
	}
	*y = *n
	return nil
}
