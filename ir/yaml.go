package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// ParseYAML parses a YAML document, keeping mapping keys in
// document order.  Repeated keys are kept.
func ParseYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap(), yaml.AllowDuplicateMapKey()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromAny(v)
}

// EncodeYAML encodes y as a YAML document.
func EncodeYAML(y *Node) ([]byte, error) {
	return yaml.Marshal(ToAny(y))
}

// FromAny converts the generic output of a YAML or JSON decoder
// to a node.  Ordered mappings (yaml.MapSlice) keep their order;
// Go maps are converted with sorted keys.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		vs := make([]*Node, len(x))
		for i := range x {
			n, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case yaml.MapSlice:
		kvs := make([]KeyVal, len(x))
		for i := range x {
			val, err := FromAny(x[i].Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = KeyVal{Key: FromString(fmt.Sprint(x[i].Key)), Val: val}
		}
		return FromKeyVals(kvs), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		kvs := make([]KeyVal, len(keys))
		for i, k := range keys {
			val, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			kvs[i] = KeyVal{Key: FromString(k), Val: val}
		}
		return FromKeyVals(kvs), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

func fromUint(u uint64) *Node {
	if u > math.MaxInt64 {
		return FromNumber(strconv.FormatUint(u, 10))
	}
	return FromInt(int64(u))
}

// ToAny converts y to generic Go values, with objects as
// yaml.MapSlice so that field order survives encoding.  Floats are
// returned as a yaml.BytesMarshaler which always writes a form that
// decodes as a float.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case BoolType:
		return y.Bool
	case NumberType:
		switch {
		case y.Int64 != nil:
			return *y.Int64
		case y.Float64 != nil:
			return yamlFloat(*y.Float64)
		}
		if f, err := strconv.ParseFloat(y.Number, 64); err == nil {
			return yamlFloat(f)
		}
		return y.Number
	case StringType:
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i, f := range y.Fields {
			res[i] = yaml.MapItem{Key: f.String, Value: ToAny(y.Values[i])}
		}
		return res
	}
	return nil
}

type yamlFloat float64

// MarshalYAML writes f with a '.' in the mantissa: goccy decodes
// "1e+300" as a string but "1.0e+300" as a float.
func (f yamlFloat) MarshalYAML() ([]byte, error) {
	x := float64(f)
	switch {
	case math.IsNaN(x):
		return []byte(".nan"), nil
	case math.IsInf(x, 1):
		return []byte(".inf"), nil
	case math.IsInf(x, -1):
		return []byte("-.inf"), nil
	}
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if strings.Contains(s, ".") {
		return []byte(s), nil
	}
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		return []byte(s[:i] + ".0" + s[i:]), nil
	}
	return []byte(s + ".0"), nil
}
