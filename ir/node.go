package ir

import (
	"math"
	"slices"
)

// Node is a value in an object notation document.
//
// Nodes carry no parent links: a subtree may be shared by several
// trees, which is how normalized documents refer to the data they
// were produced from.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

// shallow returns a copy of y whose Fields and Values slices
// may be modified without affecting y.
func (y *Node) shallow() *Node {
	res := *y
	res.Fields = slices.Clone(y.Fields)
	res.Values = slices.Clone(y.Values)
	return &res
}

func FromString(v string) *Node { return &Node{Type: StringType, String: v} }
func FromInt(v int64) *Node     { return &Node{Type: NumberType, Int64: &v} }
func FromFloat(f float64) *Node { return &Node{Type: NumberType, Float64: &f} }
func FromBool(v bool) *Node     { return &Node{Type: BoolType, Bool: v} }
func Null() *Node               { return &Node{Type: NullType} }

// FromNumber creates a number node holding a literal which
// fits neither an int64 nor a float64.
func FromNumber(lit string) *Node {
	return &Node{Type: NumberType, Number: lit}
}

// IsNull reports whether y is nil or a null node.
func (y *Node) IsNull() bool {
	return y == nil || y.Type == NullType
}

// Int returns y as an int if y is an integral number.
func (y *Node) Int() (int, bool) {
	if y == nil || y.Type != NumberType {
		return 0, false
	}
	switch {
	case y.Int64 != nil:
		return int(*y.Int64), true
	case y.Float64 != nil:
		f := *y.Float64
		if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals creates an object node with fields in the order
// of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = FromString("")
		}
		if kv.Val == nil {
			kv.Val = Null()
		}
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// Object is a convenience wrapper around FromKeyVals taking
// alternating string keys and values.
func Object(kvs ...any) *Node {
	res := make([]KeyVal, 0, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		res = append(res, KeyVal{Key: FromString(kvs[i].(string)), Val: kvs[i+1].(*Node)})
	}
	return FromKeyVals(res)
}

// FromSlice creates an array node holding vs, with nil elements
// replaced by null.  The result never shares vs.
func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType, Values: make([]*Node, len(vs))}
	for i, v := range vs {
		if v == nil {
			v = Null()
		}
		res.Values[i] = v
	}
	return res
}

// Strings creates an array of strings.
func Strings(vs ...string) *Node {
	res := make([]*Node, len(vs))
	for i, v := range vs {
		res[i] = FromString(v)
	}
	return FromSlice(res)
}

// Ints creates an array of integers.
func Ints(vs ...int) *Node {
	res := make([]*Node, len(vs))
	for i, v := range vs {
		res[i] = FromInt(int64(v))
	}
	return FromSlice(res)
}

// Get returns the value of field in the object y, or nil if y is not
// an object or has no such field.
func Get(y *Node, field string) *Node {
	if i := fieldIndex(y, field); i >= 0 {
		return y.Values[i]
	}
	return nil
}

func fieldIndex(y *Node, field string) int {
	if y == nil || y.Type != ObjectType {
		return -1
	}
	return slices.IndexFunc(y.Fields, func(f *Node) bool {
		return f.String == field
	})
}
