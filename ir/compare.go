package ir

import (
	"cmp"
	"strings"
)

// typeOrder orders values of different types.
var typeOrder = [...]int{
	NullType:   0,
	BoolType:   1,
	NumberType: 2,
	StringType: 3,
	ArrayType:  4,
	ObjectType: 5,
}

// Compare orders nodes, returning -1, 0 or +1.  A nil node is null.
//
// Nodes of different types order by type: null, bool, number, string,
// array, object.  Integers order before floats, which order before
// numbers held only as literals, so 1 and 1.0 are different values.
// Arrays order element-wise.  Objects order field by field, key
// before value, so field order is significant.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	ta, tb := typeOf(a), typeOf(b)
	if ta != tb {
		return cmp.Compare(typeOrder[ta], typeOrder[tb])
	}
	switch ta {
	case BoolType:
		return cmpBool(a.Bool, b.Bool)
	case NumberType:
		if c := cmp.Compare(numKind(a), numKind(b)); c != 0 {
			return c
		}
		switch {
		case a.Int64 != nil:
			return cmp.Compare(*a.Int64, *b.Int64)
		case a.Float64 != nil:
			return cmp.Compare(*a.Float64, *b.Float64)
		}
		return strings.Compare(a.Number, b.Number)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareSeq(a.Values, b.Values, nil, nil)
	case ObjectType:
		return compareSeq(a.Values, b.Values, a.Fields, b.Fields)
	}
	return 0
}

// Equal reports whether a and b hold the same value.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func typeOf(n *Node) Type {
	if n == nil {
		return NullType
	}
	return n.Type
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	}
	return 1
}

func numKind(n *Node) int {
	switch {
	case n.Int64 != nil:
		return 0
	case n.Float64 != nil:
		return 1
	}
	return 2
}

// compareSeq compares vs pairwise, each preceded by its key when keys
// are given, then by length.
func compareSeq(avs, bvs, aks, bks []*Node) int {
	for i := range min(len(avs), len(bvs)) {
		if aks != nil {
			if c := Compare(aks[i], bks[i]); c != 0 {
				return c
			}
		}
		if c := Compare(avs[i], bvs[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(avs), len(bvs))
}
