package ir

import (
	"cmp"
	"math"
	"testing"
)

func TestCompareOrder(t *testing.T) {
	// ascending, each strictly less than the next
	order := []*Node{
		Null(),
		FromBool(false),
		FromBool(true),
		FromInt(1),
		FromInt(2),
		FromFloat(1),
		FromFloat(2),
		FromNumber("1"),
		FromNumber("2"),
		FromString("a"),
		FromString("b"),
		FromSlice(nil),
		Ints(1),
		Ints(1, 2),
		Ints(2),
		FromKeyVals(nil),
		Object("a", FromInt(1)),
		Object("a", FromInt(1), "b", FromInt(2)),
		Object("a", FromInt(2)),
		Object("b", FromInt(1)),
		Object("b", FromInt(2), "a", FromInt(1)),
	}
	for i, a := range order {
		for j, b := range order {
			want := cmp.Compare(i, j)
			if got := Compare(a, b); got != want {
				t.Errorf("Compare(%s, %s) = %d, want %d", EncodeJSON(a), EncodeJSON(b), got, want)
			}
		}
	}
	if !Equal(nil, Null()) {
		t.Error("nil should equal null")
	}
}

func TestHashEqual(t *testing.T) {
	pairs := [][2]*Node{
		{FromString("abc"), FromString("abc")},
		{FromInt(7), FromInt(7)},
		{FromFloat(0), FromFloat(math.Copysign(0, -1))},
		{nil, Null()},
		{Strings("a", "b"), Strings("a", "b")},
		{Object("a", Ints(1, 2)), Object("a", Ints(1, 2))},
	}
	for i, p := range pairs {
		if !Equal(p[0], p[1]) {
			t.Errorf("%d: expected equal", i)
			continue
		}
		if p[0].Hash() != p[1].Hash() {
			t.Errorf("%d: equal nodes hash differently", i)
		}
	}
}

func TestHashDistinguishes(t *testing.T) {
	nodes := []*Node{
		Null(),
		FromBool(false),
		FromBool(true),
		FromInt(1),
		FromFloat(1),
		FromNumber("1"),
		FromString("1"),
		Strings("1"),
		Object("1", Null()),
	}
	seen := map[uint64]int{}
	for i, n := range nodes {
		h := n.Hash()
		if j, ok := seen[h]; ok {
			t.Errorf("nodes %d and %d have the same hash", j, i)
		}
		seen[h] = i
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		node *Node
		want int
		ok   bool
	}{
		{FromInt(3), 3, true},
		{FromFloat(4), 4, true},
		{FromFloat(4.5), 0, false},
		{FromString("3"), 0, false},
		{nil, 0, false},
		{FromNumber("12345678901234567890123"), 0, false},
		{FromFloat(1e300), 0, false},
	}
	for i, tt := range tests {
		got, ok := tt.node.Int()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%d: got (%d, %t) want (%d, %t)", i, got, ok, tt.want, tt.ok)
		}
	}
}
