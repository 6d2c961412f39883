package ir

import (
	"testing"

	"github.com/signadot/flat/ir/kpath"
)

func TestGetKPath(t *testing.T) {
	doc := Object(
		"a", Object("b", FromString("ab")),
		"s", FromString("x"),
	)
	tests := []struct {
		path string
		want *Node
		ok   bool
	}{
		{"", doc, true},
		{"a.b", FromString("ab"), true},
		{"s", FromString("x"), true},
		{"a.c", nil, false},
		{"s.x", nil, false},
	}
	for _, tt := range tests {
		kp, err := kpath.Parse(tt.path)
		if err != nil {
			t.Fatal(err)
		}
		got, ok := doc.GetKPath(kp)
		if ok != tt.ok {
			t.Errorf("%q: ok = %t", tt.path, ok)
			continue
		}
		if ok && !Equal(tt.want, got) {
			t.Errorf("%q: got %s", tt.path, EncodeJSON(got))
		}
	}
}

func TestUpdateKPath(t *testing.T) {
	inner := Object("b", FromString("ab"), "c", FromString("ac"))
	other := Strings("o")
	doc := Object("a", inner, "other", other)

	got, ok := doc.UpdateKPath(kpath.Field("a", "b"), func(n *Node) *Node {
		return FromString(n.String + "!")
	})
	if !ok {
		t.Fatal("path not found")
	}
	want := `{"a":{"b":"ab!","c":"ac"},"other":["o"]}`
	if s := string(EncodeJSON(got)); s != want {
		t.Errorf("got %s want %s", s, want)
	}
	if s := string(EncodeJSON(doc)); s != `{"a":{"b":"ab","c":"ac"},"other":["o"]}` {
		t.Errorf("input modified: %s", s)
	}
	if got.Values[1] != other {
		t.Error("untouched field not shared")
	}

	res, ok := doc.UpdateKPath(kpath.Field("a", "missing"), func(n *Node) *Node {
		t.Error("called on missing path")
		return n
	})
	if ok || res != doc {
		t.Error("expected unchanged node for missing path")
	}
}
