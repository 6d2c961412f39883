package kpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a.b.c", []string{"a", "b", "c"}},
		{"'a.b'.c", []string{"a.b", "c"}},
		{"'it\\'s'", []string{"it's"}},
		{"''", []string{""}},
		{"a.'b c'", []string{"a", "b c"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kp, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, kp.Segments()); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{".a", "a.", "a..b", "'open", "a b", "'a'b"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) = %v, want ErrSyntax", input, err)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	paths := []*KPath{
		nil,
		Field("a"),
		Field("a", "b"),
		Field("a.b", "c"),
		Field("x y", "it's", ""),
		Field(`back\slash`),
	}
	for _, p := range paths {
		s := p.String()
		q, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q): %v", s, err)
			continue
		}
		if !p.Equal(q) {
			t.Errorf("round trip %q: got %q", s, q.String())
		}
	}
}

func TestString(t *testing.T) {
	if got := Field("a", "b").String(); got != "a.b" {
		t.Errorf("got %q", got)
	}
	if got := Field("a.b").String(); got != "'a.b'" {
		t.Errorf("got %q", got)
	}
}

func TestAppendDoesNotShare(t *testing.T) {
	base := Field("a")
	x := base.Append("x")
	y := base.Append("y")
	if x.String() != "a.x" || y.String() != "a.y" {
		t.Fatalf("got %q %q", x, y)
	}
	if base.String() != "a" {
		t.Errorf("base modified: %q", base)
	}
	var root *KPath
	if got := root.Append("r").String(); got != "r" {
		t.Errorf("got %q", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b *KPath
		want int
	}{
		{nil, nil, 0},
		{nil, Field("a"), -1},
		{Field("a"), Field("a", "b"), -1},
		{Field("a", "c"), Field("a", "b"), 1},
		{Field("a", "b"), Field("a", "b"), 0},
	}
	for i, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%d: Compare(%q, %q) = %d, want %d", i, tt.a, tt.b, got, tt.want)
		}
	}
}
