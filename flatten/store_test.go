package flatten

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/flat/ir"
)

func TestIntern(t *testing.T) {
	s := New()
	var got []int
	for _, v := range []string{"a", "b", "a", "c", "b"} {
		got = append(got, s.Intern("u", ir.FromString(v)))
	}
	if diff := cmp.Diff([]int{0, 1, 0, 2, 1}, got); diff != "" {
		t.Errorf("Intern mismatch (-want +got):\n%s", diff)
	}
	if s.Len("u") != 3 {
		t.Errorf("bucket length %d", s.Len("u"))
	}
}

func TestInternByType(t *testing.T) {
	s := New()
	vals := []*ir.Node{
		ir.FromInt(1),
		ir.FromFloat(1),
		ir.FromString("1"),
		ir.FromBool(true),
		ir.Null(),
		nil,
		ir.FromInt(1),
	}
	var got []int
	for _, v := range vals {
		got = append(got, s.Intern("u", v))
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4, 4, 0}, got); diff != "" {
		t.Errorf("Intern mismatch (-want +got):\n%s", diff)
	}
}

func TestInternContainersByIdentity(t *testing.T) {
	s := New()
	obj := ir.Object("a", ir.FromString("x"))
	same := ir.Object("a", ir.FromString("x"))
	i := s.Intern("o", obj)
	j := s.Intern("o", same)
	k := s.Intern("o", obj)
	if i != 0 || j != 1 || k != 0 {
		t.Errorf("got %d %d %d", i, j, k)
	}
}

func TestPushNeverDedups(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		if got := s.Push("s", ir.FromString("x")); got != i {
			t.Errorf("Push %d returned %d", i, got)
		}
	}
	if got := s.Intern("s", ir.FromString("x")); got != 0 {
		t.Errorf("Intern after Push returned %d", got)
	}
}

func TestFetch(t *testing.T) {
	s := New()
	s.Intern("u", ir.FromString("a"))
	v, err := s.Fetch("u", 0)
	if err != nil {
		t.Fatal(err)
	}
	if v.String != "a" {
		t.Errorf("got %s", ir.EncodeJSON(v))
	}
	for _, i := range []int{-1, 1} {
		if _, err := s.Fetch("u", i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Fetch(%d): expected ErrOutOfRange, got %v", i, err)
		}
	}
	if _, err := s.Fetch("missing", 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestBucketCreatesEmpty(t *testing.T) {
	s := New()
	if b := s.Bucket("empty"); len(b) != 0 {
		t.Errorf("new bucket has %d values", len(b))
	}
	s.Intern("u", ir.FromString("a"))
	want := `{"empty":[],"u":["a"]}`
	if got := string(ir.EncodeJSON(s.Index())); got != want {
		t.Errorf("Index() = %s, want %s", got, want)
	}
	if diff := cmp.Diff([]string{"empty", "u"}, s.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestIndexOrder(t *testing.T) {
	s := New()
	s.Intern("z", ir.FromInt(1))
	s.Push("a", ir.Object())
	s.Intern("m", ir.FromBool(false))
	want := `{"z":[1],"a":[{}],"m":[false]}`
	if got := string(ir.EncodeJSON(s.Index())); got != want {
		t.Errorf("Index() = %s, want %s", got, want)
	}
}

func TestFromIndex(t *testing.T) {
	index := ir.Object(
		"Something", ir.Strings("abc", "def"),
		"Pair", ir.FromSlice([]*ir.Node{ir.Object("foo", ir.FromInt(0), "bar", ir.FromInt(1))}),
	)
	s, err := FromIndex(index)
	if err != nil {
		t.Fatal(err)
	}
	v, err := s.Fetch("Something", 1)
	if err != nil {
		t.Fatal(err)
	}
	if v != index.Values[0].Values[1] {
		t.Error("bucket values were copied")
	}
	if got := string(ir.EncodeJSON(s.Index())); got != string(ir.EncodeJSON(index)) {
		t.Errorf("Index() = %s", got)
	}
	// interning into a rehydrated bucket finds existing values
	if i := s.Intern("Something", ir.FromString("def")); i != 1 {
		t.Errorf("Intern = %d", i)
	}
}

func TestFromIndexErrors(t *testing.T) {
	tests := []*ir.Node{
		ir.Strings("a"),
		ir.Object("b", ir.FromString("x")),
		ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("b"), Val: ir.Strings()},
			{Key: ir.FromString("b"), Val: ir.Strings()},
		}),
	}
	for i, index := range tests {
		if _, err := FromIndex(index); !errors.Is(err, ErrBadIndex) {
			t.Errorf("%d: expected ErrBadIndex, got %v", i, err)
		}
	}
	s, err := FromIndex(nil)
	if err != nil || len(s.Names()) != 0 {
		t.Errorf("nil index: %v %v", s, err)
	}
}
