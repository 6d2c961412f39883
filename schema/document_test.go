package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/flat/ir"
)

func parseDoc(t *testing.T, src string) (*Document, error) {
	t.Helper()
	node, err := ir.ParseYAML([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return ParseDocument(node)
}

const exampleDoc = `
signature:
  name: example
define:
  schema:
    struct: Schema
    fields:
      pair: pair
      arrays: {group: {pairs: pairs, many: many}}
  something: {unit: Something}
  many: {list: something}
  pair:
    struct: Pair
    fields: {foo: something, bar: something}
  pairs: {list: pair}
  other: {alias: something}
  raw: {listOf: Raw}
  nested:
    struct: Nested
    fields:
      outer: {nest: {inner: something}}
accept: schema
`

func TestParseDocument(t *testing.T) {
	doc, err := parseDoc(t, exampleDoc)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Signature == nil || doc.Signature.Name != "example" {
		t.Errorf("signature: %+v", doc.Signature)
	}
	wantNames := []string{"schema", "something", "many", "pair", "pairs", "other", "raw", "nested"}
	if diff := cmp.Diff(wantNames, doc.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if doc.Accept != doc.Lookup("schema") {
		t.Error("accept is not the schema definition")
	}

	something := doc.Lookup("something")
	if doc.Lookup("many").Tag.Node != something {
		t.Error("references do not share nodes")
	}
	if doc.Lookup("other").Bucket() != "Something" {
		t.Errorf("alias bucket %q", doc.Lookup("other").Bucket())
	}
	if !Equal(doc.Lookup("raw"), ListOf(Named("Raw"))) {
		t.Errorf("raw = %s", doc.Lookup("raw"))
	}

	tests := []struct {
		name string
		want []string
	}{
		{"schema", []string{"pair: Struct(Pair)", "pairs: List(Struct(Pair))", "many: List(Unit(Something))"}},
		{"pair", []string{"foo: Unit(Something)", "bar: Unit(Something)"}},
		{"nested", []string{"outer.inner: Unit(Something)"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, fieldStrings(doc.Lookup(tt.name))); diff != "" {
			t.Errorf("%s fields mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestParseDocumentInlineAccept(t *testing.T) {
	doc, err := parseDoc(t, `
define:
  u: {unit: U}
accept: {list: {struct: S, fields: {a: u, b: {unit: B}}}}
`)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Accept.Type != ListType || doc.Accept.Bucket() != "S" {
		t.Fatalf("accept = %s", doc.Accept)
	}
	if diff := cmp.Diff([]string{"a: Unit(U)", "b: Unit(B)"}, fieldStrings(doc.Accept.Tag.Node)); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDocumentFieldPaths(t *testing.T) {
	doc, err := parseDoc(t, `
define:
  u: {unit: U}
accept:
  struct: S
  fields:
    a.b: u
    "'a.c'": u
    x.y: {nest: {z: u}}
    g: {group: {m.n: {list: u}}}
`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"a.b: Unit(U)",
		"'a.c': Unit(U)",
		"x.y.z: Unit(U)",
		"m.n: List(Unit(U))",
	}
	if diff := cmp.Diff(want, fieldStrings(doc.Accept)); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"not object", `[1]`, ErrSchema},
		{"unknown ref", "define:\n  a: {list: b}\n", ErrUnknownRef},
		{"cycle", "define:\n  a: {list: b}\n  b: {alias: a}\n", ErrCycle},
		{"self cycle", "define:\n  a: {struct: A, fields: {kids: {list: a}}}\n", ErrCycle},
		{"two kinds", "define:\n  a: {unit: A, list: b}\n", ErrSchema},
		{"unknown key", "define:\n  a: {unit: A, extra: 1}\n", ErrSchema},
		{"fields on unit", "define:\n  a: {unit: A, fields: {}}\n", ErrSchema},
		{"bucket not string", "define:\n  a: {unit: [A]}\n", ErrSchema},
		{"bad expr", "define:\n  a: 3\n", ErrSchema},
		{"empty expr", "define:\n  a: {}\n", ErrSchema},
		{"fields not object", "define:\n  a: {struct: A, fields: [x]}\n", ErrSchema},
		{"bad accept", "accept: nope\n", ErrUnknownRef},
		{"bad signature", "signature: {name: 3}\n", ErrSchema},
		{"bad field path", "define:\n  a: {struct: A, fields: {a..b: {unit: U}}}\n", ErrSchema},
		{"unquoted space", "define:\n  a: {struct: A, fields: {a b: {unit: U}}}\n", ErrSchema},
		{"repeated define", "define:\n  a: {unit: A}\n  a: {unit: B}\n", ErrDuplicate},
		{"repeated field", "define:\n  a: {struct: A, fields: {x: {unit: U}, x: {unit: U}}}\n", ErrDuplicate},
		{"repeated path", "define:\n  a: {struct: A, fields: {a.b: {unit: U}, a: {nest: {b: {unit: V}}}}}\n", ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDoc(t, tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}
