package schema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/flat/ir"
	"github.com/signadot/flat/ir/kpath"
)

// Document is a schema document: a set of named schema nodes and the
// node accepted at the document root.
//
//	signature:
//	  name: example
//	define:
//	  something: {unit: Something}
//	  pair:
//	    struct: Pair
//	    fields: {foo: something, bar: something, meta.tag: something}
//	  pairs: {list: pair}
//	accept:
//	  struct: Root
//	  fields:
//	    pair: pair
//	    arrays: {group: {pairs: pairs}}
//
// A schema expression is either a string, referring to a definition,
// or an object with exactly one of the keys
//
//	unit: <bucket>       Unit(bucket)
//	alias: <expr>        Alias(expr)
//	list: <expr>         List(expr)
//	listOf: <bucket>     ListOf(Named(bucket))
//	struct: <bucket>     Struct(bucket, fields...)
//
// The fields of a struct map keys to expressions, or to {group: fields}
// (see Group) or {nest: fields} (see Nest).  Field and nest keys are
// field paths in kpath syntax: "a.b" nests b under a, and "'a.b'" is
// the single key "a.b".  Two fields of a struct may not share a path.
type Document struct {
	Signature *Signature
	Define    *Registry
	Accept    *Node

	names []string
}

// Signature defines how the document can be referenced
type Signature struct {
	Name string
}

// Lookup returns the definition name, or nil.
func (d *Document) Lookup(name string) *Node {
	return d.Define.Lookup(name)
}

// Names returns the definition names in document order.
func (d *Document) Names() []string {
	return slices.Clone(d.names)
}

// ParseDocument parses a schema document from an IR node.
func ParseDocument(node *ir.Node) (*Document, error) {
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: document must be an object", ErrSchema)
	}
	doc := &Document{Define: NewRegistry()}

	if sigNode := ir.Get(node, "signature"); sigNode != nil {
		sig, err := parseSignature(sigNode)
		if err != nil {
			return nil, fmt.Errorf("failed to parse signature: %w", err)
		}
		doc.Signature = sig
	}

	r := &resolver{raw: map[string]*ir.Node{}, reg: doc.Define}
	if defineNode := ir.Get(node, "define"); defineNode != nil {
		if defineNode.Type != ir.ObjectType {
			return nil, fmt.Errorf("%w: define must be an object", ErrSchema)
		}
		for i := range defineNode.Fields {
			name := defineNode.Fields[i].String
			if _, exists := r.raw[name]; exists {
				return nil, fmt.Errorf("%w: %q defined twice", ErrDuplicate, name)
			}
			r.raw[name] = defineNode.Values[i]
			doc.names = append(doc.names, name)
		}
	}
	for _, name := range doc.names {
		if _, err := r.ref(name); err != nil {
			return nil, err
		}
	}

	if acceptNode := ir.Get(node, "accept"); acceptNode != nil {
		n, err := r.expr(acceptNode)
		if err != nil {
			return nil, fmt.Errorf("accept: %w", err)
		}
		doc.Accept = n
	}
	return doc, nil
}

func parseSignature(node *ir.Node) (*Signature, error) {
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: signature must be an object", ErrSchema)
	}
	sig := &Signature{}
	if nameNode := ir.Get(node, "name"); nameNode != nil {
		if nameNode.Type != ir.StringType {
			return nil, fmt.Errorf("%w: signature.name must be a string", ErrSchema)
		}
		sig.Name = nameNode.String
	}
	return sig, nil
}

type resolver struct {
	raw      map[string]*ir.Node
	reg      *Registry
	visiting []string
}

func (r *resolver) ref(name string) (*Node, error) {
	if n := r.reg.Lookup(name); n != nil {
		return n, nil
	}
	raw, ok := r.raw[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRef, name)
	}
	if slices.Contains(r.visiting, name) {
		return nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(append(r.visiting, name), " -> "))
	}
	r.visiting = append(r.visiting, name)
	n, err := r.expr(raw)
	r.visiting = r.visiting[:len(r.visiting)-1]
	if err != nil {
		return nil, fmt.Errorf("define %q: %w", name, err)
	}
	if err := r.reg.Register(name, n); err != nil {
		return nil, err
	}
	return n, nil
}

var exprKeys = []string{"unit", "alias", "list", "listOf", "struct"}

func (r *resolver) expr(node *ir.Node) (*Node, error) {
	switch node.Type {
	case ir.StringType:
		return r.ref(node.String)
	case ir.ObjectType:
	default:
		return nil, fmt.Errorf("%w: expected reference or object, got %s", ErrSchema, node.Type)
	}

	kind := ""
	var arg, fields *ir.Node
	for i, f := range node.Fields {
		key := f.String
		switch {
		case key == "fields":
			fields = node.Values[i]
		case slices.Contains(exprKeys, key):
			if kind != "" {
				return nil, fmt.Errorf("%w: both %q and %q given", ErrSchema, kind, key)
			}
			kind = key
			arg = node.Values[i]
		default:
			return nil, fmt.Errorf("%w: unknown key %q", ErrSchema, key)
		}
	}
	if fields != nil && kind != "struct" {
		return nil, fmt.Errorf("%w: fields given for %q", ErrSchema, kind)
	}

	switch kind {
	case "unit", "listOf", "struct":
		if arg.Type != ir.StringType {
			return nil, fmt.Errorf("%w: %s bucket must be a string, got %s", ErrSchema, kind, arg.Type)
		}
	}
	switch kind {
	case "unit":
		return Unit(arg.String), nil
	case "listOf":
		return ListOf(Named(arg.String)), nil
	case "alias", "list":
		n, err := r.expr(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		if kind == "alias" {
			return Alias(n), nil
		}
		return List(n), nil
	case "struct":
		if fields == nil {
			return Struct(arg.String), nil
		}
		decls, err := r.decls(fields)
		if err != nil {
			return nil, fmt.Errorf("struct %q: %w", arg.String, err)
		}
		n := Struct(arg.String, decls...)
		if err := checkPaths(n.Fields()); err != nil {
			return nil, fmt.Errorf("struct %q: %w", arg.String, err)
		}
		return n, nil
	}
	return nil, fmt.Errorf("%w: expected one of %s", ErrSchema, strings.Join(exprKeys, ", "))
}

func (r *resolver) decls(node *ir.Node) ([]Decl, error) {
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: fields must be an object, got %s", ErrSchema, node.Type)
	}
	res := make([]Decl, 0, len(node.Fields))
	for i, f := range node.Fields {
		key := f.String
		v := node.Values[i]
		g := groupKind(v)
		if g == "group" {
			ds, err := r.decls(v.Values[0])
			if err != nil {
				return nil, fmt.Errorf("group %q: %w", key, err)
			}
			res = append(res, Group(key, ds...))
			continue
		}
		keys, err := pathKeys(key)
		if err != nil {
			return nil, err
		}
		last := len(keys) - 1
		var d Decl
		if g == "nest" {
			ds, err := r.decls(v.Values[0])
			if err != nil {
				return nil, fmt.Errorf("nest %q: %w", key, err)
			}
			d = Nest(keys[last], ds...)
		} else {
			n, err := r.expr(v)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", key, err)
			}
			d = Field(keys[last], n)
		}
		for j := last - 1; j >= 0; j-- {
			d = Nest(keys[j], d)
		}
		res = append(res, d)
	}
	return res, nil
}

// pathKeys splits a field key into the keys of its path.  The empty
// key is kept as is.
func pathKeys(key string) ([]string, error) {
	if key == "" {
		return []string{""}, nil
	}
	kp, err := kpath.Parse(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	return kp.Segments(), nil
}

func checkPaths(fields []FieldPath) error {
	paths := make([]*kpath.KPath, len(fields))
	for i := range fields {
		paths[i] = fields[i].Path
	}
	slices.SortFunc(paths, (*kpath.KPath).Compare)
	for i := 1; i < len(paths); i++ {
		if paths[i].Equal(paths[i-1]) {
			return fmt.Errorf("%w: field %q declared twice", ErrDuplicate, paths[i])
		}
	}
	return nil
}

func groupKind(v *ir.Node) string {
	if v.Type != ir.ObjectType || len(v.Fields) != 1 {
		return ""
	}
	switch k := v.Fields[0].String; k {
	case "group", "nest":
		return k
	}
	return ""
}
