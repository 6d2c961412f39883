package schema

import (
	"github.com/signadot/flat/ir/kpath"
)

// Decl is one entry of a struct's field declarations.  A Decl
// either declares a field (Node is set) or groups other declarations.
//
// Declarations are created with Field, Group and Nest.
type Decl struct {
	Key   string
	Node  *Node
	Decls []Decl
	// Nest is set when Key is part of the path of the grouped
	// declarations.
	Nest bool
}

// Field declares the field key described by n.
func Field(key string, n *Node) Decl {
	return Decl{Key: key, Node: n}
}

// Group groups declarations under key for organization only: key does
// not appear in the field paths of decls.
//
//	Struct("Schema",
//	    Field("pair", pair),
//	    Group("arrays", Field("pairs", pairs), Field("many", many)))
//
// declares the paths "pair", "pairs" and "many".
func Group(key string, decls ...Decl) Decl {
	return Decl{Key: key, Decls: decls}
}

// Nest declares fields of the object found at key: key is prepended
// to the paths of decls.
//
//	Struct("Schema", Nest("arrays", Field("pairs", pairs)))
//
// declares the path "arrays.pairs".
func Nest(key string, decls ...Decl) Decl {
	return Decl{Key: key, Decls: decls, Nest: true}
}

func compile(prefix *kpath.KPath, decls []Decl, dst []FieldPath) []FieldPath {
	for i := range decls {
		d := &decls[i]
		switch {
		case d.Node != nil:
			dst = append(dst, FieldPath{Path: prefix.Append(d.Key), Node: d.Node})
		case d.Nest:
			dst = compile(prefix.Append(d.Key), d.Decls, dst)
		default:
			dst = compile(prefix, d.Decls, dst)
		}
	}
	return dst
}
