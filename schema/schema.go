package schema

import (
	"fmt"

	"github.com/signadot/flat/ir/kpath"
)

// Type is the variant of a schema node.
type Type int

const (
	UnitType Type = iota
	ListType
	StructType
)

func (t Type) String() string {
	switch t {
	case UnitType:
		return "Unit"
	case ListType:
		return "List"
	case StructType:
		return "Struct"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Tag identifies where values described by a node are stored.  Exactly
// one of Name and Node is set: Name is a bucket name, Node is another
// schema node whose bucket is shared.
type Tag struct {
	Name string
	Node *Node
}

// Named returns a tag naming a bucket.
func Named(name string) Tag {
	return Tag{Name: name}
}

// Ref returns a tag referring to n.
func Ref(n *Node) Tag {
	return Tag{Node: n}
}

// Bucket resolves t to a bucket name by following node tags until a
// name is found.
func (t Tag) Bucket() string {
	for t.Node != nil {
		t = t.Node.Tag
	}
	return t.Name
}

func (t Tag) String() string {
	if t.Node != nil {
		return t.Node.String()
	}
	return t.Name
}

// Equal reports whether t and o are deeply equal: both names and
// equal, or both nodes and Equal.
func (t Tag) Equal(o Tag) bool {
	if (t.Node == nil) != (o.Node == nil) {
		return false
	}
	if t.Node == nil {
		return t.Name == o.Name
	}
	return Equal(t.Node, o.Node)
}

// Node is a schema node: an immutable description of how a value is
// stored.
//
//   - a Unit is a single value, interned in its bucket.
//   - a List is an array, each element described by Tag.
//   - a Struct is an object, stored in the bucket named by Tag with the
//     values at its field paths replaced by their own storage.
//
// Nodes are created with Unit, Alias, UnitOf, List, ListOf and Struct
// and must not be modified afterwards.  They may be shared between
// goroutines.
type Node struct {
	Type Type
	Tag  Tag

	fields []FieldPath
}

// Unit returns a unit stored in the bucket name.
func Unit(name string) *Node {
	return UnitOf(Named(name))
}

// Alias returns a unit sharing the bucket of n.
func Alias(n *Node) *Node {
	return UnitOf(Ref(n))
}

func UnitOf(tag Tag) *Node {
	return &Node{Type: UnitType, Tag: tag}
}

// List returns a list whose elements are described by elem.
func List(elem *Node) *Node {
	return ListOf(Ref(elem))
}

// ListOf returns a list described by tag.  When tag is a bare name,
// the elements are stored as opaque values in that bucket.
func ListOf(tag Tag) *Node {
	return &Node{Type: ListType, Tag: tag}
}

// Struct returns a struct stored in the bucket name whose fields
// are declared by decls.  The field paths are computed once, here.
func Struct(name string, decls ...Decl) *Node {
	return &Node{
		Type:   StructType,
		Tag:    Named(name),
		fields: compile(nil, decls, nil),
	}
}

// Bucket returns the name of the bucket the node's values are
// stored in.  For a list, this is the bucket of its elements.
func (n *Node) Bucket() string {
	return n.Tag.Bucket()
}

// Fields returns the field paths of a struct in declaration order.
// It returns nil for units and lists.  The result must not be
// modified.
func (n *Node) Fields() []FieldPath {
	return n.fields
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%s)", n.Type, n.Tag)
}

// Equal reports whether a and b have the same variant and deeply
// equal tags.  Struct fields are not compared.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Type == b.Type && a.Tag.Equal(b.Tag)
}

// FieldPath associates a path into a struct's object with the schema
// of the value found there.
type FieldPath struct {
	Path *kpath.KPath
	Node *Node
}

func (f FieldPath) String() string {
	return f.Path.String() + ": " + f.Node.String()
}
