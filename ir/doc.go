// Package ir holds object notation documents in memory: the values
// which are normalized and denormalized.
//
// A document is a tree of *Node.  Type says which of the other fields
// are meaningful:
//
//   - NullType: none
//   - BoolType: Bool
//   - NumberType: Int64 for integers, else Float64, else the literal
//     in Number when it fits neither
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields and Values, where the string key Fields[i]
//     names Values[i]
//
// Object field order is significant.  It is kept by the codecs here,
// ParseJSON/EncodeJSON (valyala/fastjson) and ParseYAML/EncodeYAML
// (goccy/go-yaml), and it takes part in Compare.
//
//	obj := ir.Object(
//	    "name", ir.FromString("x"),
//	    "tags", ir.Strings("a", "b"))
//	d := ir.EncodeJSON(obj) // {"name":"x","tags":["a","b"]}
//
// Nodes have no parent links, so one subtree may be part of several
// trees.  Nothing in this package modifies its arguments; UpdateKPath
// copies the objects along the path it updates and shares the rest.
//
// Equal nodes have equal hashes (see Node.Hash), which is what lets a
// store find a value it already holds.
//
// Nodes are not synchronized, but trees which nobody modifies may be
// read from many goroutines.
package ir
