// Package kpath provides field path parsing and construction.
//
// A field path is a sequence of object keys addressing a value
// inside nested objects:
//
//	"pair.foo"          // field foo of field pair
//	"'a.b'.c"           // keys containing special characters are quoted
//
// # Usage
//
//	kp, err := kpath.Parse("arrays.pairs")
//	kp = kpath.Field("arrays", "pairs") // same path
//	child := kp.Append("more")
//	for _, key := range child.Segments() {
//	    ...
//	}
//
// Paths are immutable: Append returns a new path sharing no
// segments with its receiver.  Compare orders paths segment by segment,
// a path sorting before its extensions.
//
// # Related Packages
//
//   - github.com/signadot/flat/ir - navigation of nodes by path
//   - github.com/signadot/flat/schema - struct field paths
package kpath
