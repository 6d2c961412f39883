package flat

import (
	"fmt"

	"github.com/signadot/flat/ir"
)

// Result is a normalized document.
type Result struct {
	// Entities has the shape of the normalized data, with units and
	// structs replaced by positions in their buckets.
	Entities *ir.Node
	// Index is an object mapping bucket names to arrays of values.
	Index *ir.Node
}

// ToIR returns r as an object with fields "entities" and "index".
func (r *Result) ToIR() *ir.Node {
	index := r.Index
	if index == nil {
		index = ir.Object()
	}
	entities := r.Entities
	if entities == nil {
		entities = ir.Null()
	}
	return ir.Object("entities", entities, "index", index)
}

// ResultFromIR is the inverse of ToIR.
func ResultFromIR(node *ir.Node) (*Result, error) {
	if node.IsNull() || node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: expected object", ErrBadResult)
	}
	entities := ir.Get(node, "entities")
	if entities == nil {
		return nil, fmt.Errorf("%w: missing entities", ErrBadResult)
	}
	index := ir.Get(node, "index")
	if index == nil {
		index = ir.Object()
	}
	if index.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: index must be an object, got %s", ErrBadResult, index.Type)
	}
	return &Result{Entities: entities, Index: index}, nil
}

func (r *Result) MarshalJSON() ([]byte, error) {
	return ir.EncodeJSON(r.ToIR()), nil
}

func (r *Result) UnmarshalJSON(d []byte) error {
	node, err := ir.ParseJSON(d)
	if err != nil {
		return err
	}
	res, err := ResultFromIR(node)
	if err != nil {
		return err
	}
	*r = *res
	return nil
}

func (r *Result) MarshalYAML() (any, error) {
	return ir.ToAny(r.ToIR()), nil
}

func (r *Result) UnmarshalYAML(d []byte) error {
	node, err := ir.ParseYAML(d)
	if err != nil {
		return err
	}
	res, err := ResultFromIR(node)
	if err != nil {
		return err
	}
	*r = *res
	return nil
}
