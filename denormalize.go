package flat

import (
	"fmt"

	"github.com/signadot/flat/debug"
	"github.com/signadot/flat/flatten"
	"github.com/signadot/flat/ir"
	"github.com/signadot/flat/schema"
)

// Denormalize reconstructs the data which was normalized to r with s.
//
// It fails with flatten.ErrOutOfRange if an entity refers past the end
// of its bucket, and with ErrBadEntity if an entity is not a position.
// A nil r fails with ErrBadResult.
func Denormalize(s *schema.Node, r *Result) (*ir.Node, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil result", ErrBadResult)
	}
	store, err := flatten.FromIndex(r.Index)
	if err != nil {
		return nil, err
	}
	return denormalize(schema.Ref(s), r.Entities, store)
}

func denormalize(tag schema.Tag, e *ir.Node, store *flatten.Store) (*ir.Node, error) {
	n := tag.Node
	if n == nil {
		return fetch(store, tag.Name, e)
	}
	var (
		res *ir.Node
		err error
	)
	switch n.Type {
	case schema.UnitType:
		res, err = fetch(store, n.Bucket(), e)
	case schema.ListType:
		if e == nil || e.Type != ir.ArrayType {
			res, err = fetch(store, n.Bucket(), e)
			break
		}
		vs := make([]*ir.Node, len(e.Values))
		for i, v := range e.Values {
			vs[i], err = denormalize(n.Tag, v, store)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
		}
		res = ir.FromSlice(vs)
	case schema.StructType:
		res, err = fetch(store, n.Bucket(), e)
		if err == nil && res.Type == ir.ObjectType {
			res, err = denormalizeFields(n, res, store)
		}
	default:
		err = fmt.Errorf("unknown schema type %s", n.Type)
	}
	if err != nil {
		return nil, err
	}
	if debug.Denormalize() {
		debug.Logf("denormalize %s: %v -> %v\n", n, e, res)
	}
	return res, nil
}

// denormalizeFields returns a new object equal to body except that the
// entity at each field path of n is replaced by its value.
func denormalizeFields(n *schema.Node, body *ir.Node, store *flatten.Store) (*ir.Node, error) {
	res := ir.FromKeyVals(keyVals(body))
	for _, f := range n.Fields() {
		e, ok := body.GetKPath(f.Path)
		if !ok {
			continue
		}
		v, err := denormalize(schema.Ref(f.Node), e, store)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", n.Bucket(), f.Path, err)
		}
		res, _ = res.UpdateKPath(f.Path, func(*ir.Node) *ir.Node {
			return v
		})
	}
	return res, nil
}

func fetch(store *flatten.Store, bucket string, e *ir.Node) (*ir.Node, error) {
	i, ok := e.Int()
	if !ok {
		return nil, fmt.Errorf("%w: %s: expected a position, got %s", ErrBadEntity, bucket, ir.EncodeJSON(e))
	}
	return store.Fetch(bucket, i)
}
