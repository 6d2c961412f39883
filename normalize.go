package flat

import (
	"github.com/signadot/flat/debug"
	"github.com/signadot/flat/flatten"
	"github.com/signadot/flat/ir"
	"github.com/signadot/flat/schema"
)

// Normalize converts data described by s to entities and an index.
// A nil data is normalized as null.
func Normalize(s *schema.Node, data *ir.Node) *Result {
	store := flatten.New()
	entities := normalize(schema.Ref(s), data, store)
	return &Result{
		Entities: entities,
		Index:    store.Index(),
	}
}

func normalize(tag schema.Tag, data *ir.Node, store *flatten.Store) *ir.Node {
	if data == nil {
		data = ir.Null()
	}
	n := tag.Node
	if n == nil {
		return entity(store.Intern(tag.Name, data))
	}
	var res *ir.Node
	switch n.Type {
	case schema.UnitType:
	case schema.ListType:
		if data.Type == ir.ArrayType {
			vs := make([]*ir.Node, len(data.Values))
			for i, v := range data.Values {
				vs[i] = normalize(n.Tag, v, store)
			}
			res = ir.FromSlice(vs)
		}
	case schema.StructType:
		if data.Type == ir.ObjectType {
			res = entity(store.Push(n.Bucket(), normalizeFields(n, data, store)))
		}
	}
	if res == nil {
		res = entity(store.Intern(n.Bucket(), data))
	}
	if debug.Normalize() {
		debug.Logf("normalize %s: %v -> %v\n", n, data, res)
	}
	return res
}

// normalizeFields returns a new object equal to obj except that the
// value at each field path of n is replaced by its entity.
func normalizeFields(n *schema.Node, obj *ir.Node, store *flatten.Store) *ir.Node {
	res := ir.FromKeyVals(keyVals(obj))
	for _, f := range n.Fields() {
		v, ok := obj.GetKPath(f.Path)
		if !ok {
			continue
		}
		e := normalize(schema.Ref(f.Node), v, store)
		res, _ = res.UpdateKPath(f.Path, func(*ir.Node) *ir.Node {
			return e
		})
	}
	return res
}

func keyVals(obj *ir.Node) []ir.KeyVal {
	kvs := make([]ir.KeyVal, len(obj.Fields))
	for i := range obj.Fields {
		kvs[i] = ir.KeyVal{Key: obj.Fields[i], Val: obj.Values[i]}
	}
	return kvs
}

func entity(i int) *ir.Node {
	return ir.FromInt(int64(i))
}
