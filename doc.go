// Package flat normalizes object notation documents against a schema.
//
// A schema (see package schema) describes the shape of some data as
// units, lists and structs.  Normalize walks the data along the schema
// and stores every unit and struct in a bucket of a flatten.Store,
// producing a Result:
//
//   - Entities has the shape of the data with every unit and struct
//     replaced by its position in its bucket.
//   - Index maps bucket names to their values.
//
// Units with equal leaf values are stored once.  Structs are stored
// with their declared fields replaced by entities; other fields are
// kept as they are.
//
//	something := schema.Unit("Something")
//	pair := schema.Struct("Pair",
//	    schema.Field("foo", something),
//	    schema.Field("bar", something))
//
//	res := flat.Normalize(pair, ir.Object(
//	    "foo", ir.FromString("abc"),
//	    "bar", ir.FromString("def")))
//	// res.Entities: 0
//	// res.Index: {"Something": ["abc", "def"], "Pair": [{"foo": 0, "bar": 1}]}
//
//	data, err := flat.Denormalize(pair, res)
//	// data: {"foo": "abc", "bar": "def"}
//
// Data which does not have the shape its schema expects (a list schema
// applied to a non-array, a struct schema applied to a non-object) is
// stored as an opaque value and comes back unchanged.  Normalize does
// not validate its input.
//
// Each call uses its own store, so calls may run concurrently with
// shared schemas.
package flat
