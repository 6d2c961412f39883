package flatten

import (
	"fmt"

	"github.com/signadot/flat/debug"
	"github.com/signadot/flat/ir"
)

type Store struct {
	names   []string
	buckets map[string]*bucket
}

type bucket struct {
	values []*ir.Node
	// leaves maps hashes of leaf values to their positions.  It
	// is built on the first Intern.
	leaves map[uint64][]int
}

func New() *Store {
	return &Store{buckets: map[string]*bucket{}}
}

// FromIndex creates a store whose buckets are the arrays of index.
// The arrays are used directly, not copied.
func FromIndex(index *ir.Node) (*Store, error) {
	s := New()
	if index.IsNull() {
		return s, nil
	}
	if index.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrBadIndex, index.Type)
	}
	for i, f := range index.Fields {
		vs := index.Values[i]
		if vs.Type != ir.ArrayType {
			return nil, fmt.Errorf("%w: bucket %q: expected array, got %s", ErrBadIndex, f.String, vs.Type)
		}
		if _, exists := s.buckets[f.String]; exists {
			return nil, fmt.Errorf("%w: bucket %q given twice", ErrBadIndex, f.String)
		}
		s.names = append(s.names, f.String)
		s.buckets[f.String] = &bucket{values: vs.Values}
	}
	return s, nil
}

func (s *Store) get(name string) *bucket {
	b := s.buckets[name]
	if b == nil {
		b = &bucket{}
		s.buckets[name] = b
		s.names = append(s.names, name)
		if debug.Store() {
			debug.Logf("store: new bucket %q\n", name)
		}
	}
	return b
}

// Bucket returns the values of the bucket name, creating an empty
// bucket if there is none.  The result must not be modified.
func (s *Store) Bucket(name string) []*ir.Node {
	return s.get(name).values
}

// Len returns the number of values in the bucket name.
func (s *Store) Len(name string) int {
	return len(s.get(name).values)
}

// Names returns the bucket names in creation order.
func (s *Store) Names() []string {
	return append([]string(nil), s.names...)
}

// Intern returns the position of v in the bucket name, adding v
// if it is not there.  Leaf values are found by value (ir.Equal),
// arrays and objects only by identity.
func (s *Store) Intern(name string, v *ir.Node) int {
	if v == nil {
		v = ir.Null()
	}
	b := s.get(name)
	if !v.Type.IsLeaf() {
		for i, x := range b.values {
			if x == v {
				return i
			}
		}
		return s.push(name, b, v)
	}
	if b.leaves == nil {
		b.leaves = map[uint64][]int{}
		for i, x := range b.values {
			if x.Type.IsLeaf() {
				h := x.Hash()
				b.leaves[h] = append(b.leaves[h], i)
			}
		}
	}
	h := v.Hash()
	for _, i := range b.leaves[h] {
		if ir.Equal(b.values[i], v) {
			return i
		}
	}
	i := s.push(name, b, v)
	b.leaves[h] = append(b.leaves[h], i)
	return i
}

// Push adds v to the bucket name and returns its position.
func (s *Store) Push(name string, v *ir.Node) int {
	if v == nil {
		v = ir.Null()
	}
	b := s.get(name)
	i := s.push(name, b, v)
	if b.leaves != nil && v.Type.IsLeaf() {
		h := v.Hash()
		b.leaves[h] = append(b.leaves[h], i)
	}
	return i
}

func (s *Store) push(name string, b *bucket, v *ir.Node) int {
	b.values = append(b.values, v)
	i := len(b.values) - 1
	if debug.Store() {
		debug.Logf("store: %s[%d] = %v\n", name, i, v)
	}
	return i
}

// Fetch returns the value at position i of the bucket name.
func (s *Store) Fetch(name string, i int) (*ir.Node, error) {
	b := s.get(name)
	if i < 0 || i >= len(b.values) {
		return nil, fmt.Errorf("%w: %s[%d] (len %d)", ErrOutOfRange, name, i, len(b.values))
	}
	return b.values[i], nil
}

// Index exports the store as an object mapping bucket names to
// arrays of values, in bucket creation order.
func (s *Store) Index() *ir.Node {
	kvs := make([]ir.KeyVal, len(s.names))
	for i, name := range s.names {
		kvs[i] = ir.KeyVal{
			Key: ir.FromString(name),
			Val: ir.FromSlice(s.buckets[name].values),
		}
	}
	return ir.FromKeyVals(kvs)
}
