package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// seed is shared so that equal nodes hash equally within a process.
var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node.  Nodes which are Equal
// have the same hash.  A nil node hashes as null.
func (n *Node) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	n.hashTo(&h)
	return h.Sum64()
}

func (n *Node) hashTo(h *maphash.Hash) {
	if n == nil {
		h.WriteByte(byte(NullType))
		return
	}
	h.WriteByte(byte(n.Type))

	var b [8]byte
	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		switch {
		case n.Int64 != nil:
			h.WriteByte(0)
			binary.LittleEndian.PutUint64(b[:], uint64(*n.Int64))
			h.Write(b[:])
		case n.Float64 != nil:
			h.WriteByte(1)
			f := *n.Float64
			switch {
			case f == 0:
				// -0 == 0
				f = 0
			case math.IsNaN(f):
				f = math.NaN()
			}
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
			h.Write(b[:])
		default:
			h.WriteByte(2)
			h.WriteString(n.Number)
		}
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		binary.LittleEndian.PutUint64(b[:], uint64(len(n.Values)))
		h.Write(b[:])
		for _, v := range n.Values {
			v.hashTo(h)
		}
	case ObjectType:
		binary.LittleEndian.PutUint64(b[:], uint64(len(n.Fields)))
		h.Write(b[:])
		for i, field := range n.Fields {
			field.hashTo(h)
			n.Values[i].hashTo(h)
		}
	}
}
