package ir

import (
	"github.com/signadot/flat/ir/kpath"
)

// GetKPath returns the node at kp.  The second return value is
// false if some segment of kp names a field which is absent or
// crosses a node which is not an object.
//
// Example:
//
//	root.GetKPath(kpath.Field("a", "b")) navigates to root.a.b
func (node *Node) GetKPath(kp *kpath.KPath) (*Node, bool) {
	res := node
	for x := kp; x != nil; x = x.Next {
		if x.Field == nil {
			continue
		}
		i := fieldIndex(res, *x.Field)
		if i == -1 {
			return nil, false
		}
		res = res.Values[i]
	}
	return res, true
}

// UpdateKPath returns a node equal to node except that the value v
// at kp is replaced by f(v).  node is not modified: the objects along
// kp are copied, everything else is shared with node.
//
// If kp does not exist in node, node is returned with false.
func (node *Node) UpdateKPath(kp *kpath.KPath, f func(*Node) *Node) (*Node, bool) {
	if kp == nil {
		return f(node), true
	}
	if kp.Field == nil {
		return node.UpdateKPath(kp.Next, f)
	}
	i := fieldIndex(node, *kp.Field)
	if i == -1 {
		return node, false
	}
	child, ok := node.Values[i].UpdateKPath(kp.Next, f)
	if !ok {
		return node, false
	}
	res := node.shallow()
	res.Values[i] = child
	return res, true
}
