package tree

// Sentinel marks an absent child in the serialized form.
const Sentinel = '#'

// Node is a single tree vertex. Children are owned exclusively by their
// parent; there are no back references.
type Node struct {
	value       byte
	left, right *Node
}

// Value returns the node's payload character.
func (n *Node) Value() byte { return n.value }

func (n *Node) Left() *Node  { return n.left }
func (n *Node) Right() *Node { return n.right }

// IsLeaf reports whether n has no children. A nil node is not a leaf.
func (n *Node) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

// Tree holds an optional root. The zero value and a nil *Tree are both the
// empty tree.
type Tree struct {
	root *Node
}

func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

func (t *Tree) Empty() bool {
	return t.Root() == nil
}
