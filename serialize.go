package pkz

import (
	"encoding"
	"fmt"
)

// Serialized node tags.  Each node occupies two bytes: (tagInternal, 0) for
// an internal node, (tagLeaf, symbol) for a leaf.
const (
	tagInternal = 0
	tagLeaf     = 1
)

// TreeSize returns the serialized size in bytes of a tree with numInternal
// internal nodes.
func TreeSize(numInternal int) int {
	return 2 * (2*numInternal + 1)
}

// MarshalBinary serializes the tree in preorder: an internal node is written
// before its left subtree, which is written before its right subtree.
func (t *Tree) MarshalBinary() ([]byte, error) {
	if t.root == NoNode {
		return nil, fmt.Errorf("%w: empty tree", ErrMalformedTree)
	}

	out := make([]byte, 0, TreeSize(t.numInternal))
	var walk func(i NodeIndex)
	walk = func(i NodeIndex) {
		n := &t.nodes[i]
		if n.leaf {
			out = append(out, tagLeaf, byte(n.symbol))
			return
		}
		out = append(out, tagInternal, 0)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return out, nil
}

// UnmarshalBinary rebuilds a tree from its preorder serialization.  The data
// must describe exactly one complete tree; an unknown node pattern, a
// premature end, or leftover bytes fail with ErrMalformedTree.  Rebuilt trees
// carry no frequencies.
func (t *Tree) UnmarshalBinary(data []byte) error {
	nt := Tree{
		nodes: make([]treeNode, 0, len(data)/2),
		root:  NoNode,
	}
	pos := 0
	root, err := nt.readNode(data, &pos)
	if err != nil {
		return err
	}
	if pos != len(data) {
		return fmt.Errorf("%w: %d trailing bytes after complete tree", ErrMalformedTree, len(data)-pos)
	}
	nt.root = root

	*t = nt
	log.Debugf("rebuilt tree: %d nodes, %d internal", nt.Len(), nt.numInternal)
	return nil
}

func (t *Tree) readNode(data []byte, pos *int) (NodeIndex, error) {
	offset := *pos
	if offset+2 > len(data) {
		return NoNode, fmt.Errorf("%w: unexpected end of tree data at offset %d", ErrMalformedTree, offset)
	}
	tag, value := data[offset], data[offset+1]
	*pos += 2

	switch {
	case tag == tagInternal && value == 0:
		// Children are appended to the arena before their parent.
		left, err := t.readNode(data, pos)
		if err != nil {
			return NoNode, err
		}
		right, err := t.readNode(data, pos)
		if err != nil {
			return NoNode, err
		}
		return t.addInternal(0, left, right), nil
	case tag == tagLeaf:
		return t.addLeaf(Symbol(value), 0), nil
	default:
		return NoNode, fmt.Errorf("%w: unexpected node (%d, %d) at offset %d", ErrMalformedTree, tag, value, offset)
	}
}

var (
	_ encoding.BinaryMarshaler   = (*Tree)(nil)
	_ encoding.BinaryUnmarshaler = (*Tree)(nil)
)
