package pkz

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Decoder walks a Huffman tree to turn a packed bit stream back into bytes.
type Decoder struct {
	tree *Tree
}

// Init initializes this Decoder with the given tree.
//
// A tree whose root is a leaf assigns its only symbol the empty code and
// cannot describe any data, so it is rejected with ErrDegenerateAlphabet.
//
func (d *Decoder) Init(t *Tree) error {
	root := t.Root()
	if root == NoNode {
		return fmt.Errorf("%w: empty tree", ErrMalformedTree)
	}
	if t.IsLeaf(root) {
		return fmt.Errorf("%w: tree is a single leaf for symbol %d", ErrDegenerateAlphabet, t.Symbol(root))
	}
	*d = Decoder{tree: t}
	return nil
}

// Decode unpacks payload.  Every byte of payload contributes all 8 bits,
// most significant first, except the last, which contributes only its first
// bs bits.
//
// Starting at the root, each 0 bit moves to the left child and each 1 bit to
// the right child.  Reaching a leaf emits its symbol and returns to the root.
// The stream must end at the root; otherwise Decode fails with
// ErrTrailingBits.
//
func (d *Decoder) Decode(payload []byte, bs byte) ([]byte, error) {
	if bs < 1 || bs > 8 {
		return nil, fmt.Errorf("%w: BS %d out of range 1 .. 8", ErrMalformedContainer, bs)
	}
	if len(payload) == 0 {
		return []byte{}, nil
	}

	t := d.tree
	root := t.Root()
	numBits := uint64(len(payload)-1)*8 + uint64(bs)
	r := bitio.NewReader(bytes.NewReader(payload))
	out := make([]byte, 0, 2*len(payload))

	current := root
	for i := uint64(0); i < numBits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		if bit {
			current = t.Right(current)
		} else {
			current = t.Left(current)
		}
		if current == NoNode {
			return nil, fmt.Errorf("%w: dead end at bit %d", ErrMalformedTree, i)
		}
		if t.IsLeaf(current) {
			out = append(out, byte(t.Symbol(current)))
			current = root
		}
	}

	if current != root {
		return nil, fmt.Errorf("%w: stream of %d bits ends mid-code after %d symbols", ErrTrailingBits, numBits, len(out))
	}
	log.Debugf("decoded %d bits into %d bytes", numBits, len(out))
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	if d.tree != nil {
		fmt.Fprintf(&buf, "\tRoot() = %d\n", d.tree.Root())
		fmt.Fprintf(&buf, "\tLen() = %d\n", d.tree.Len())
		fmt.Fprintf(&buf, "\tNumInternal() = %d\n", d.tree.NumInternal())
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
