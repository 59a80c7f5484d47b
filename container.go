package pkz

import (
	"fmt"
)

// Container is the parsed form of a compressed file.
type Container struct {
	// NumInternal is NF, the number of internal nodes in the tree.
	NumInternal int

	// Tree holds the preorder-serialized tree, TreeSize(NumInternal) bytes.
	Tree []byte

	// SignificantBits is BS, the number of significant bits in the final
	// byte of Payload, in the range 1 .. 8.
	SignificantBits byte

	// Payload is ZIP, the packed and padded bit stream.
	Payload []byte
}

// Validate checks that the fields describe a well-formed container.
func (c *Container) Validate() error {
	if c.NumInternal < 0 || c.NumInternal > MaxInternalNodes {
		return fmt.Errorf("%w: NF %d out of range 0 .. %d", ErrMalformedContainer, c.NumInternal, MaxInternalNodes)
	}
	if expect := TreeSize(c.NumInternal); len(c.Tree) != expect {
		return fmt.Errorf("%w: tree section is %d bytes, NF %d requires %d", ErrMalformedContainer, len(c.Tree), c.NumInternal, expect)
	}
	if c.SignificantBits < 1 || c.SignificantBits > 8 {
		return fmt.Errorf("%w: BS %d out of range 1 .. 8", ErrMalformedContainer, c.SignificantBits)
	}
	if len(c.Payload) == 0 {
		return fmt.Errorf("%w: empty payload", ErrMalformedContainer)
	}
	return nil
}

// Size returns the length of the serialized container.
func (c *Container) Size() int {
	return 1 + len(c.Tree) + 1 + len(c.Payload)
}

// MarshalBinary returns the serialized container.  Nothing is produced unless
// the container is valid.
func (c *Container) MarshalBinary() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	out := make([]byte, 0, c.Size())
	out = append(out, byte(c.NumInternal))
	out = append(out, c.Tree...)
	out = append(out, c.SignificantBits)
	out = append(out, c.Payload...)
	return out, nil
}

// ParseContainer splits data into its container fields.  The returned
// Container aliases data.
func ParseContainer(data []byte) (*Container, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("%w: missing NF header", ErrMalformedContainer)
	}
	nf := int(data[0])
	pos := 1

	treeSize := TreeSize(nf)
	if len(data)-pos < treeSize {
		return nil, fmt.Errorf("%w: NF %d declares %d tree bytes, only %d present", ErrMalformedContainer, nf, treeSize, len(data)-pos)
	}
	tree := data[pos : pos+treeSize]
	pos += treeSize

	if len(data)-pos < 1 {
		return nil, fmt.Errorf("%w: missing BS header", ErrMalformedContainer)
	}
	bs := data[pos]
	pos++

	c := &Container{
		NumInternal:     nf,
		Tree:            tree,
		SignificantBits: bs,
		Payload:         data[pos:],
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	log.Debugf("parsed container: NF=%d tree=%d bytes BS=%d payload=%d bytes", nf, treeSize, bs, len(c.Payload))
	return c, nil
}
