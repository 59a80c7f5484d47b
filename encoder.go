package pkz

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each present Symbol to its Huffman code.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	count   int
	minSize byte
	maxSize byte
}

// GenerateCodes walks the tree and assigns every leaf the path leading to
// it: 0 for each left branch, 1 for each right branch.  A tree whose root is a
// leaf assigns that leaf the empty code.
func GenerateCodes(t *Tree) *CodeTable {
	ct := new(CodeTable)
	if t.Root() == NoNode {
		return ct
	}

	var walk func(i NodeIndex, hc Code)
	walk = func(i NodeIndex, hc Code) {
		if t.IsLeaf(i) {
			ct.set(t.Symbol(i), hc)
			return
		}
		assert.Assertf(hc.Size < MaxCodeSize, "code size exceeds MaxCodeSize %d", MaxCodeSize)
		walk(t.Left(i), hc.Append(0))
		walk(t.Right(i), hc.Append(1))
	}
	walk(t.Root(), Code{})

	log.Debugf("generated %d codes with lengths of %d .. %d bits", ct.count, ct.minSize, ct.maxSize)
	return ct
}

// Lookup returns the code for symbol, and whether the symbol has one.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	return ct.codes[symbol], ct.present[symbol]
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	return ct.count
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// EncodedBits returns the number of payload bits needed to encode input with
// these frequencies, i.e. the sum of code lengths weighted by occurrence.
func (ct *CodeTable) EncodedBits(ft *FrequencyTable) uint64 {
	var sum uint64
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if ct.present[symbol] {
			sum += uint64(ct.codes[symbol].Size) * ft[symbol]
		}
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the table.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if ct.present[symbol] {
			fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, ct.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (ct *CodeTable) set(symbol Symbol, hc Code) {
	size := hc.Size
	if ct.count == 0 {
		ct.minSize = size
		ct.maxSize = size
	} else if ct.minSize > size {
		ct.minSize = size
	} else if ct.maxSize < size {
		ct.maxSize = size
	}
	ct.codes[symbol] = hc
	ct.present[symbol] = true
	ct.count++
}

// Encoder holds the tree and code table built for one input.
type Encoder struct {
	tree  *Tree
	codes *CodeTable
}

// Init initializes this Encoder from the given frequencies.  It fails with
// ErrEmptyInput if no symbol is present.
func (e *Encoder) Init(ft *FrequencyTable) error {
	tree, err := BuildTree(ft)
	if err != nil {
		return err
	}
	*e = Encoder{
		tree:  tree,
		codes: GenerateCodes(tree),
	}
	return nil
}

// Encode returns the code for symbol, and whether the symbol has one.
func (e *Encoder) Encode(symbol Symbol) (Code, bool) {
	return e.codes.Lookup(symbol)
}

// Tree returns the tree built by Init.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// Codes returns the code table built by Init.
func (e *Encoder) Codes() *CodeTable {
	return e.codes
}

// Pack encodes data with this Encoder's codes.  See Pack.
func (e *Encoder) Pack(data []byte) ([]byte, byte, error) {
	return Pack(data, e.codes)
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tNumInternal() = %d\n", e.tree.NumInternal())
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.codes.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.codes.MaxSize())
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if hc, ok := e.codes.Lookup(Symbol(symbol)); ok {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
