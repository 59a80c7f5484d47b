package pkz

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// NodeIndex addresses a node within a Tree.
type NodeIndex int32

// NoNode is returned by some methods to clearly indicate that no node is
// being returned.
const NoNode = NodeIndex(-1)

// MaxInternalNodes is the largest internal node count that the container
// header can represent.
const MaxInternalNodes = 255

type treeNode struct {
	freq   uint64
	left   NodeIndex
	right  NodeIndex
	symbol Symbol
	leaf   bool
}

// Tree is a Huffman prefix tree.  Nodes live in a single arena and refer to
// their children by index; every node except the root has exactly one parent.
type Tree struct {
	nodes       []treeNode
	root        NodeIndex
	numInternal int
}

// BuildTree constructs the Huffman tree for the given frequencies.
//
// The two lowest-priority nodes are repeatedly combined into a new internal
// node whose left child is the first one extracted.  Priority is the
// composite key (frequency, isInternal, symbol-or-sequence): on equal
// frequency a leaf sorts before an internal node, two leaves sort by symbol
// value, and two internal nodes sort by creation order.
//
// A table with a single symbol yields a tree consisting of one leaf.
//
func BuildTree(ft *FrequencyTable) (*Tree, error) {
	numLeaves := ft.Distinct()
	if numLeaves == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{
		nodes: make([]treeNode, 0, 2*numLeaves-1),
		root:  NoNode,
	}

	// Step 1: build a minheap seeded with one leaf per present symbol.

	h := treeHeap{tree: t, list: make([]NodeIndex, 0, numLeaves)}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if count := ft[symbol]; count != 0 {
			h.list = append(h.list, t.addLeaf(Symbol(symbol), count))
		}
	}
	h.Init()
	log.Debugf("initial nodes in heap: %d", h.Len())

	// Step 2: pop two nodes, combine them, and push the combination back
	// until only the root remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(NodeIndex)
		b := heap.Pop(&h).(NodeIndex)

		// Compute freqSum using saturating addition
		freqA, freqB := t.nodes[a].freq, t.nodes[b].freq
		freqSum := freqA + freqB
		if freqSum < freqA {
			freqSum = math.MaxUint64
		}

		parent := t.addInternal(freqSum, a, b)
		heap.Push(&h, parent)
		log.Debugf("combining nodes: (%d, %d) -> %d", freqA, freqB, freqSum)
	}

	t.root = heap.Pop(&h).(NodeIndex)
	assert.Assertf(t.numInternal == numLeaves-1, "numInternal %d != numLeaves %d - 1", t.numInternal, numLeaves)
	log.Debugf("built tree: %d leaves, %d internal nodes", numLeaves, t.numInternal)
	return t, nil
}

// Root returns the index of the root node, or NoNode for an empty Tree.
func (t *Tree) Root() NodeIndex {
	return t.root
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumInternal returns the number of internal nodes, i.e. NF.
func (t *Tree) NumInternal() int {
	return t.numInternal
}

// IsLeaf reports whether the node at i is a leaf.
func (t *Tree) IsLeaf(i NodeIndex) bool {
	return t.nodes[i].leaf
}

// Symbol returns the symbol of the leaf at i.
func (t *Tree) Symbol(i NodeIndex) Symbol {
	return t.nodes[i].symbol
}

// Freq returns the frequency recorded for the node at i.  Trees rebuilt from
// a container carry no frequencies, so this is 0 for them.
func (t *Tree) Freq(i NodeIndex) uint64 {
	return t.nodes[i].freq
}

// Left returns the left child of the node at i, or NoNode for a leaf.
func (t *Tree) Left(i NodeIndex) NodeIndex {
	return t.nodes[i].left
}

// Right returns the right child of the node at i, or NoNode for a leaf.
func (t *Tree) Right(i NodeIndex) NodeIndex {
	return t.nodes[i].right
}

// Dump writes a programmer-readable, indented rendering of the tree.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if t.root != NoNode {
		t.dumpNode(&buf, t.root, 1)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) dumpNode(buf *bytes.Buffer, i NodeIndex, depth int) {
	indent := strings.Repeat("\t", depth)
	n := &t.nodes[i]
	if n.leaf {
		fmt.Fprintf(buf, "%sLeaf(%d) freq=%d\n", indent, n.symbol, n.freq)
		return
	}
	fmt.Fprintf(buf, "%sInternal freq=%d\n", indent, n.freq)
	t.dumpNode(buf, n.left, depth+1)
	t.dumpNode(buf, n.right, depth+1)
}

func (t *Tree) addLeaf(symbol Symbol, freq uint64) NodeIndex {
	t.nodes = append(t.nodes, treeNode{
		freq:   freq,
		left:   NoNode,
		right:  NoNode,
		symbol: symbol,
		leaf:   true,
	})
	return NodeIndex(len(t.nodes) - 1)
}

func (t *Tree) addInternal(freq uint64, left, right NodeIndex) NodeIndex {
	t.nodes = append(t.nodes, treeNode{
		freq:  freq,
		left:  left,
		right: right,
	})
	t.numInternal++
	return NodeIndex(len(t.nodes) - 1)
}

// type treeHeap {{{

type treeHeap struct {
	tree *Tree
	list []NodeIndex
}

func (h *treeHeap) Init() {
	heap.Init(h)
}

func (h *treeHeap) Len() int {
	return len(h.list)
}

func (h *treeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *treeHeap) Less(i, j int) bool {
	ai, bi := h.list[i], h.list[j]
	a, b := &h.tree.nodes[ai], &h.tree.nodes[bi]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	if a.leaf != b.leaf {
		return a.leaf
	}
	if a.leaf {
		return a.symbol < b.symbol
	}
	// Internal nodes are appended in creation order.
	return ai < bi
}

func (h *treeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(NodeIndex))
}

func (h *treeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*treeHeap)(nil)

// }}}
