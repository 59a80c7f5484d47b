// Package pkz implements a byte-oriented Huffman compressor and its
// self-describing container format.
//
// A container holds the number of internal tree nodes, the preorder-serialized
// tree, the count of significant bits in the final payload byte, and the
// packed payload:
//
//     NF (1 byte) | TREE (2*(2*NF+1) bytes) | BS (1 byte) | ZIP (rest)
//
// Tree construction is fully deterministic, so compressing the same input
// twice yields identical containers.  When two internal nodes carry the same
// frequency, the one created first is combined first.  Other encoders of this
// format may break that tie differently, so their containers can differ
// byte-for-byte from ours; the trees are self-describing, so containers from
// either side still decode on the other.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package pkz
