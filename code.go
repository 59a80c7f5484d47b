package pkz

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxCodeSize is the longest code a Code can hold.  Reaching it would take a
// Fibonacci-shaped input of more than 2^44 bytes.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low bits of Bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one bit: 0 for a left branch, 1 for a
// right branch.
func (hc Code) Append(bit uint) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | uint64(bit&1)}
}

// bit returns the i'th bit of the code, counting from the first.
func (hc Code) bit(i byte) uint {
	return uint(hc.Bits>>(hc.Size-1-i)) & 1
}

// HasPrefix reports whether prefix is a prefix of this Code.  Every Code is a
// prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + byte(hc.bit(i)))
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}
