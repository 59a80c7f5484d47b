package pkz

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Pack concatenates the code of every byte of data, in order, into one
// most-significant-bit-first stream and pads it with zero bits to a byte
// boundary.
//
// bs is the number of significant bits in the final payload byte, in the
// range 1 .. 8; a stream that ends exactly on a byte boundary, including an
// empty one, reports 8.
//
// Pack fails with ErrUnmappedSymbol if a byte of data has no code.
//
func Pack(data []byte, ct *CodeTable) (payload []byte, bs byte, err error) {
	var buf bytes.Buffer
	buf.Grow(packedSizeHint(len(data), ct))

	w := bitio.NewWriter(&buf)
	var bitsTotal uint64
	for offset, b := range data {
		hc, ok := ct.Lookup(Symbol(b))
		if !ok {
			return nil, 0, fmt.Errorf("%w: byte %d at offset %d", ErrUnmappedSymbol, b, offset)
		}
		if hc.Size == 0 {
			continue
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, 0, err
		}
		bitsTotal += uint64(hc.Size)
	}
	if err := w.Close(); err != nil {
		return nil, 0, err
	}

	bs = significantBits(bitsTotal)
	log.Debugf("packed %d bytes into %d bits (%d payload bytes, %d padding bits)",
		len(data), bitsTotal, buf.Len(), 8-bs)
	return buf.Bytes(), bs, nil
}

// significantBits maps a stream length to the BS header field.
func significantBits(bitsTotal uint64) byte {
	bs := byte(bitsTotal % 8)
	if bs == 0 {
		bs = 8
	}
	return bs
}

// packedSizeHint estimates the payload size from the average code length.
func packedSizeHint(n int, ct *CodeTable) int {
	avg := (int(ct.MinSize()) + int(ct.MaxSize()) + 1) / 2
	return (n*avg)/8 + 1
}
