// Package testutil is a collection of testing helpers.
package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator whose output
// does not change across Go versions.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() int {
	r.Encrypt(r.blk[:], r.blk[:])
	return int(binary.LittleEndian.Uint64(r.blk[:]) >> 2)
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

// Bytes returns n uniformly distributed bytes.
func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

// Skewed returns n bytes drawn from an alphabet of the given size in which
// each symbol is about twice as likely as the next.
func (r *Rand) Skewed(n, alphabet int) []byte {
	b := make([]byte, n)
	for i := range b {
		sym := 0
		for sym < alphabet-1 && r.Intn(2) == 1 {
			sym++
		}
		b[i] = byte(sym)
	}
	return b
}
