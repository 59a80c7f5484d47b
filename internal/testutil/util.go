package testutil

import (
	"encoding/hex"
)

// MustDecodeHex must decode a hexadecimal string or else panics.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// AllBytes returns every byte value once, in ascending order.
func AllBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// Fibonacci returns input whose symbol counts follow the Fibonacci sequence
// 1, 1, 2, 3, 5, ... for the first n symbols, which yields the deepest
// possible Huffman tree for that alphabet.
func Fibonacci(n int) []byte {
	var out []byte
	a, b := 1, 1
	for sym := 0; sym < n; sym++ {
		for i := 0; i < a; i++ {
			out = append(out, byte(sym))
		}
		a, b = b, a+b
	}
	return out
}
