package pkz

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable holds the number of occurrences of each Symbol.  A count of
// zero means the Symbol is absent from the input.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies tallies every byte of data.  Empty input yields an empty
// table.
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	ft.Add(data)
	return ft
}

// Add tallies every byte of data into the table.
func (ft *FrequencyTable) Add(data []byte) {
	for _, b := range data {
		ft[b]++
	}
}

// Count returns the number of occurrences of symbol.
func (ft *FrequencyTable) Count(symbol Symbol) uint64 {
	return ft[symbol]
}

// Distinct returns the number of symbols with a non-zero count.
func (ft *FrequencyTable) Distinct() int {
	var n int
	for _, count := range ft {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range ft {
		sum += count
	}
	return sum
}

// Dump writes a programmer-readable listing of the present symbols.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if count := ft[symbol]; count != 0 {
			fmt.Fprintf(&buf, "\tCount(%d) = %d\n", symbol, count)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
