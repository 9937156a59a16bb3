package huffzip

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable holds the number of occurrences of each Symbol in some
// input.  Symbols with a count of zero are absent from the input.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies tallies every byte of data.  If a byte falls outside of
// alpha, ErrUnknownSymbol is returned.
func CountFrequencies(data []byte, alpha Alphabet) (FrequencyTable, error) {
	var ft FrequencyTable
	for _, b := range data {
		ft[b]++
	}
	if alpha != AlphabetFull {
		for symbol := alpha.Size(); symbol < NumSymbols; symbol++ {
			if ft[symbol] != 0 {
				return FrequencyTable{}, fmt.Errorf("%w: byte %s is outside the %s alphabet", ErrUnknownSymbol, Symbol(symbol), alpha)
			}
		}
	}
	return ft, nil
}

// Count returns the number of occurrences of symbol.
func (ft *FrequencyTable) Count(symbol Symbol) uint64 {
	return ft[symbol]
}

// SymbolCount returns the number of distinct symbols that are present.
func (ft *FrequencyTable) SymbolCount() int {
	var n int
	for _, count := range ft {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, which is the length of the input.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range ft {
		sum += count
	}
	return sum
}

// halve divides every non-zero count by two, rounding up so that no present
// symbol disappears.
func (ft *FrequencyTable) halve() {
	for symbol, count := range ft {
		if count != 0 {
			ft[symbol] = (count + 1) / 2
		}
	}
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tSymbolCount() = %d\n", ft.SymbolCount())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.Total())
	for symbol, count := range ft {
		if count != 0 {
			fmt.Fprintf(&buf, "\tCount(%s) = %d\n", Symbol(symbol), count)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
