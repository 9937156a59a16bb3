package huffzip

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// CodeTable is an ordered list of Codes, one per present Symbol.
//
// A canonical CodeTable is sorted by (Size, Symbol) ascending, and its Bits
// are consecutive integers that are shifted left each time Size increases.
// Such a table is fully determined by its list of (Symbol, Size) pairs.
type CodeTable []Code

// Canonicalize sorts the table by (Size, Symbol) and reassigns every Code's
// Bits using the canonical rule.  The existing Bits are ignored.
func (table CodeTable) Canonicalize() error {
	sort.Sort(bySize(table))
	return table.assign()
}

// assign computes canonical Bits for a table that is already in canonical
// order.  It does not sort; a table that is out of order, lists a symbol
// twice, or whose sizes cannot all be satisfied is rejected.
func (table CodeTable) assign() error {
	var seen [NumSymbols]bool
	var size byte
	var next uint64
	for index := range table {
		hc := &table[index]
		if hc.Size == 0 || hc.Size > MaxCodeSize {
			return fmt.Errorf("%w: code size %d for %s is outside [1, %d]", ErrMalformedHeader, hc.Size, hc.Symbol, MaxCodeSize)
		}
		if seen[hc.Symbol] {
			return fmt.Errorf("%w: symbol %s listed twice", ErrMalformedHeader, hc.Symbol)
		}
		seen[hc.Symbol] = true
		if index > 0 {
			prev := table[index-1]
			if hc.Size < prev.Size || (hc.Size == prev.Size && hc.Symbol < prev.Symbol) {
				return fmt.Errorf("%w: %s (%d bits) is listed after %s (%d bits)", ErrMalformedHeader, hc.Symbol, hc.Size, prev.Symbol, prev.Size)
			}
		}

		if hc.Size > size {
			next <<= (hc.Size - size)
			size = hc.Size
		}
		if next >= uint64(1)<<size {
			return fmt.Errorf("%w: too many codes of %d bits or fewer", ErrMalformedHeader, size)
		}
		hc.Bits = uint32(next)
		next++
	}
	return nil
}

// IsCanonical returns true iff the table satisfies the canonical ordering
// invariant, including its Bits.
func (table CodeTable) IsCanonical() bool {
	dup := table.Clone()
	if err := dup.assign(); err != nil {
		return false
	}
	for index := range table {
		if table[index] != dup[index] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the table.
func (table CodeTable) Clone() CodeTable {
	if table == nil {
		return nil
	}
	dup := make(CodeTable, len(table))
	copy(dup, table)
	return dup
}

// MinSize is the bit length of the shortest code.
func (table CodeTable) MinSize() byte {
	var size byte
	for index, hc := range table {
		if index == 0 || hc.Size < size {
			size = hc.Size
		}
	}
	return size
}

// MaxSize is the bit length of the longest code.
func (table CodeTable) MaxSize() byte {
	var size byte
	for _, hc := range table {
		if hc.Size > size {
			size = hc.Size
		}
	}
	return size
}

// SizeBySymbol returns an array containing the bit length for each Symbol,
// with 0 for symbols that have no code.
func (table CodeTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for _, hc := range table {
		out[hc.Symbol] = hc.Size
	}
	return out
}

// EncodedBits returns the number of payload bits needed to encode data
// described by ft with this table.
func (table CodeTable) EncodedBits(ft *FrequencyTable) uint64 {
	var sum uint64
	for _, hc := range table {
		sum += ft[hc.Symbol] * uint64(hc.Size)
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, hc := range table {
		fmt.Fprintf(&buf, "\t%s -> %s\n", hc.Symbol, hc.bitString())
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of the table.
func (table CodeTable) String() string {
	return fmt.Sprintf("(canonical Huffman code with %d symbols, with coded lengths of %d .. %d bits)", len(table), table.MinSize(), table.MaxSize())
}

// GoString returns a Go expression that rebuilds the table.
func (table CodeTable) GoString() string {
	var sb strings.Builder
	sb.WriteString("huffzip.CodeTable{")
	for index, hc := range table {
		if index > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("{Symbol:0x")
		sb.WriteString(strconv.FormatUint(uint64(hc.Symbol), 16))
		sb.WriteString(", Size:")
		sb.WriteString(strconv.FormatUint(uint64(hc.Size), 10))
		sb.WriteString(", Bits:0x")
		sb.WriteString(strconv.FormatUint(uint64(hc.Bits), 16))
		sb.WriteString("}")
	}
	sb.WriteString("}")
	return sb.String()
}

// MarshalJSON encodes the table as a list of [symbol, size] pairs.  The Bits
// are implied by the canonical ordering.
func (table CodeTable) MarshalJSON() ([]byte, error) {
	pairs := make([][2]uint8, len(table))
	for index, hc := range table {
		pairs[index] = [2]uint8{uint8(hc.Symbol), hc.Size}
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON decodes a list of [symbol, size] pairs in canonical order and
// recomputes the Bits.
func (table *CodeTable) UnmarshalJSON(raw []byte) error {
	var pairs [][2]uint8
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return err
	}
	out := make(CodeTable, len(pairs))
	for index, pair := range pairs {
		out[index] = Code{Symbol: Symbol(pair[0]), Size: pair[1]}
	}
	if err := out.assign(); err != nil {
		return err
	}
	*table = out
	return nil
}

var (
	_ fmt.Stringer     = CodeTable(nil)
	_ fmt.GoStringer   = CodeTable(nil)
	_ json.Marshaler   = CodeTable(nil)
	_ json.Unmarshaler = (*CodeTable)(nil)
)

// type bySize {{{

type bySize []Code

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	return a.Symbol < b.Symbol
}

var _ sort.Interface = bySize(nil)

// }}}
