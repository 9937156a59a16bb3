package huffzip

import (
	"fmt"
	"strconv"
)

// MaxCodeSize is the longest code, in bits, that a CodeTable may contain.
const MaxCodeSize = 32

// Code represents the sequence of bits assigned to one Symbol.
type Code struct {
	// Symbol is the input byte that this Code stands for.
	Symbol Symbol

	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant
	// valid bit, bit (Size-1), is the first bit on the wire.
	Bits uint32
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(symbol Symbol, size byte, bits uint32) Code {
	return Code{Symbol: symbol, Size: size, Bits: bits}
}

// Bit returns the i'th bit of the code in transmission order, where i=0 is
// the first bit sent.
func (hc Code) Bit(i byte) uint32 {
	return (hc.Bits >> (hc.Size - 1 - i)) & 1
}

// IsPrefixOf returns true iff the bits of hc are a prefix of the bits of
// other.  A Code is a prefix of itself.
func (hc Code) IsPrefixOf(other Code) bool {
	if hc.Size > other.Size {
		return false
	}
	return other.Bits>>(other.Size-hc.Size) == hc.Bits
}

// String returns the string representation of this Code's bits.
func (hc Code) String() string {
	return strconv.Quote(hc.bitString())
}

func (hc Code) bitString() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

var _ fmt.Stringer = Code{}
