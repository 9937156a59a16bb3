package huffzip

import (
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// nodeCapacity returns the number of nodes in a Huffman tree with the given
// number of leaves.
func nodeCapacity(symbolCount int) int {
	if symbolCount <= 1 {
		return 1
	}
	return 2*symbolCount - 1
}
