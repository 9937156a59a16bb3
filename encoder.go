package huffzip

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder implements an encoder for canonical Huffman codes.
type Encoder struct {
	table   CodeTable
	codes   [NumSymbols]Code
	minSize byte
	maxSize byte
}

// Init initializes this Encoder from the given frequencies.  Every symbol
// with a non-zero count receives a code of 1 to MaxCodeSize bits; a lone
// symbol receives a 1-bit code.
//
// Init only fails if an internal sizing invariant is violated.
//
func (e *Encoder) Init(ft *FrequencyTable) error {
	_, err := e.init(ft, MaxCodeSize)
	return err
}

// init does the work of Init, with a configurable limit on code sizes.  It
// returns the tree that the final code sizes were taken from, or nil if ft is
// empty.
func (e *Encoder) init(ft *FrequencyTable, limit int) (*tree, error) {
	symbolCount := ft.SymbolCount()
	assert.Assertf(limit >= 1 && limit <= MaxCodeSize, "code size limit %d outside [1, %d]", limit, MaxCodeSize)
	assert.Assertf(uint64(symbolCount) <= uint64(1)<<uint(limit), "%d symbols cannot fit in %d-bit codes", symbolCount, limit)

	*e = Encoder{}
	if symbolCount == 0 {
		return nil, nil
	}

	// If the tree is too deep for the limit, flatten the distribution and
	// try again.  Halving converges to all-equal counts, whose tree is
	// balanced.
	work := *ft
	for {
		t, err := buildTree(&work)
		if err != nil {
			return nil, err
		}

		var sizes [NumSymbols]int
		if maxDepth := firstPass(t, &sizes); maxDepth > limit {
			work.halve()
			continue
		}

		table := make(CodeTable, 0, symbolCount)
		for symbol, size := range sizes {
			if size != 0 {
				table = append(table, Code{Symbol: Symbol(symbol), Size: byte(size)})
			}
		}
		secondPass(table)

		e.table = table
		for _, hc := range table {
			e.codes[hc.Symbol] = hc
		}
		e.minSize = table.MinSize()
		e.maxSize = table.MaxSize()
		return t, nil
	}
}

// Encode returns the Code assigned to symbol.  If symbol had a frequency of
// zero, ok is false.
func (e *Encoder) Encode(symbol Symbol) (hc Code, ok bool) {
	hc = e.codes[symbol]
	return hc, hc.Size != 0
}

// CodeTable returns a copy of the canonical code table, in canonical order.
// This table can be transmitted to another party and used by Decoder to
// reconstruct this Huffman code on the receiving end.
func (e *Encoder) CodeTable() CodeTable {
	return e.table.Clone()
}

// SymbolCount is the number of symbols that have a code.
func (e *Encoder) SymbolCount() int {
	return len(e.table)
}

// MinSize is the bit length of the shortest legal code.
func (e *Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e *Encoder) MaxSize() byte {
	return e.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet.
func (e *Encoder) SizeBySymbol() []byte {
	return e.table.SizeBySymbol()
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := range e.codes {
		hc := e.codes[symbol]
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// firstPass computes the "first pass" of Huffman code assignment, which is to
// determine the code size of every leaf from its depth in the tree.  It
// returns the greatest size found.
//
func firstPass(t *tree, sizes *[NumSymbols]int) int {
	// A tree consisting of a single leaf would give that leaf a 0-bit code,
	// which can't be told apart from no code at all.
	if root := &t.nodes[t.root]; root.leaf {
		sizes[root.symbol] = 1
		return 1
	}

	// Use a stack to walk the tree.  The current stack depth tells us how
	// many bits are in the code for a leaf found at that depth.  Only
	// internal nodes are pushed.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		i nodeIndex
		x byte
	}

	stack := make([]stackItem, 0, log2uint32(uint32(len(t.nodes))))
	var maxSize int

	processChild := func(child nodeIndex) {
		n := &t.nodes[child]
		if !n.leaf {
			stack = append(stack, stackItem{i: child})
			return
		}
		size := len(stack)
		sizes[n.symbol] = size
		if maxSize < size {
			maxSize = size
		}
	}

	stack = append(stack, stackItem{i: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(t.nodes[top.i].left)
		case 1:
			processChild(t.nodes[top.i].right)
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
	return maxSize
}

// secondPass computes the "second pass" of Huffman code assignment, which
// transforms the (Symbol, Size) assignments from the first pass into a
// canonical Huffman code, per the algorithm detailed at
// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.
func secondPass(table CodeTable) {
	err := table.Canonicalize()
	assert.Assertf(err == nil, "code sizes from a Huffman tree are not canonical: %v", err)
}
