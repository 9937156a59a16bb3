package huffzip

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dgryski/go-bitstream"
)

// Decoder implements a decoder for canonical Huffman codes.
type Decoder struct {
	table   CodeTable
	t       *tree
	minSize byte
	maxSize byte
}

// Init initializes this Decoder.  The argument lists zero or more codes in
// canonical order, i.e. sorted by (Size, Symbol); only the Symbol and Size
// of each entry are used, and the Bits are recomputed using the canonical
// rule.  The table is not re-sorted.
//
// The codes need not be complete.  In particular, a single symbol with a
// 1-bit code is permitted, as there is no way to construct a complete
// Huffman code for one symbol.
//
func (d *Decoder) Init(table CodeTable) error {
	dup := table.Clone()
	if err := dup.assign(); err != nil {
		return err
	}

	t, err := buildDecodeTree(dup)
	if err != nil {
		return err
	}

	*d = Decoder{
		table:   dup,
		t:       t,
		minSize: dup.MinSize(),
		maxSize: dup.MaxSize(),
	}
	return nil
}

// Decode attempts to decode a Huffman code into a Symbol.  It succeeds only
// if hc is exactly one of the codes in the table.
func (d *Decoder) Decode(hc Code) (symbol Symbol, ok bool) {
	if d.t == nil {
		return 0, false
	}
	cur := d.t.root
	for i := byte(0); i < hc.Size; i++ {
		n := &d.t.nodes[cur]
		if n.leaf {
			return 0, false
		}
		cur = n.child(hc.Bit(i))
		if cur == noNode {
			return 0, false
		}
	}
	n := &d.t.nodes[cur]
	return n.symbol, n.leaf
}

// bitSource is the subset of *bitstream.BitReader used for decoding.
type bitSource interface {
	ReadBit() (bitstream.Bit, error)
}

// decodeNext reads bits from src, walking the tree from the root, until a
// leaf is reached.
func (d *Decoder) decodeNext(src bitSource) (Symbol, error) {
	cur := d.t.root
	for {
		n := &d.t.nodes[cur]
		if n.leaf {
			return n.symbol, nil
		}

		bit, err := src.ReadBit()
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, fmt.Errorf("%w: %w: payload ends in the middle of a code", ErrMalformedPayload, ErrTruncated)
		}
		if err != nil {
			return 0, ioError("read payload", err)
		}

		if bit == bitstream.One {
			cur = n.right
		} else {
			cur = n.left
		}
		if cur == noNode {
			return 0, fmt.Errorf("%w: bit sequence matches no code", ErrMalformedPayload)
		}
	}
}

// CodeTable returns a copy of the canonical code table.
func (d *Decoder) CodeTable() CodeTable {
	return d.table.Clone()
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder) MaxSize() byte {
	return d.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet.
func (d *Decoder) SizeBySymbol() []byte {
	return d.table.SizeBySymbol()
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	for _, hc := range d.table {
		symbol, _ := d.Decode(hc)
		fmt.Fprintf(&buf, "\tDecode(%s) = %s\n", hc, symbol)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (d *Decoder) DebugString() string {
	var sb strings.Builder
	_, _ = d.Dump(&sb)
	return sb.String()
}

// String returns a brief description of the Decoder.
func (d *Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with coded lengths of %d .. %d bits)", len(d.table), d.minSize, d.maxSize)
}

var _ fmt.Stringer = (*Decoder)(nil)
