package huffzip

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// The container format is:
//
//	offset  size  field
//	0       4     original length N, big-endian
//	4       1     symbol count S
//	5       2*S   S records of {symbol, code size}, in canonical order
//	5+2*S   ...   payload, ceil(bits/8) bytes, MSB first, zero padded
//
// A symbol count of 0 means "no symbols" when N is 0, and "all 256 symbols"
// otherwise, since a single byte cannot hold 256.
const (
	lengthFieldSize = 4
	headerFixedSize = lengthFieldSize + 1
	recordSize      = 2
)

// Header is the part of the container that precedes the payload.
type Header struct {
	// Length is the number of bytes of uncompressed data.
	Length uint32

	// Table is the canonical code table used by the payload.
	Table CodeTable
}

// Size returns the number of bytes that h occupies when written.
func (h Header) Size() int {
	return headerFixedSize + recordSize*len(h.Table)
}

// MarshalBinary returns the encoded form of h.
func (h Header) MarshalBinary() ([]byte, error) {
	symbolCount := len(h.Table)
	assert.Assertf(symbolCount <= NumSymbols, "header has %d symbols", symbolCount)
	if symbolCount == NumSymbols && h.Length == 0 {
		return nil, fmt.Errorf("%w: %d symbols declared for empty input", ErrMalformedHeader, symbolCount)
	}

	out := make([]byte, h.Size())
	binary.BigEndian.PutUint32(out[0:lengthFieldSize], h.Length)
	out[lengthFieldSize] = byte(symbolCount) // 256 wraps to 0
	records := out[headerFixedSize:]
	for index, hc := range h.Table {
		records[recordSize*index] = byte(hc.Symbol)
		records[recordSize*index+1] = hc.Size
	}
	return out, nil
}

// WriteHeader writes h to w.
func WriteHeader(w io.Writer, h Header) error {
	raw, err := h.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return ioError("write header", err)
	}
	return nil
}

// ReadHeader reads a header from r.  The declared counts are checked against
// each other and against the number of bytes actually available, and the
// records are checked to form a canonical code; any inconsistency is
// reported as ErrMalformedHeader.  On success, the returned table has its
// Bits assigned.
func ReadHeader(r io.Reader) (Header, error) {
	var fixed [headerFixedSize]byte
	if err := readFull(r, fixed[:], "length and symbol count"); err != nil {
		return Header{}, err
	}

	length := binary.BigEndian.Uint32(fixed[0:lengthFieldSize])
	symbolCount := int(fixed[lengthFieldSize])
	if symbolCount == 0 && length != 0 {
		symbolCount = NumSymbols
	}
	if uint64(symbolCount) > uint64(length) {
		return Header{}, fmt.Errorf("%w: %d symbols declared for %d bytes of data", ErrMalformedHeader, symbolCount, length)
	}

	records := make([]byte, recordSize*symbolCount)
	if err := readFull(r, records, fmt.Sprintf("%d symbol records", symbolCount)); err != nil {
		return Header{}, err
	}

	table := make(CodeTable, symbolCount)
	for index := range table {
		table[index] = Code{
			Symbol: Symbol(records[recordSize*index]),
			Size:   records[recordSize*index+1],
		}
	}
	if err := table.assign(); err != nil {
		return Header{}, err
	}

	return Header{Length: length, Table: table}, nil
}

// UnmarshalBinary decodes a header from raw, which must contain exactly one
// header and nothing else.
func (h *Header) UnmarshalBinary(raw []byte) error {
	r := bytes.NewReader(raw)
	out, err := ReadHeader(r)
	if err != nil {
		return err
	}
	if r.Len() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrMalformedHeader, r.Len())
	}
	*h = out
	return nil
}

func readFull(r io.Reader, buf []byte, what string) error {
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w while reading %s: got %d of %d bytes", ErrTruncated, what, n, len(buf))
	}
	if err != nil {
		return ioError("read header", err)
	}
	return nil
}
