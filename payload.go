package huffzip

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dgryski/go-bitstream"
)

// writePayload packs the code for every byte of data into w, first bit first,
// and zero-pads the final byte.
func writePayload(w io.Writer, e *Encoder, data []byte) error {
	bits := bitstream.NewWriter(w)
	for _, b := range data {
		hc, ok := e.Encode(Symbol(b))
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSymbol, Symbol(b))
		}
		if err := bits.WriteBits(uint64(hc.Bits), int(hc.Size)); err != nil {
			return ioError("write payload", err)
		}
	}
	if err := bits.Flush(bitstream.Zero); err != nil {
		return ioError("write payload", err)
	}
	return nil
}

// readPayload decodes exactly n symbols from payload.  Bits after the n'th
// symbol are padding and are never read.
//
// Every code is at least d.MinSize() bits long, so a payload too short to
// hold n of the shortest code is rejected before any decoding.
func readPayload(payload []byte, d *Decoder, n uint32) ([]byte, error) {
	need := payloadSize(uint64(n) * uint64(d.minSize))
	if uint64(len(payload)) < need {
		return nil, fmt.Errorf("%w: %w: %d symbols need at least %d payload bytes, got %d", ErrMalformedPayload, ErrTruncated, n, need, len(payload))
	}

	prealloc := n
	if prealloc > maxPrealloc {
		prealloc = maxPrealloc
	}
	dst := make([]byte, 0, prealloc)

	bits := bitstream.NewReader(bytes.NewReader(payload))
	for i := uint32(0); i < n; i++ {
		symbol, err := d.decodeNext(bits)
		if err != nil {
			return nil, fmt.Errorf("%w (at symbol %d of %d)", err, i, n)
		}
		dst = append(dst, byte(symbol))
	}
	return dst, nil
}

// payloadSize returns the number of bytes needed to hold the given number of
// bits.
func payloadSize(bits uint64) uint64 {
	return (bits + 7) / 8
}
