package huffzip

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
)

// maxPrealloc bounds the output buffer allocated up front by Decompress, so
// that a header declaring a huge length cannot force a huge allocation
// before any payload has been seen.
const maxPrealloc = 1 << 24

// Options configures Compress and Decompress.  The zero value, or a nil
// pointer, selects the full byte alphabet and no tracing.
type Options struct {
	// Alphabet restricts the byte values that may be compressed or
	// decompressed.
	Alphabet Alphabet

	// Trace selects the intermediate structures to dump.
	Trace TraceFlags

	// TraceWriter receives the dumps selected by Trace.  If nil, nothing
	// is traced.
	TraceWriter io.Writer
}

var defaultOptions Options

func (opts *Options) orDefault() *Options {
	if opts == nil {
		return &defaultOptions
	}
	return opts
}

// Compress writes the compressed form of data to w.
//
// Compression is all or nothing, but w may have received part of the
// output when an error is returned; callers are responsible for discarding
// it.
func Compress(w io.Writer, data []byte, opts *Options) error {
	opts = opts.orDefault()
	tr := newTracer(opts)

	if uint64(len(data)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes exceeds the limit of %d", ErrInputTooLarge, len(data), uint64(math.MaxUint32))
	}

	ft, err := CountFrequencies(data, opts.Alphabet)
	if err != nil {
		return err
	}
	tr.frequencies(&ft)

	var e Encoder
	t, err := e.init(&ft, MaxCodeSize)
	if err != nil {
		return err
	}
	tr.tree(t)
	tr.codes(e.table)

	bw := bufio.NewWriter(w)
	h := Header{Length: uint32(len(data)), Table: e.table}
	if err := WriteHeader(bw, h); err != nil {
		return err
	}
	if err := writePayload(bw, &e, data); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return ioError("flush", err)
	}
	return nil
}

// Decompress reads one container from r and writes the original data to w.
// Nothing is written to w unless the entire container decodes successfully.
func Decompress(w io.Writer, r io.Reader, opts *Options) error {
	out, err := decompress(r, opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return ioError("write output", err)
	}
	return nil
}

func decompress(r io.Reader, opts *Options) ([]byte, error) {
	opts = opts.orDefault()
	tr := newTracer(opts)

	br := bufio.NewReader(r)
	h, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}
	for _, hc := range h.Table {
		if !opts.Alphabet.Contains(hc.Symbol) {
			return nil, fmt.Errorf("%w: symbol %s is outside the %s alphabet", ErrMalformedHeader, hc.Symbol, opts.Alphabet)
		}
	}

	var d Decoder
	if err := d.Init(h.Table); err != nil {
		return nil, err
	}
	tr.codes(d.table)
	tr.tree(d.t)

	// BitReader turns a (0, nil) read into a zero bit, so it only ever
	// sees the fully read payload.
	payload, err := io.ReadAll(br)
	if err != nil {
		return nil, ioError("read payload", err)
	}
	return readPayload(payload, &d, h.Length)
}

// CompressBytes returns the compressed form of data.
func CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Compress(&buf, data, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes returns the original data of a compressed container.
func DecompressBytes(data []byte) ([]byte, error) {
	return decompress(bytes.NewReader(data), nil)
}

// CompressedSize returns the exact size, in bytes, of the container that
// Compress would produce for data.
func CompressedSize(data []byte, opts *Options) (int64, error) {
	opts = opts.orDefault()
	ft, err := CountFrequencies(data, opts.Alphabet)
	if err != nil {
		return 0, err
	}
	var e Encoder
	if err := e.Init(&ft); err != nil {
		return 0, err
	}
	h := Header{Length: uint32(len(data)), Table: e.table}
	return int64(h.Size()) + int64(payloadSize(e.table.EncodedBits(&ft))), nil
}
