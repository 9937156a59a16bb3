package huffzip

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned when the tree builder's priority
	// queue is asked to hold more nodes than it was sized for.  It
	// indicates a bug, not bad input.
	ErrCapacityExceeded = errors.New("huffzip: priority queue capacity exceeded")

	// ErrMalformedHeader is returned when a container header is truncated,
	// declares counts that are inconsistent with each other, or lists
	// (symbol, size) records that do not form a canonical prefix code.
	ErrMalformedHeader = errors.New("huffzip: malformed header")

	// ErrMalformedPayload is returned when the packed payload ends before
	// the declared number of symbols has been decoded, or contains a bit
	// sequence that leads to no symbol.
	ErrMalformedPayload = errors.New("huffzip: malformed payload")

	// ErrTruncated is returned when the input ends before everything its
	// header declares has been read, whether in the header itself or in
	// the payload.  It wraps ErrMalformedHeader; a truncated payload
	// matches ErrMalformedPayload as well.
	ErrTruncated = fmt.Errorf("%w: input truncated", ErrMalformedHeader)

	// ErrUnknownSymbol is returned when a byte has no code in the table
	// being used to encode it.
	ErrUnknownSymbol = errors.New("huffzip: no code for symbol")

	// ErrInputTooLarge is returned when the input cannot be described by
	// the container's 32-bit length field.
	ErrInputTooLarge = errors.New("huffzip: input too large")

	// ErrIO is joined with every error returned by an underlying
	// io.Reader or io.Writer.
	ErrIO = errors.New("huffzip: I/O error")
)

func ioError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
