package huffzip

import (
	"math"
	"strconv"
)

// Symbol represents one byte of input.
type Symbol byte

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxUint8)

// NumSymbols is the size of the largest supported alphabet.
const NumSymbols = int(MaxSymbol) + 1

// String returns the symbol as a single-quoted character literal, with
// control characters and non-ASCII bytes escaped.
func (s Symbol) String() string {
	switch s {
	case '\'':
		return `'\''`
	case '\\':
		return `'\\'`
	case 0:
		return `'\0'`
	case '\a':
		return `'\a'`
	case '\b':
		return `'\b'`
	case '\f':
		return `'\f'`
	case '\n':
		return `'\n'`
	case '\r':
		return `'\r'`
	case '\t':
		return `'\t'`
	case '\v':
		return `'\v'`
	}
	if s >= 0x20 && s < 0x7f {
		return "'" + string(rune(s)) + "'"
	}
	hex := strconv.FormatUint(uint64(s), 16)
	if len(hex) < 2 {
		hex = "0" + hex
	}
	return `'\x` + hex + "'"
}

// Alphabet selects which byte values may appear in uncompressed data.
type Alphabet uint8

const (
	// AlphabetFull permits every byte value, 0x00 through 0xff.
	AlphabetFull Alphabet = iota

	// AlphabetASCII permits only 7-bit values, 0x00 through 0x7f.
	AlphabetASCII
)

// Size returns the number of symbols in the alphabet.
func (a Alphabet) Size() int {
	if a == AlphabetASCII {
		return 128
	}
	return NumSymbols
}

// Contains reports whether s is a member of the alphabet.
func (a Alphabet) Contains(s Symbol) bool {
	return int(s) < a.Size()
}

// String returns the name of the alphabet.
func (a Alphabet) String() string {
	switch a {
	case AlphabetFull:
		return "full"
	case AlphabetASCII:
		return "ascii"
	default:
		return "Alphabet(" + strconv.Itoa(int(a)) + ")"
	}
}
