package base85

import (
	"errors"
	"fmt"
)

// alphabet is the 85-character symbol table, indexed by digit value.
// The ordering is part of the wire format: digits, uppercase, lowercase,
// then the fixed symbol set. It must never change.
const alphabet = "0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"!#$%&()*+-;<=>?@^_`{|}~"

const (
	// maxDigit is the highest digit value in the alphabet (the '~' symbol).
	// Missing symbol positions in a partial decode chunk take this value.
	maxDigit = 84

	// invalidDigit marks bytes outside the alphabet in the reverse table.
	invalidDigit = 0xFF
)

// Place values for the five symbol positions of a 32-bit group.
const (
	pow4 = 85 * 85 * 85 * 85 // 52200625
	pow3 = 85 * 85 * 85      // 614125
	pow2 = 85 * 85           // 7225
)

var (
	// ErrEmptyInput is returned when Decode is called with no usable symbols.
	// Encoding an empty byte slice is not an error; the asymmetry is intentional.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidCharacter is returned when Decode encounters a byte that is
	// neither an alphabet symbol nor whitespace.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrMalformedLength is returned when the symbol count is inconsistent
	// with any encoder output (a trailing group of exactly one symbol).
	ErrMalformedLength = errors.New("malformed input length")
)

// digits maps an input byte to its digit value, or invalidDigit.
var digits [256]byte

func init() {
	for i := range digits {
		digits[i] = invalidDigit
	}
	for i := 0; i < len(alphabet); i++ {
		digits[alphabet[i]] = byte(i)
	}
}

// Encode converts binary data to its Base85 text form. An empty input
// produces an empty string.
//
// Each 4-byte group is packed big-endian into a 32-bit value and written as
// 5 symbols, most significant first. A trailing group of r bytes (1-3) is
// zero-padded on the low end but written as only r+1 symbols; the padding
// is implied, never emitted.
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	out := make([]byte, 0, (len(data)+3)/4*5)

	full := len(data) / 4 * 4
	for i := 0; i < full; i += 4 {
		v := uint32(data[i])<<24 | uint32(data[i+1])<<16 |
			uint32(data[i+2])<<8 | uint32(data[i+3])
		out = append(out,
			alphabet[v/pow4],
			alphabet[v/pow3%85],
			alphabet[v/pow2%85],
			alphabet[v/85%85],
			alphabet[v%85],
		)
	}

	if extra := len(data) - full; extra > 0 {
		var v uint32
		for _, b := range data[full:] {
			v = v<<8 | uint32(b)
		}
		v <<= 8 * uint(4-extra)

		group := [5]byte{
			alphabet[v/pow4],
			alphabet[v/pow3%85],
			alphabet[v/pow2%85],
			alphabet[v/85%85],
			alphabet[v%85],
		}
		out = append(out, group[:extra+1]...)
	}

	return string(out)
}

// Decode converts Base85 text back to binary data. Whitespace may appear
// anywhere in the input and is ignored, so wrapped or indented encodings
// decode correctly.
//
// Full 5-symbol chunks yield 4 bytes each. A trailing chunk of r symbols
// (2-4) yields r-1 bytes, with the missing symbol positions taking the
// maximum digit value to invert the encoder's zero-byte padding. A trailing
// chunk of exactly 1 symbol cannot be produced by any encoder and fails
// with ErrMalformedLength. Input with no usable symbols fails with
// ErrEmptyInput, and any byte outside the alphabet fails with
// ErrInvalidCharacter.
func Decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]byte, 0, len(s)/5*4+3)

	var acc uint32
	count := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSpace(c) {
			continue
		}
		d := digits[c]
		if d == invalidDigit {
			return nil, fmt.Errorf("offset %d (%q): %w", i, c, ErrInvalidCharacter)
		}
		acc = acc*85 + uint32(d)
		count++
		if count%5 == 0 {
			out = append(out, byte(acc>>24), byte(acc>>16), byte(acc>>8), byte(acc))
			acc = 0
		}
	}

	switch remainder := count % 5; remainder {
	case 0:
		if count == 0 {
			return nil, ErrEmptyInput
		}
	case 1:
		return nil, fmt.Errorf("trailing group of 1 symbol: %w", ErrMalformedLength)
	default:
		for i := remainder; i < 5; i++ {
			acc = acc*85 + maxDigit
		}
		partial := [4]byte{byte(acc >> 24), byte(acc >> 16), byte(acc >> 8), byte(acc)}
		out = append(out, partial[:remainder-1]...)
	}

	return out, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
