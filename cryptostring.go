package cryptostring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mensago/cryptostring-go/base85"
)

// The full-string grammar and the tag-only grammar. The data class is the
// exact Base85 alphabet; the hyphen sits last so it reads as a literal.
var (
	csPattern     = regexp.MustCompile("^[A-Z0-9-]{1,24}:[0-9A-Za-z!#$%&()*+;<=>?@^_`{|}~-]+$")
	prefixPattern = regexp.MustCompile("^[A-Z0-9-]{1,24}$")
)

// CryptoString is an algorithm-tagged piece of binary data in its text
// form: an uppercase tag naming the algorithm, a colon, and the Base85
// encoding of the payload, e.g.
//
//	ED25519:6|7Zt_$r?--<<F)z(
//
// The zero value is invalid. A CryptoString is immutable once constructed
// and safe for concurrent reads; validity is fixed at construction time and
// must be checked with IsValid before the accessors are trusted.
type CryptoString struct {
	str        string
	splitPoint int
	valid      bool
}

// New parses a candidate string into a CryptoString. If the input does not
// match the TAG:DATA grammar the result is invalid and carries no data.
func New(s string) CryptoString {
	if !csPattern.MatchString(s) {
		return CryptoString{}
	}
	return CryptoString{
		str:        s,
		splitPoint: strings.IndexByte(s, ':'),
		valid:      true,
	}
}

// Parse is New for callers who want an error value: it returns
// ErrInvalidFormat instead of an invalid CryptoString.
func Parse(s string) (CryptoString, error) {
	cs := New(s)
	if !cs.valid {
		return CryptoString{}, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
	}
	return cs, nil
}

// NewFromBytes builds a CryptoString from an algorithm tag and a raw
// payload, encoding the payload internally. The result is invalid if the
// tag is empty or outside the prefix grammar, or if the payload is empty.
func NewFromBytes(algorithm string, data []byte) CryptoString {
	if len(data) == 0 || !prefixPattern.MatchString(algorithm) {
		return CryptoString{}
	}
	return CryptoString{
		str:        algorithm + ":" + base85.Encode(data),
		splitPoint: len(algorithm),
		valid:      true,
	}
}

// FromBytes is NewFromBytes for callers who want an error value: it returns
// ErrInvalidParts instead of an invalid CryptoString.
func FromBytes(algorithm string, data []byte) (CryptoString, error) {
	cs := NewFromBytes(algorithm, data)
	if !cs.valid {
		return CryptoString{}, fmt.Errorf("algorithm %q: %w", algorithm, ErrInvalidParts)
	}
	return cs, nil
}

// IsValid reports whether the value holds usable data.
func (cs CryptoString) IsValid() bool {
	return cs.valid
}

// AsString returns the full external form, tag and encoded data together.
// It returns the empty string for an invalid value.
func (cs CryptoString) AsString() string {
	return cs.str
}

// String implements fmt.Stringer.
func (cs CryptoString) String() string {
	return cs.str
}

// Prefix returns the algorithm tag, the portion before the separator.
func (cs CryptoString) Prefix() string {
	if !cs.valid {
		return ""
	}
	return cs.str[:cs.splitPoint]
}

// Data returns the still-encoded payload, the portion after the separator.
func (cs CryptoString) Data() string {
	if !cs.valid {
		return ""
	}
	return cs.str[cs.splitPoint+1:]
}

// RawData decodes and returns the binary payload. Decode failures are
// propagated; on an invalid value this reports base85.ErrEmptyInput.
func (cs CryptoString) RawData() ([]byte, error) {
	return base85.Decode(cs.Data())
}
