// Package base85 implements the Base85 binary-to-text encoding used by the
// CryptoString format.
//
// The encoding represents every 4 bytes of input as 5 printable symbols
// drawn from a fixed 85-character alphabet (RFC 1924 ordering: digits,
// uppercase, lowercase, then symbols). It is roughly 7% denser than base64
// and avoids the characters most likely to be mangled by quoting or shells.
//
// This is not the Adobe Ascii85 variant implemented by encoding/ascii85:
// the alphabet differs, there is no "z" shorthand for zero groups, and no
// <~ ~> framing. The two encodings are not interoperable.
//
// Decoding tolerates whitespace anywhere in the input, so encodings that
// have been wrapped or indented for display decode without preprocessing.
package base85
