// Package cryptostring implements the CryptoString format: a compact,
// self-describing text representation for cryptographic binary data such as
// keys, hashes, signatures, and ciphertexts.
//
// A CryptoString is an algorithm tag, a colon, and the Base85 encoding of
// the payload:
//
//	ED25519:r#r*RiXIN-0n)BzP3bv`LA&t4LFEQNF0Q@$N~RF*
//	BLAKE2B-256:?*e?y<{rc(1b3{@N-?(cdzO;0962venZ1&=2%dRV
//
// Naming the algorithm inside the value means a protocol or storage format
// never has to guess how a blob of key material should be interpreted, and
// algorithms can be upgraded without changing any surrounding schema.
//
// # Construction and validity
//
// A CryptoString is built either by parsing a complete tagged string with
// [New] or by combining a tag and raw bytes with [NewFromBytes]. Both mark
// the value invalid instead of failing loudly; check [CryptoString.IsValid]
// before trusting the accessors, or use the [Parse] and [FromBytes]
// variants to get an error value. Tags are 1-24 characters from [A-Z0-9-].
// Once constructed a value never changes, so it is safe for unsynchronized
// concurrent reads.
//
// # Encoding
//
// Payloads use the Base85 encoding implemented by the base85 subpackage:
// RFC 1924 alphabet, 4 bytes to 5 symbols, about 7% denser than base64.
// See that package for the wire-level details.
//
// # Algorithm suite
//
// Beyond the format itself, the package provides typed wrappers for common
// key material, all speaking CryptoStrings at their boundaries:
//
//   - [SigningPair]: ED25519 signatures.
//   - [EncryptionPair]: CURVE25519 anonymous sealed boxes (NaCl box).
//   - [SecretKey]: XSALSA20-Poly1305 symmetric encryption (NaCl secretbox).
//   - [KEMPair]: ML-KEM-768 post-quantum key encapsulation.
//   - [NewHash]/[CheckHash]: BLAKE2B-256/512, SHA-256, SHA3-256 digests.
//
// These are one-shot representation helpers; key storage, rotation, and
// trust decisions belong to the caller.
package cryptostring
