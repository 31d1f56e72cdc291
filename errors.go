package cryptostring

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidFormat is returned when a candidate string does not match
	// the TAG:DATA grammar.
	ErrInvalidFormat = errors.New("invalid cryptostring format")

	// ErrInvalidParts is returned when parts-based construction is given an
	// empty tag, an empty payload, or a tag outside the prefix grammar.
	ErrInvalidParts = errors.New("invalid algorithm tag or payload")

	// ErrUnsupportedAlgorithm is returned when a CryptoString carries a tag
	// this package has no implementation for.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrInvalidKeySize is returned when decoded key material has the wrong
	// length for its algorithm tag, or when a key object is missing the half
	// an operation needs.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrDecryptionFailed is returned when authenticated decryption fails.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrVerificationFailed is returned when signature verification fails.
	ErrVerificationFailed = errors.New("signature verification failed")
)
