package cryptostring

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hash algorithm tags accepted by NewHash and CheckHash. BLAKE2B-256 is the
// preferred algorithm; the others exist for interoperability.
const (
	HashBlake2b256 = "BLAKE2B-256"
	HashBlake2b512 = "BLAKE2B-512"
	HashSHA256     = "SHA-256"
	HashSHA3256    = "SHA3-256"
)

// NewHash hashes data with the named algorithm and returns the digest as a
// CryptoString tagged with that algorithm. An unrecognized algorithm fails
// with ErrUnsupportedAlgorithm.
func NewHash(algorithm string, data []byte) (CryptoString, error) {
	sum, err := sumHash(algorithm, data)
	if err != nil {
		return CryptoString{}, err
	}
	return NewFromBytes(algorithm, sum), nil
}

// CheckHash reports whether hash matches data, recomputing the digest with
// the algorithm named by the hash's own tag. The comparison is constant
// time.
func CheckHash(hash CryptoString, data []byte) (bool, error) {
	if !hash.IsValid() {
		return false, ErrInvalidFormat
	}
	want, err := hash.RawData()
	if err != nil {
		return false, err
	}
	sum, err := sumHash(hash.Prefix(), data)
	if err != nil {
		return false, err
	}
	if len(sum) != len(want) {
		return false, nil
	}
	return subtle.ConstantTimeCompare(sum, want) == 1, nil
}

func sumHash(algorithm string, data []byte) ([]byte, error) {
	switch algorithm {
	case HashBlake2b256:
		sum := blake2b.Sum256(data)
		return sum[:], nil
	case HashBlake2b512:
		sum := blake2b.Sum512(data)
		return sum[:], nil
	case HashSHA256:
		sum := sha256.Sum256(data)
		return sum[:], nil
	case HashSHA3256:
		sum := sha3.Sum256(data)
		return sum[:], nil
	}
	return nil, fmt.Errorf("%q: %w", algorithm, ErrUnsupportedAlgorithm)
}
