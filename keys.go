package cryptostring

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"golang.org/x/crypto/nacl/box"
	"golang.org/x/crypto/nacl/secretbox"
)

// Algorithm tags for key material, signatures, and ciphertexts.
const (
	AlgED25519    = "ED25519"
	AlgCurve25519 = "CURVE25519"
	AlgXSalsa20   = "XSALSA20"
	AlgMLKEM768   = "MLKEM768"
)

const (
	// Curve25519KeySize is the size of a Curve25519 key in bytes.
	Curve25519KeySize = 32
	// SecretKeySize is the size of an XSalsa20-Poly1305 key in bytes.
	SecretKeySize = 32
	// SecretNonceSize is the size of an XSalsa20-Poly1305 nonce in bytes.
	SecretNonceSize = 24

	// MLKEMPublicKeySize is the size of an ML-KEM-768 public key in bytes.
	MLKEMPublicKeySize = 1184
	// MLKEMPrivateKeySize is the size of an ML-KEM-768 private key in bytes.
	MLKEMPrivateKeySize = 2400
	// MLKEMCiphertextSize is the size of an ML-KEM-768 ciphertext in bytes.
	MLKEMCiphertextSize = 1088
	// MLKEMSharedKeySize is the size of the shared secret from ML-KEM-768 in bytes.
	MLKEMSharedKeySize = 32
)

// randReader is the random source used for key generation and nonces.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

func randSource() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// SigningPair holds an ED25519 signing keypair. Both halves are carried as
// CryptoStrings; the private half encodes the 32-byte seed.
type SigningPair struct {
	PublicKey  CryptoString
	PrivateKey CryptoString

	pub  ed25519.PublicKey
	priv ed25519.PrivateKey
}

// GenerateSigningPair creates a new ED25519 signing pair.
func GenerateSigningPair() (*SigningPair, error) {
	pub, priv, err := ed25519.GenerateKey(randSource())
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	return &SigningPair{
		PublicKey:  NewFromBytes(AlgED25519, pub),
		PrivateKey: NewFromBytes(AlgED25519, priv.Seed()),
		pub:        pub,
		priv:       priv,
	}, nil
}

// SigningPairFromStrings reconstructs a signing pair from its two
// CryptoStrings, as stored or received.
func SigningPairFromStrings(public, private CryptoString) (*SigningPair, error) {
	if public.Prefix() != AlgED25519 || private.Prefix() != AlgED25519 {
		return nil, fmt.Errorf("%q/%q: %w", public.Prefix(), private.Prefix(),
			ErrUnsupportedAlgorithm)
	}
	pubRaw, err := public.RawData()
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	seed, err := private.RawData()
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(pubRaw) != ed25519.PublicKeySize || len(seed) != ed25519.SeedSize {
		return nil, ErrInvalidKeySize
	}
	return &SigningPair{
		PublicKey:  public,
		PrivateKey: private,
		pub:        ed25519.PublicKey(pubRaw),
		priv:       ed25519.NewKeyFromSeed(seed),
	}, nil
}

// Sign signs data with the private half and returns the signature as an
// ED25519 CryptoString.
func (p *SigningPair) Sign(data []byte) (CryptoString, error) {
	if len(p.priv) != ed25519.PrivateKeySize {
		return CryptoString{}, ErrInvalidKeySize
	}
	return NewFromBytes(AlgED25519, ed25519.Sign(p.priv, data)), nil
}

// VerifySignature reports whether signature is a valid ED25519 signature
// over data by the holder of public.
func VerifySignature(public CryptoString, data []byte, signature CryptoString) (bool, error) {
	if public.Prefix() != AlgED25519 || signature.Prefix() != AlgED25519 {
		return false, ErrUnsupportedAlgorithm
	}
	pubRaw, err := public.RawData()
	if err != nil {
		return false, fmt.Errorf("decode public key: %w", err)
	}
	sigRaw, err := signature.RawData()
	if err != nil {
		return false, fmt.Errorf("decode signature: %w", err)
	}
	if len(pubRaw) != ed25519.PublicKeySize {
		return false, ErrInvalidKeySize
	}
	return ed25519.Verify(ed25519.PublicKey(pubRaw), data, sigRaw), nil
}

// EncryptionPair holds a Curve25519 keypair for anonymous sealed boxes.
// Anyone holding the public half can encrypt; only the private half can
// decrypt, and the sender is not authenticated.
type EncryptionPair struct {
	PublicKey  CryptoString
	PrivateKey CryptoString

	pub  *[Curve25519KeySize]byte
	priv *[Curve25519KeySize]byte
}

// GenerateEncryptionPair creates a new Curve25519 encryption pair.
func GenerateEncryptionPair() (*EncryptionPair, error) {
	pub, priv, err := box.GenerateKey(randSource())
	if err != nil {
		return nil, fmt.Errorf("generate encryption key: %w", err)
	}
	return &EncryptionPair{
		PublicKey:  NewFromBytes(AlgCurve25519, pub[:]),
		PrivateKey: NewFromBytes(AlgCurve25519, priv[:]),
		pub:        pub,
		priv:       priv,
	}, nil
}

// EncryptionPairFromStrings reconstructs an encryption pair from its two
// CryptoStrings.
func EncryptionPairFromStrings(public, private CryptoString) (*EncryptionPair, error) {
	if public.Prefix() != AlgCurve25519 || private.Prefix() != AlgCurve25519 {
		return nil, fmt.Errorf("%q/%q: %w", public.Prefix(), private.Prefix(),
			ErrUnsupportedAlgorithm)
	}
	pubRaw, err := public.RawData()
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	privRaw, err := private.RawData()
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(pubRaw) != Curve25519KeySize || len(privRaw) != Curve25519KeySize {
		return nil, ErrInvalidKeySize
	}
	pair := &EncryptionPair{
		PublicKey:  public,
		PrivateKey: private,
		pub:        new([Curve25519KeySize]byte),
		priv:       new([Curve25519KeySize]byte),
	}
	copy(pair.pub[:], pubRaw)
	copy(pair.priv[:], privRaw)
	return pair, nil
}

// Encrypt seals data to the pair's public key and returns the sealed box as
// a CURVE25519 CryptoString.
func (p *EncryptionPair) Encrypt(data []byte) (CryptoString, error) {
	if p.pub == nil {
		return CryptoString{}, ErrInvalidKeySize
	}
	sealed, err := box.SealAnonymous(nil, data, p.pub, randSource())
	if err != nil {
		return CryptoString{}, fmt.Errorf("seal: %w", err)
	}
	return NewFromBytes(AlgCurve25519, sealed), nil
}

// Decrypt opens a sealed box produced by Encrypt.
func (p *EncryptionPair) Decrypt(msg CryptoString) ([]byte, error) {
	if p.pub == nil || p.priv == nil {
		return nil, ErrInvalidKeySize
	}
	if msg.Prefix() != AlgCurve25519 {
		return nil, fmt.Errorf("%q: %w", msg.Prefix(), ErrUnsupportedAlgorithm)
	}
	sealed, err := msg.RawData()
	if err != nil {
		return nil, err
	}
	plain, ok := box.OpenAnonymous(nil, sealed, p.pub, p.priv)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return plain, nil
}

// SecretKey holds a symmetric XSalsa20-Poly1305 key.
type SecretKey struct {
	Key CryptoString

	key *[SecretKeySize]byte
}

// GenerateSecretKey creates a new random symmetric key.
func GenerateSecretKey() (*SecretKey, error) {
	var key [SecretKeySize]byte
	if _, err := io.ReadFull(randSource(), key[:]); err != nil {
		return nil, fmt.Errorf("generate secret key: %w", err)
	}
	return &SecretKey{Key: NewFromBytes(AlgXSalsa20, key[:]), key: &key}, nil
}

// SecretKeyFromString reconstructs a symmetric key from its CryptoString.
func SecretKeyFromString(key CryptoString) (*SecretKey, error) {
	if key.Prefix() != AlgXSalsa20 {
		return nil, fmt.Errorf("%q: %w", key.Prefix(), ErrUnsupportedAlgorithm)
	}
	raw, err := key.RawData()
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	if len(raw) != SecretKeySize {
		return nil, ErrInvalidKeySize
	}
	sk := &SecretKey{Key: key, key: new([SecretKeySize]byte)}
	copy(sk.key[:], raw)
	return sk, nil
}

// Encrypt encrypts data under a fresh random nonce. The nonce occupies the
// first 24 bytes of the encoded payload.
func (k *SecretKey) Encrypt(data []byte) (CryptoString, error) {
	if k.key == nil {
		return CryptoString{}, ErrInvalidKeySize
	}
	var nonce [SecretNonceSize]byte
	if _, err := io.ReadFull(randSource(), nonce[:]); err != nil {
		return CryptoString{}, fmt.Errorf("generate nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], data, &nonce, k.key)
	return NewFromBytes(AlgXSalsa20, sealed), nil
}

// Decrypt decrypts a payload produced by Encrypt.
func (k *SecretKey) Decrypt(msg CryptoString) ([]byte, error) {
	if k.key == nil {
		return nil, ErrInvalidKeySize
	}
	if msg.Prefix() != AlgXSalsa20 {
		return nil, fmt.Errorf("%q: %w", msg.Prefix(), ErrUnsupportedAlgorithm)
	}
	sealed, err := msg.RawData()
	if err != nil {
		return nil, err
	}
	if len(sealed) < SecretNonceSize+secretbox.Overhead {
		return nil, ErrDecryptionFailed
	}
	var nonce [SecretNonceSize]byte
	copy(nonce[:], sealed[:SecretNonceSize])
	plain, ok := secretbox.Open(nil, sealed[SecretNonceSize:], &nonce, k.key)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return plain, nil
}

// KEMPair holds an ML-KEM-768 keypair for key encapsulation.
type KEMPair struct {
	PublicKey  CryptoString
	PrivateKey CryptoString

	pub  *mlkem768.PublicKey
	priv *mlkem768.PrivateKey
}

// GenerateKEMPair creates a new ML-KEM-768 keypair.
func GenerateKEMPair() (*KEMPair, error) {
	pub, priv, err := mlkem768.GenerateKeyPair(randReader)
	if err != nil {
		return nil, fmt.Errorf("generate KEM key: %w", err)
	}

	// MarshalBinary never fails for keys from GenerateKeyPair
	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()

	return &KEMPair{
		PublicKey:  NewFromBytes(AlgMLKEM768, pubBytes),
		PrivateKey: NewFromBytes(AlgMLKEM768, privBytes),
		pub:        pub,
		priv:       priv,
	}, nil
}

// KEMPairFromStrings reconstructs a KEM pair from its two CryptoStrings.
func KEMPairFromStrings(public, private CryptoString) (*KEMPair, error) {
	if public.Prefix() != AlgMLKEM768 || private.Prefix() != AlgMLKEM768 {
		return nil, fmt.Errorf("%q/%q: %w", public.Prefix(), private.Prefix(),
			ErrUnsupportedAlgorithm)
	}
	pubRaw, err := public.RawData()
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	privRaw, err := private.RawData()
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(pubRaw) != MLKEMPublicKeySize || len(privRaw) != MLKEMPrivateKeySize {
		return nil, ErrInvalidKeySize
	}

	pair := &KEMPair{
		PublicKey:  public,
		PrivateKey: private,
		pub:        new(mlkem768.PublicKey),
		priv:       new(mlkem768.PrivateKey),
	}
	pair.pub.Unpack(pubRaw)
	if err := pair.priv.Unpack(privRaw); err != nil {
		return nil, fmt.Errorf("unpack private key: %w", err)
	}
	return pair, nil
}

// Encapsulate derives a fresh shared secret for the holder of the public
// half, returning the KEM ciphertext as a CryptoString alongside the secret.
func (p *KEMPair) Encapsulate() (CryptoString, []byte, error) {
	if p.pub == nil {
		return CryptoString{}, nil, ErrInvalidKeySize
	}
	ct := make([]byte, MLKEMCiphertextSize)
	shared := make([]byte, MLKEMSharedKeySize)
	p.pub.EncapsulateTo(ct, shared, nil)
	return NewFromBytes(AlgMLKEM768, ct), shared, nil
}

// Decapsulate recovers the shared secret from a KEM ciphertext.
func (p *KEMPair) Decapsulate(ciphertext CryptoString) ([]byte, error) {
	if p.priv == nil {
		return nil, ErrInvalidKeySize
	}
	if ciphertext.Prefix() != AlgMLKEM768 {
		return nil, fmt.Errorf("%q: %w", ciphertext.Prefix(), ErrUnsupportedAlgorithm)
	}
	ct, err := ciphertext.RawData()
	if err != nil {
		return nil, err
	}
	if len(ct) != MLKEMCiphertextSize {
		return nil, ErrInvalidKeySize
	}
	shared := make([]byte, MLKEMSharedKeySize)
	p.priv.DecapsulateTo(shared, ct)
	return shared, nil
}
