package cryptostring

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewHash_Algorithms(t *testing.T) {
	t.Parallel()
	data := []byte("The quick brown fox jumps over the lazy dog")

	tests := []struct {
		algorithm string
		size      int
	}{
		{HashBlake2b256, 32},
		{HashBlake2b512, 64},
		{HashSHA256, 32},
		{HashSHA3256, 32},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			h, err := NewHash(tt.algorithm, data)
			if err != nil {
				t.Fatalf("NewHash() error = %v", err)
			}
			if h.Prefix() != tt.algorithm {
				t.Errorf("Prefix() = %q, want %q", h.Prefix(), tt.algorithm)
			}
			raw, err := h.RawData()
			if err != nil {
				t.Fatalf("RawData() error = %v", err)
			}
			if len(raw) != tt.size {
				t.Errorf("digest size = %d, want %d", len(raw), tt.size)
			}
		})
	}
}

func TestNewHash_SHA256Vector(t *testing.T) {
	t.Parallel()
	// FIPS 180 test vector for "abc".
	want := []byte{
		0xba, 0x78, 0x16, 0xbf, 0x8f, 0x01, 0xcf, 0xea,
		0x41, 0x41, 0x40, 0xde, 0x5d, 0xae, 0x22, 0x23,
		0xb0, 0x03, 0x61, 0xa3, 0x96, 0x17, 0x7a, 0x9c,
		0xb4, 0x10, 0xff, 0x61, 0xf2, 0x00, 0x15, 0xad,
	}

	h, err := NewHash(HashSHA256, []byte("abc"))
	if err != nil {
		t.Fatalf("NewHash() error = %v", err)
	}
	raw, err := h.RawData()
	if err != nil {
		t.Fatalf("RawData() error = %v", err)
	}
	if !bytes.Equal(raw, want) {
		t.Errorf("SHA-256(abc) = %x, want %x", raw, want)
	}
}

func TestNewHash_Unsupported(t *testing.T) {
	t.Parallel()
	if _, err := NewHash("MD5", []byte("x")); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("NewHash(MD5) error = %v, want ErrUnsupportedAlgorithm", err)
	}
}

func TestCheckHash(t *testing.T) {
	t.Parallel()
	data := []byte("keycard entry contents")

	h, err := NewHash(HashBlake2b256, data)
	if err != nil {
		t.Fatalf("NewHash() error = %v", err)
	}

	match, err := CheckHash(h, data)
	if err != nil {
		t.Fatalf("CheckHash() error = %v", err)
	}
	if !match {
		t.Error("CheckHash() = false for matching data")
	}

	match, err = CheckHash(h, []byte("tampered contents"))
	if err != nil {
		t.Fatalf("CheckHash() error = %v", err)
	}
	if match {
		t.Error("CheckHash() = true for different data")
	}
}

func TestCheckHash_Errors(t *testing.T) {
	t.Parallel()
	if _, err := CheckHash(CryptoString{}, []byte("x")); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("CheckHash(invalid) error = %v, want ErrInvalidFormat", err)
	}

	// A well-formed string with a tag sumHash does not know.
	unknown := New("NOT-A-HASH:abc12")
	if _, err := CheckHash(unknown, []byte("x")); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("CheckHash(unknown tag) error = %v, want ErrUnsupportedAlgorithm", err)
	}
}
