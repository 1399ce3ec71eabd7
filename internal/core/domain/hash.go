package domain

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/fxamacker/cbor/v2"
	"go.trai.ch/zerr"
)

const (
	// SHA256Size is the byte length of a SHA-256 hash.
	SHA256Size = 32

	// MD5Size is the byte length of a legacy MD5 hash.
	MD5Size = 16
)

// SHA256Hash is a 32-byte SHA-256 digest. The zero value (nil) is the
// "hash not yet known" sentinel and is never valid.
type SHA256Hash []byte

// MD5Hash is a 16-byte MD5 digest kept only because the index format still
// publishes it. The zero value (nil) is the unknown sentinel.
type MD5Hash []byte

// NewSHA256Hash computes the SHA-256 digest of content.
func NewSHA256Hash(content []byte) SHA256Hash {
	sum := sha256.Sum256(content)
	return SHA256Hash(sum[:])
}

// ParseSHA256Hash decodes a lowercase or uppercase hex string into a hash.
// It fails on non-hex characters, odd input length, or any decoded length
// other than 32 bytes.
func ParseSHA256Hash(s string) (SHA256Hash, error) {
	b, err := parseHexDigest(s, SHA256Size)
	if err != nil {
		return nil, err
	}
	return SHA256Hash(b), nil
}

// ParseMD5Hash decodes a hex string into an MD5 hash, rejecting any input
// whose decoded length is not 16 bytes.
func ParseMD5Hash(s string) (MD5Hash, error) {
	b, err := parseHexDigest(s, MD5Size)
	if err != nil {
		return nil, err
	}
	return MD5Hash(b), nil
}

func parseHexDigest(s string, size int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrMalformedHash.Error()), "input", s)
	}
	if len(b) != size {
		return nil, zerr.With(zerr.With(ErrMalformedHash, "input", s), "decoded_length", len(b))
	}
	return b, nil
}

// Valid reports whether the hash has its full expected length. The empty
// sentinel is invalid.
func (h SHA256Hash) Valid() bool { return len(h) == SHA256Size }

// Valid reports whether the hash has its full expected length.
func (h MD5Hash) Valid() bool { return len(h) == MD5Size }

// String returns the canonical lowercase hex form, or "" for the sentinel.
func (h SHA256Hash) String() string { return hex.EncodeToString(h) }

// String returns the canonical lowercase hex form, or "" for the sentinel.
func (h MD5Hash) String() string { return hex.EncodeToString(h) }

// Equal reports whether two hashes hold identical bytes.
func (h SHA256Hash) Equal(o SHA256Hash) bool {
	if len(h) != len(o) {
		return false
	}
	for i := range h {
		if h[i] != o[i] {
			return false
		}
	}
	return true
}

// UnmarshalCBOR decodes a persisted hash and fails fast on any length other
// than 32 bytes. Truncated or padded values must never round-trip silently.
func (h *SHA256Hash) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return zerr.Wrap(err, ErrMalformedHash.Error())
	}
	if len(b) != SHA256Size {
		return zerr.With(zerr.With(ErrMalformedHash, "decoded_length", len(b)), "expected_length", SHA256Size)
	}
	*h = b
	return nil
}

// UnmarshalCBOR decodes a persisted MD5 hash, rejecting any length other
// than 16 bytes.
func (h *MD5Hash) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return zerr.Wrap(err, ErrMalformedHash.Error())
	}
	if len(b) != MD5Size {
		return zerr.With(zerr.With(ErrMalformedHash, "decoded_length", len(b)), "expected_length", MD5Size)
	}
	*h = b
	return nil
}
