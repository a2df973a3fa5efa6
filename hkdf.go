package ffdh

// hkdf.go - Key derivation over padded FFDH shared secrets
//
// The raw shared secret Z is a group element, not a uniformly random key.
// DeriveKey runs it through HKDF (RFC 5869) before it is used as symmetric
// key material. The hybrid combiner in hybrid.go uses the same function.

import (
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey expands a shared secret into length bytes of key material with
// HKDF (RFC 5869) over h. The secret should be the padded output of
// ComputeKeyPadded: its fixed width keeps the derivation independent of the
// numeric magnitude of the secret.
func DeriveKey(h HashFunc, secret, salt, info []byte, length int) ([]byte, error) {
	if h == nil {
		return nil, fmt.Errorf("%w: no hash function", ErrInvalidParameters)
	}
	// HKDF-Expand produces at most 255 blocks of the hash output size
	if length <= 0 || length > 255*h.Hash().Size() {
		return nil, fmt.Errorf("ffdh: invalid HKDF output length %d", length)
	}

	// Extract and expand in one pass; the reader holds the PRK internally
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(h.Hash, secret, salt, info), out); err != nil {
		// Do not hand back partially derived key material
		secureZero(out)
		return nil, err
	}
	return out, nil
}
