package ffdh

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"testing"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

func TestComputeKeyHashedKnownAnswer(t *testing.T) {
	k := katKey(t)
	defer k.Destroy()

	out := make([]byte, 32)
	n, err := ComputeKeyHashed(out, mustHex(t, katPeer), k, HashSHA256)
	if err != nil {
		t.Fatalf("ComputeKeyHashed failed: %v", err)
	}
	if n != 32 {
		t.Errorf("Digest length: got %d, want 32", n)
	}
	want := "7b708008a797404d29c33a411a0f35ed1a5650836d35e0a018db902775e8ea0b"
	if hex.EncodeToString(out) != want {
		t.Errorf("Digest mismatch:\ngot  %x\nwant %s", out, want)
	}
}

func TestComputeKeyHashedFunctions(t *testing.T) {
	k := katKey(t)
	defer k.Destroy()
	z := mustHex(t, katShared)

	sha512Sum := sha512.Sum512(z)
	sha3Sum := sha3.Sum256(z)
	blakeSum := blake2b.Sum256(z)

	testCases := []struct {
		h    HashFunc
		name string
		want []byte
	}{
		{HashSHA512, "SHA512", sha512Sum[:]},
		{HashSHA3256, "SHA3-256", sha3Sum[:]},
		{HashBLAKE2b256, "BLAKE2b-256", blakeSum[:]},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.h.HashName() != tc.name {
				t.Errorf("HashName: got %q, want %q", tc.h.HashName(), tc.name)
			}
			out := make([]byte, 64)
			n, err := ComputeKeyHashed(out, mustHex(t, katPeer), k, tc.h)
			if err != nil {
				t.Fatalf("ComputeKeyHashed failed: %v", err)
			}
			if !bytes.Equal(out[:n], tc.want) {
				t.Errorf("Digest mismatch for %s", tc.name)
			}
		})
	}
}

func TestComputeKeyHashedErrors(t *testing.T) {
	k := katKey(t)
	defer k.Destroy()

	out := bytes.Repeat([]byte{0x11}, 31)
	if _, err := ComputeKeyHashed(out, mustHex(t, katPeer), k, HashSHA256); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("Expected ErrBufferTooSmall, got %v", err)
	}
	if !bytes.Equal(out, bytes.Repeat([]byte{0x11}, 31)) {
		t.Error("Output buffer was modified on error")
	}

	out = make([]byte, 32)
	if _, err := ComputeKeyHashed(out, []byte{1}, k, HashSHA256); !errors.Is(err, ErrInvalidPeerValue) {
		t.Errorf("Expected ErrInvalidPeerValue, got %v", err)
	}
}

func TestNilHashFunc(t *testing.T) {
	k := katKey(t)
	defer k.Destroy()

	out := make([]byte, 64)
	if _, err := ComputeKeyHashed(out, mustHex(t, katPeer), k, nil); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("ComputeKeyHashed: expected ErrInvalidParameters, got %v", err)
	}
	if !bytes.Equal(out, make([]byte, 64)) {
		t.Error("Output buffer was modified on error")
	}
	if _, err := DeriveKey(nil, mustHex(t, katShared), nil, nil, 32); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("DeriveKey: expected ErrInvalidParameters, got %v", err)
	}
}

// RFC 5869, test case 1.
func TestDeriveKeyRFC5869(t *testing.T) {
	ikm := bytes.Repeat([]byte{0x0b}, 22)
	salt := mustHex(t, "000102030405060708090a0b0c")
	info := mustHex(t, "f0f1f2f3f4f5f6f7f8f9")
	want := "3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865"

	okm, err := DeriveKey(HashSHA256, ikm, salt, info, 42)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if hex.EncodeToString(okm) != want {
		t.Errorf("OKM mismatch:\ngot  %x\nwant %s", okm, want)
	}
}

func TestDeriveKeyLength(t *testing.T) {
	secret := mustHex(t, katShared)
	for _, length := range []int{0, -1, 255*32 + 1} {
		if _, err := DeriveKey(HashSHA256, secret, nil, nil, length); err == nil {
			t.Errorf("Expected error for length %d", length)
		}
	}
	okm, err := DeriveKey(HashSHA256, secret, nil, nil, 255*32)
	if err != nil {
		t.Fatalf("DeriveKey at maximum length failed: %v", err)
	}
	if len(okm) != 255*32 {
		t.Errorf("OKM length: got %d, want %d", len(okm), 255*32)
	}
}
