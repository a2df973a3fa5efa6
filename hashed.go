package ffdh

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

type hashSHA256 struct{}

func (hashSHA256) Hash() hash.Hash  { return sha256.New() }
func (hashSHA256) HashName() string { return "SHA256" }

type hashSHA512 struct{}

func (hashSHA512) Hash() hash.Hash  { return sha512.New() }
func (hashSHA512) HashName() string { return "SHA512" }

type hashSHA3256 struct{}

func (hashSHA3256) Hash() hash.Hash  { return sha3.New256() }
func (hashSHA3256) HashName() string { return "SHA3-256" }

type hashBLAKE2b256 struct{}

func (hashBLAKE2b256) Hash() hash.Hash {
	// Only a key longer than 64 bytes makes New256 fail.
	h, _ := blake2b.New256(nil)
	return h
}

func (hashBLAKE2b256) HashName() string { return "BLAKE2b-256" }

// Hash functions usable with ComputeKeyHashed and DeriveKey.
var (
	HashSHA256     HashFunc = hashSHA256{}
	HashSHA512     HashFunc = hashSHA512{}
	HashSHA3256    HashFunc = hashSHA3256{}
	HashBLAKE2b256 HashFunc = hashBLAKE2b256{}
)

// ComputeKeyHashed computes the padded shared secret between k and the peer's
// public value, hashes it with h and writes the digest to out. It returns the
// digest size. out must be at least that long, otherwise ErrBufferTooSmall
// is returned and out is not written. The padded secret itself is zeroed
// before returning.
func (m *Module) ComputeKeyHashed(out, peer []byte, k *KeyPair, h HashFunc) (int, error) {
	if h == nil {
		return 0, fmt.Errorf("%w: no hash function", ErrInvalidParameters)
	}
	d := h.Hash()
	if len(out) < d.Size() {
		return 0, ErrBufferTooSmall
	}
	z, err := m.paddedSecret(k, peer)
	if err != nil {
		return 0, err
	}
	defer secureZero(z)
	d.Write(z)
	return copy(out, d.Sum(nil)), nil
}
