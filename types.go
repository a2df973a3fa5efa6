package ffdh

import (
	"hash"
	"io"
	"math/big"
	"sync"

	"filippo.io/bigmod"
)

// Parameters describes a finite-field Diffie-Hellman group: a prime modulus
// P, a generator G and, optionally, the order Q of the subgroup generated by
// G. Parameters must not be modified once they have been used in a key
// agreement; the Montgomery form of P is computed on first use and cached.
type Parameters struct {
	// P is the prime modulus.
	P *big.Int

	// G is the generator.
	G *big.Int

	// Q is the order of the subgroup generated by G. If nil, peer values
	// are only range checked and private exponents are drawn below P-1.
	Q *big.Int

	// PrivateLength is the optional PKCS#3 privateValueLength, in bits. It
	// is only consulted by key generation when Q is nil.
	PrivateLength int

	// Name is the registered name of the group, empty for custom groups.
	Name string

	mont    sync.Once
	mod     *bigmod.Modulus
	modErr  error
	pMinus1 []byte // P-1, Size() bytes
}

// A KEMKey is a keypair used for ML-KEM key encapsulation.
type KEMKey struct {
	Private []byte
	Public  []byte
}

// HashFunc names a hash function usable for hashed key computation and key
// derivation.
type HashFunc interface {
	// Hash returns a hash state.
	Hash() hash.Hash

	// HashName is the name of the hash function.
	HashName() string
}

// KEMFunc implements a Key Encapsulation Mechanism (KEM) for post-quantum cryptography.
// Unlike DH, KEM uses encapsulation (public key -> ciphertext + shared secret)
// and decapsulation (private key + ciphertext -> shared secret).
type KEMFunc interface {
	// GenerateKeypair generates a new KEM keypair using random as a source of entropy.
	GenerateKeypair(random io.Reader) (KEMKey, error)

	// Encapsulate generates a shared secret and encapsulates it for the given public key.
	// Returns the ciphertext and the shared secret.
	Encapsulate(pubkey []byte, random io.Reader) (ciphertext, sharedSecret []byte, err error)

	// Decapsulate recovers the shared secret from the ciphertext using the private key.
	Decapsulate(privkey, ciphertext []byte) (sharedSecret []byte, err error)

	// PublicKeyLen returns the length in bytes of KEM public keys.
	PublicKeyLen() int

	// PrivateKeyLen returns the length in bytes of KEM private keys.
	PrivateKeyLen() int

	// CiphertextLen returns the length in bytes of KEM ciphertexts.
	CiphertextLen() int

	// SharedSecretLen returns the length in bytes of KEM shared secrets.
	SharedSecretLen() int

	// KEMName returns the name of the KEM algorithm (e.g., "MLKEM768").
	KEMName() string
}
