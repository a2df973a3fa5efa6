package ffdh

// pq_kem.go - ML-KEM key encapsulation for hybrid key agreement
//
// This file wraps Cloudflare CIRCL's ML-KEM (NIST FIPS 203) schemes in the
// KEMFunc interface from types.go. hybrid.go pairs one of them with a padded
// FFDH secret.
//
// Randomness is read from the caller's io.Reader into a seed and handed to
// CIRCL's deterministic entry points, so a fixed reader reproduces keys and
// ciphertexts exactly. Seeds are zeroed as soon as they have been consumed.

import (
	"crypto/rand"
	"io"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"
	"github.com/cloudflare/circl/kem/mlkem/mlkem512"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
)

// mlkem adapts a CIRCL ML-KEM scheme to KEMFunc.
type mlkem struct {
	scheme kem.Scheme
	name   string
}

// GenerateKeypair generates a new KEM keypair. If rng is nil,
// crypto/rand.Reader is used.
func (m mlkem) GenerateKeypair(rng io.Reader) (KEMKey, error) {
	if rng == nil {
		rng = rand.Reader
	}
	// Draw the key generation seed from the caller's reader
	seed := make([]byte, m.scheme.SeedSize())
	defer secureZero(seed)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return KEMKey{}, err
	}

	// Derive the keypair from the seed
	pub, priv := m.scheme.DeriveKeyPair(seed)
	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return KEMKey{}, err
	}
	privBytes, err := priv.MarshalBinary()
	if err != nil {
		secureZero(pubBytes) // Clean up on error
		return KEMKey{}, err
	}
	return KEMKey{Public: pubBytes, Private: privBytes}, nil
}

// Encapsulate generates a shared secret and encapsulates it for the given
// public key. The caller must zero the shared secret after use.
func (m mlkem) Encapsulate(pubkey []byte, rng io.Reader) (ciphertext, sharedSecret []byte, err error) {
	if rng == nil {
		rng = rand.Reader
	}
	// Validate public key length before unmarshalling
	if len(pubkey) != m.scheme.PublicKeySize() {
		return nil, nil, ErrInvalidKEMPublicKey
	}
	pub, err := m.scheme.UnmarshalBinaryPublicKey(pubkey)
	if err != nil {
		return nil, nil, ErrInvalidKEMPublicKey
	}

	// Encapsulation seed; zeroed once the ciphertext has been produced
	seed := make([]byte, m.scheme.EncapsulationSeedSize())
	defer secureZero(seed)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, nil, err
	}
	return m.scheme.EncapsulateDeterministically(pub, seed)
}

// Decapsulate recovers the shared secret from the ciphertext using the
// private key. The caller must zero the shared secret after use.
func (m mlkem) Decapsulate(privkey, ciphertext []byte) ([]byte, error) {
	if len(privkey) != m.scheme.PrivateKeySize() {
		return nil, ErrInvalidKEMPrivateKey
	}
	if len(ciphertext) != m.scheme.CiphertextSize() {
		return nil, ErrInvalidKEMCiphertext
	}
	priv, err := m.scheme.UnmarshalBinaryPrivateKey(privkey)
	if err != nil {
		return nil, ErrInvalidKEMPrivateKey
	}
	// A tampered ciphertext does not fail here: ML-KEM's implicit rejection
	// returns an unrelated secret instead.
	ss, err := m.scheme.Decapsulate(priv, ciphertext)
	if err != nil {
		return nil, ErrKEMDecapsulationFailed
	}
	return ss, nil
}

func (m mlkem) PublicKeyLen() int    { return m.scheme.PublicKeySize() }
func (m mlkem) PrivateKeyLen() int   { return m.scheme.PrivateKeySize() }
func (m mlkem) CiphertextLen() int   { return m.scheme.CiphertextSize() }
func (m mlkem) SharedSecretLen() int { return m.scheme.SharedKeySize() }
func (m mlkem) KEMName() string      { return m.name }

// ML-KEM instances for hybrid key agreement.
var (
	// KEMMLKEM512 provides NIST Security Level 1.
	KEMMLKEM512 KEMFunc = mlkem{scheme: mlkem512.Scheme(), name: "MLKEM512"}

	// KEMMLKEM768 provides NIST Security Level 3 and is the recommended choice.
	KEMMLKEM768 KEMFunc = mlkem{scheme: mlkem768.Scheme(), name: "MLKEM768"}

	// KEMMLKEM1024 provides NIST Security Level 5.
	KEMMLKEM1024 KEMFunc = mlkem{scheme: mlkem1024.Scheme(), name: "MLKEM1024"}
)
