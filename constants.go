package ffdh

import (
	"errors"
)

// MaxModulusBits is the largest prime modulus, in bits, accepted by any
// operation in this package.
const MaxModulusBits = 10000

// HybridSecretSize is the length of the secret produced by the hybrid
// FFDH+ML-KEM combiner.
const HybridSecretSize = 32

// ML-KEM sizes in bytes, from FIPS 203. The shared secret is 32 bytes at
// every level.
const (
	// NIST Security Level 1
	MLKEM512PublicKeySize    = 800
	MLKEM512PrivateKeySize   = 1632
	MLKEM512CiphertextSize   = 768
	MLKEM512SharedSecretSize = 32

	// NIST Security Level 3
	MLKEM768PublicKeySize    = 1184
	MLKEM768PrivateKeySize   = 2400
	MLKEM768CiphertextSize   = 1088
	MLKEM768SharedSecretSize = 32

	// NIST Security Level 5
	MLKEM1024PublicKeySize    = 1568
	MLKEM1024PrivateKeySize   = 3168
	MLKEM1024CiphertextSize   = 1568
	MLKEM1024SharedSecretSize = 32
)

// Key agreement errors. All of them are returned synchronously and may be
// wrapped with additional context; compare with errors.Is.
var (
	// ErrBufferTooSmall indicates that an output buffer cannot hold the full
	// fixed-width result. Nothing is written to the buffer.
	ErrBufferTooSmall = errors.New("ffdh: output buffer too small")

	// ErrInvalidPeerValue indicates that the peer's public value is outside
	// [2, p-2], is not in the order-q subgroup, or produced a degenerate
	// shared secret.
	ErrInvalidPeerValue = errors.New("ffdh: invalid peer public value")

	// ErrArithmetic indicates that the underlying modular arithmetic could
	// not be set up or completed.
	ErrArithmetic = errors.New("ffdh: arithmetic failure")

	// ErrInvalidParameters indicates malformed or inconsistent group parameters.
	ErrInvalidParameters = errors.New("ffdh: invalid parameters")

	// ErrModulusTooLarge indicates a prime modulus larger than MaxModulusBits.
	ErrModulusTooLarge = errors.New("ffdh: modulus too large")

	// ErrNoPrivateValue indicates a key pair without a private exponent.
	ErrNoPrivateValue = errors.New("ffdh: no private value")

	// ErrInvalidPrivateKey indicates a private exponent outside the valid range.
	ErrInvalidPrivateKey = errors.New("ffdh: invalid private key")

	// ErrSelfTestFailed is returned by every guarded operation of a Module
	// whose known-answer test did not pass.
	ErrSelfTestFailed = errors.New("ffdh: FFDH self-test failed")

	// ErrUnknownGroup indicates an unrecognised named group.
	ErrUnknownGroup = errors.New("ffdh: unknown group")
)

// ML-KEM errors.
var (
	// ErrInvalidKEMPublicKey indicates that a KEM public key has invalid format or length.
	ErrInvalidKEMPublicKey = errors.New("ffdh: invalid KEM public key")

	// ErrInvalidKEMPrivateKey indicates that a KEM private key has invalid format or length.
	ErrInvalidKEMPrivateKey = errors.New("ffdh: invalid KEM private key")

	// ErrInvalidKEMCiphertext indicates that a KEM ciphertext has invalid format or length.
	ErrInvalidKEMCiphertext = errors.New("ffdh: invalid KEM ciphertext")

	// ErrKEMDecapsulationFailed indicates that KEM decapsulation operation failed.
	// This can occur with malformed ciphertexts or key mismatches.
	ErrKEMDecapsulationFailed = errors.New("ffdh: KEM decapsulation failed")
)
