package ffdh

import (
	"crypto/subtle"

	"filippo.io/bigmod"
)

// computeKeyPaddedNoSelfTest computes peer^x mod P for the key pair k and
// writes it to out as a big-endian value left-padded to exactly
// k.Parameters().Size() bytes. It returns the number of bytes written.
//
// It does not run the FFDH self-test: it is the routine the self-test itself
// exercises, and the one the guarded entry points delegate to once the
// self-test has passed. out is left untouched on every error path.
func computeKeyPaddedNoSelfTest(out, peer []byte, k *KeyPair) (int, error) {
	if k == nil || k.x == nil {
		return 0, ErrNoPrivateValue
	}
	params := k.params
	if err := params.checkFast(); err != nil {
		return 0, err
	}
	size := params.Size()
	if len(out) < size {
		return 0, ErrBufferTooSmall
	}

	m, err := params.modulus()
	if err != nil {
		return 0, err
	}
	y, err := params.checkPublicValue(m, peer)
	if err != nil {
		return 0, err
	}

	z := bigmod.NewNat().Exp(y, k.x, m).Bytes(m)
	defer secureZero(z)
	if len(z) != size {
		return 0, ErrArithmetic
	}

	// SP 800-56A rev3, section 5.7.1.1, step 2.
	degenerate := subtle.ConstantTimeCompare(z, oneBytes(size)) |
		subtle.ConstantTimeCompare(z, make([]byte, size)) |
		subtle.ConstantTimeCompare(z, params.pMinus1)
	if degenerate == 1 {
		return 0, ErrInvalidPeerValue
	}

	copy(out[:size], z)
	return size, nil
}
