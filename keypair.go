package ffdh

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"filippo.io/bigmod"
)

// A KeyPair is a private exponent together with its public value, bound to a
// set of group parameters. The private exponent is never exported; call
// Destroy once the key pair is no longer needed.
type KeyPair struct {
	params *Parameters
	x      []byte // private exponent, params.PrivateKeySize() bytes
	y      []byte // public value, params.Size() bytes
}

// NewKeyPair imports a big-endian private exponent and derives its public
// value. The exponent must lie in [1, Q-1] when Q is known, [1, P-2]
// otherwise. The input slice is not retained.
func NewKeyPair(params *Parameters, private []byte) (*KeyPair, error) {
	if err := params.checkFast(); err != nil {
		return nil, err
	}
	x := new(big.Int).SetBytes(private)
	if err := checkPrivate(params, x); err != nil {
		return nil, err
	}
	k, err := newKeyPair(params, x)
	x.SetInt64(0)
	return k, err
}

func checkPrivate(params *Parameters, x *big.Int) error {
	limit := params.Q
	if limit == nil {
		limit = new(big.Int).Sub(params.P, bigOne)
	}
	if x.Sign() <= 0 || x.Cmp(limit) >= 0 {
		return ErrInvalidPrivateKey
	}
	return nil
}

// newKeyPair encodes x at the fixed private width and computes G^x mod P.
// x must already be range checked.
func newKeyPair(params *Parameters, x *big.Int) (*KeyPair, error) {
	m, err := params.modulus()
	if err != nil {
		return nil, err
	}
	g, err := bigmod.NewNat().SetBytes(params.G.FillBytes(make([]byte, params.Size())), m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}

	k := &KeyPair{
		params: params,
		x:      x.FillBytes(make([]byte, params.PrivateKeySize())),
	}
	k.y = bigmod.NewNat().Exp(g, k.x, m).Bytes(m)
	return k, nil
}

// generateKey draws a private exponent from random. With Q known the
// exponent is uniform in [1, Q-1]; with a PrivateLength it is a random
// PrivateLength-bit value with the top bit set; otherwise it is uniform in
// [1, P-2].
func generateKey(random io.Reader, params *Parameters) (*KeyPair, error) {
	if err := params.checkFast(); err != nil {
		return nil, err
	}
	if random == nil {
		random = rand.Reader
	}

	var x *big.Int
	var err error
	switch {
	case params.Q != nil:
		x, err = rand.Int(random, new(big.Int).Sub(params.Q, bigOne))
		if err == nil {
			x.Add(x, bigOne)
		}
	case params.PrivateLength > 0:
		if err := params.checkPrivateLength(); err != nil {
			return nil, err
		}
		top := new(big.Int).Lsh(bigOne, uint(params.PrivateLength-1))
		x, err = rand.Int(random, top)
		if err == nil {
			x.Add(x, top)
		}
	default:
		x, err = rand.Int(random, new(big.Int).Sub(params.P, big.NewInt(2)))
		if err == nil {
			x.Add(x, bigOne)
		}
	}
	if err != nil {
		return nil, err
	}

	k, err := newKeyPair(params, x)
	x.SetInt64(0)
	return k, err
}

// Parameters returns the group the key pair belongs to.
func (k *KeyPair) Parameters() *Parameters {
	return k.params
}

// PublicKey returns a copy of the public value, left-padded to
// Parameters().Size() bytes.
func (k *KeyPair) PublicKey() []byte {
	if k == nil || k.y == nil {
		return nil
	}
	return append([]byte(nil), k.y...)
}

// Destroy zeroes the private exponent. The key pair can no longer be used
// for key agreement afterwards.
func (k *KeyPair) Destroy() {
	if k == nil || k.x == nil {
		return
	}
	secureZero(k.x)
	k.x = nil
}
