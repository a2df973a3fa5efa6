package ffdh

import (
	"crypto/subtle"
	"fmt"
	"math/big"

	"filippo.io/bigmod"
)

var (
	bigOne   = big.NewInt(1)
	bigThree = big.NewInt(3)
)

// Size returns the length in bytes of P. Every padded secret and every
// public value produced by this package is exactly Size bytes long.
func (p *Parameters) Size() int {
	return (p.P.BitLen() + 7) / 8
}

// PrivateKeySize returns the fixed width of an encoded private exponent: the
// byte length of Q when it is known, of P otherwise.
func (p *Parameters) PrivateKeySize() int {
	if p.Q != nil {
		return (p.Q.BitLen() + 7) / 8
	}
	return p.Size()
}

// checkFast performs the inexpensive sanity checks that every key agreement
// runs before touching the modulus.
func (p *Parameters) checkFast() error {
	if p == nil || p.P == nil || p.G == nil {
		return fmt.Errorf("%w: missing modulus or generator", ErrInvalidParameters)
	}
	if p.P.Cmp(bigThree) < 0 || p.P.Bit(0) == 0 {
		return fmt.Errorf("%w: modulus must be odd and at least 3", ErrInvalidParameters)
	}
	if p.P.BitLen() > MaxModulusBits {
		return ErrModulusTooLarge
	}
	if p.Q != nil && (p.Q.Cmp(bigOne) <= 0 || p.Q.Cmp(p.P) > 0) {
		return fmt.Errorf("%w: subgroup order out of range", ErrInvalidParameters)
	}
	if p.G.Sign() <= 0 || p.G.Cmp(p.P) >= 0 {
		return fmt.Errorf("%w: generator out of range", ErrInvalidParameters)
	}
	return nil
}

// modulus returns the cached Montgomery modulus for P, computing it and the
// fixed-width encoding of P-1 on first use. Q is not cached: callers may set
// it after the modulus has been built.
func (p *Parameters) modulus() (*bigmod.Modulus, error) {
	p.mont.Do(func() {
		p.mod, p.modErr = bigmod.NewModulusFromBig(p.P)
		if p.modErr != nil {
			return
		}
		pm1 := new(big.Int).Sub(p.P, bigOne)
		p.pMinus1 = pm1.FillBytes(make([]byte, p.Size()))
	})
	if p.modErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrArithmetic, p.modErr)
	}
	return p.mod, nil
}

// orderBytes returns Q encoded at PrivateKeySize() bytes. Q must be set.
func (p *Parameters) orderBytes() []byte {
	return p.Q.FillBytes(make([]byte, p.PrivateKeySize()))
}

// oneBytes returns the Size-byte encoding of 1.
func oneBytes(size int) []byte {
	b := make([]byte, size)
	b[size-1] = 1
	return b
}

// checkPublicValue validates a public value received from a peer and returns
// it reduced into Montgomery-ready form. The value must satisfy 1 < y < P-1
// and, when Q is known, y^Q = 1 mod P.
func (p *Parameters) checkPublicValue(m *bigmod.Modulus, peer []byte) (*bigmod.Nat, error) {
	y := new(big.Int).SetBytes(peer)
	if y.Cmp(bigOne) <= 0 {
		return nil, fmt.Errorf("%w: value too small", ErrInvalidPeerValue)
	}
	pm1 := new(big.Int).Sub(p.P, bigOne)
	if y.Cmp(pm1) >= 0 {
		return nil, fmt.Errorf("%w: value too large", ErrInvalidPeerValue)
	}

	n, err := bigmod.NewNat().SetBytes(y.FillBytes(make([]byte, p.Size())), m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeerValue, err)
	}
	if p.Q != nil {
		r := bigmod.NewNat().Exp(n, p.orderBytes(), m)
		if subtle.ConstantTimeCompare(r.Bytes(m), oneBytes(p.Size())) != 1 {
			return nil, fmt.Errorf("%w: not in the order-q subgroup", ErrInvalidPeerValue)
		}
	}
	return n, nil
}

// checkPrivateLength reports whether PrivateLength leaves room for a
// PrivateLength-bit exponent with its top bit set below P-1.
func (p *Parameters) checkPrivateLength() error {
	if p.PrivateLength < 0 || p.PrivateLength >= p.P.BitLen()-1 {
		return fmt.Errorf("%w: private length out of range", ErrInvalidParameters)
	}
	return nil
}

// Check performs a full validation of the parameters: the fast range checks
// run by every key agreement, primality of P and Q, that Q divides P-1 and
// that G generates the order-Q subgroup. It is considerably more expensive
// than a key agreement and is intended for parameters received from
// untrusted sources.
func (p *Parameters) Check() error {
	if err := p.checkFast(); err != nil {
		return err
	}
	pm1 := new(big.Int).Sub(p.P, bigOne)
	if p.G.Cmp(bigOne) <= 0 || p.G.Cmp(pm1) >= 0 {
		return fmt.Errorf("%w: unsuitable generator", ErrInvalidParameters)
	}
	if !p.P.ProbablyPrime(20) {
		return fmt.Errorf("%w: modulus is not prime", ErrInvalidParameters)
	}
	if err := p.checkPrivateLength(); err != nil {
		return err
	}
	if p.Q == nil {
		return nil
	}

	if !p.Q.ProbablyPrime(20) {
		return fmt.Errorf("%w: subgroup order is not prime", ErrInvalidParameters)
	}
	if new(big.Int).Mod(pm1, p.Q).Sign() != 0 {
		return fmt.Errorf("%w: subgroup order does not divide p-1", ErrInvalidParameters)
	}
	m, err := p.modulus()
	if err != nil {
		return err
	}
	g, err := bigmod.NewNat().SetBytes(p.G.FillBytes(make([]byte, p.Size())), m)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	r := bigmod.NewNat().Exp(g, p.orderBytes(), m)
	if subtle.ConstantTimeCompare(r.Bytes(m), oneBytes(p.Size())) != 1 {
		return fmt.Errorf("%w: generator does not have order q", ErrInvalidParameters)
	}
	return nil
}
