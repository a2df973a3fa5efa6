package ffdh

import (
	"encoding/pem"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

const pemTypeDHParameters = "DH PARAMETERS"

// ParseParameters parses a DER-encoded PKCS#3 DHParameter structure:
//
//	DHParameter ::= SEQUENCE {
//	    prime              INTEGER, -- p
//	    base               INTEGER, -- g
//	    privateValueLength INTEGER OPTIONAL }
//
// The result carries no subgroup order; set Q before use if it is known.
// Only the fast range checks are applied; call Check for full validation.
func ParseParameters(der []byte) (*Parameters, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	p, g := new(big.Int), new(big.Int)
	if !input.ReadASN1(&seq, asn1.SEQUENCE) || !input.Empty() ||
		!seq.ReadASN1Integer(p) || !seq.ReadASN1Integer(g) {
		return nil, fmt.Errorf("%w: malformed DHParameter", ErrInvalidParameters)
	}

	params := &Parameters{P: p, G: g}
	if !seq.Empty() {
		var length int64
		if !seq.ReadASN1Integer(&length) || !seq.Empty() {
			return nil, fmt.Errorf("%w: malformed privateValueLength", ErrInvalidParameters)
		}
		if length < 0 || length > MaxModulusBits {
			return nil, fmt.Errorf("%w: privateValueLength out of range", ErrInvalidParameters)
		}
		params.PrivateLength = int(length)
	}
	if err := params.checkFast(); err != nil {
		return nil, err
	}
	return params, nil
}

// MarshalBinary encodes the parameters as a DER PKCS#3 DHParameter. Q is not
// part of the encoding.
func (p *Parameters) MarshalBinary() ([]byte, error) {
	if err := p.checkFast(); err != nil {
		return nil, err
	}
	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(p.P)
		b.AddASN1BigInt(p.G)
		if p.PrivateLength > 0 {
			b.AddASN1Int64(int64(p.PrivateLength))
		}
	})
	return b.Bytes()
}

// ParseParametersPEM parses the first "DH PARAMETERS" PEM block in data.
func ParseParametersPEM(data []byte) (*Parameters, error) {
	for {
		block, rest := pem.Decode(data)
		if block == nil {
			return nil, fmt.Errorf("%w: no %s PEM block found", ErrInvalidParameters, pemTypeDHParameters)
		}
		if block.Type == pemTypeDHParameters {
			return ParseParameters(block.Bytes)
		}
		data = rest
	}
}

// MarshalPEM encodes the parameters as a "DH PARAMETERS" PEM block.
func (p *Parameters) MarshalPEM() ([]byte, error) {
	der, err := p.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemTypeDHParameters, Bytes: der}), nil
}
