package ffdh

// Hybrid key agreement combines a padded FFDH secret with an ML-KEM shared
// secret, so the result stays secret as long as either primitive holds:
//
//	secret = HKDF-SHA256(salt = "FFDH-HYBRID-V1", ikm = Z || ss_kem, info = context)
//
// The initiator knows the responder's FFDH public value and ML-KEM public
// key; it sends its own FFDH public value and the KEM ciphertext.

const hybridSalt = "FFDH-HYBRID-V1"

// A HybridKeyPair is an FFDH key pair together with an ML-KEM key pair.
type HybridKeyPair struct {
	DH  *KeyPair
	KEM KEMKey

	kem KEMFunc
}

// GenerateHybridKey generates an FFDH key pair in params and a KEM key pair
// for k, both from the Module's random source.
func (m *Module) GenerateHybridKey(params *Parameters, k KEMFunc) (*HybridKeyPair, error) {
	dh, err := m.GenerateKey(params)
	if err != nil {
		return nil, err
	}
	kk, err := k.GenerateKeypair(m.random())
	if err != nil {
		dh.Destroy()
		return nil, err
	}
	return &HybridKeyPair{DH: dh, KEM: kk, kem: k}, nil
}

// Destroy zeroes both private keys.
func (h *HybridKeyPair) Destroy() {
	h.DH.Destroy()
	secureZero(h.KEM.Private)
}

// HybridEncapsulate runs the initiator side: it agrees on an FFDH secret
// between local and peerDH, encapsulates a KEM secret to peerKEM, and returns
// the KEM ciphertext with the combined HybridSecretSize-byte secret.
func (m *Module) HybridEncapsulate(local *KeyPair, peerDH []byte, k KEMFunc, peerKEM []byte, context string) (ciphertext, secret []byte, err error) {
	z, err := m.paddedSecret(local, peerDH)
	if err != nil {
		return nil, nil, err
	}
	defer secureZero(z)

	// KEM half: fresh secret encapsulated to the responder's public key
	ct, ss, err := k.Encapsulate(peerKEM, m.random())
	if err != nil {
		return nil, nil, err
	}
	defer secureZero(ss)

	secret, err = hybridCombine(z, ss, context)
	if err != nil {
		return nil, nil, err
	}
	return ct, secret, nil
}

// HybridDecapsulate runs the responder side with the initiator's FFDH public
// value and KEM ciphertext, returning the same secret as HybridEncapsulate.
func (m *Module) HybridDecapsulate(h *HybridKeyPair, peerDH, ciphertext []byte, context string) ([]byte, error) {
	z, err := m.paddedSecret(h.DH, peerDH)
	if err != nil {
		return nil, err
	}
	defer secureZero(z)

	ss, err := h.kem.Decapsulate(h.KEM.Private, ciphertext)
	if err != nil {
		return nil, err
	}
	defer secureZero(ss)

	return hybridCombine(z, ss, context)
}

func hybridCombine(z, kemSecret []byte, context string) ([]byte, error) {
	// Z first: it is fixed width, so the split point in IKM never varies
	ikm := make([]byte, 0, len(z)+len(kemSecret))
	ikm = append(ikm, z...)
	ikm = append(ikm, kemSecret...)
	// Securely zero the concatenated input keying material
	defer secureZero(ikm)

	return DeriveKey(HashSHA256, ikm, []byte(hybridSalt), []byte(context), HybridSecretSize)
}
