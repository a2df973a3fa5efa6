// Package ffdh implements finite-field Diffie-Hellman key agreement with a
// fixed-width ("padded") shared secret.
//
// Every shared secret is exactly the byte length of the prime modulus,
// computed with constant-time Montgomery exponentiation. Peer public values
// are validated before use: they must lie in [2, p-2] and, when the subgroup
// order q is known, belong to the order-q subgroup.
//
// Key agreement is guarded by a known-answer self-test. A Module holds the
// self-test state and runs the test once, before its first guarded
// operation. The package-level functions use the process-wide Default
// module. The self-test drives the same inner computation directly, so it
// never re-enters the guard.
package ffdh

import (
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
)

// A Module holds the self-test state for a set of FFDH operations. Its
// known-answer test runs at most once, on the first guarded call or on an
// explicit SelfTest call; the outcome is sticky for the lifetime of the
// Module. A Module is safe for concurrent use.
type Module struct {
	cfg    Config
	logger *slog.Logger

	once sync.Once
	err  error
	runs atomic.Int32
}

// Default is the process-wide Module used by the package-level functions.
var Default = NewModule(Config{})

// NewModule returns a Module configured by c. The self-test does not run
// until it is first needed.
func NewModule(c Config) *Module {
	m := &Module{cfg: c, logger: c.Logger}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	return m
}

// SelfTest runs the FFDH known-answer test if it has not run yet and returns
// its outcome. Concurrent callers block until the first run completes.
func (m *Module) SelfTest() error {
	m.once.Do(m.runSelfTest)
	return m.err
}

func (m *Module) runSelfTest() {
	m.runs.Add(1)
	kat := m.cfg.KnownAnswer
	if kat == nil {
		kat = DefaultKnownAnswer()
	}

	m.err = runKnownAnswer(kat)
	if m.err == nil {
		m.logger.Debug("ffdh self-test passed", "group", kat.Params.Name, "bits", kat.Params.P.BitLen())
		return
	}
	m.logger.Error("ffdh self-test failed", "group", kat.Params.Name, "error", m.err)
	if m.cfg.AbortOnFailure {
		panic(m.err.Error())
	}
}

func (m *Module) random() io.Reader {
	if m.cfg.Random != nil {
		return m.cfg.Random
	}
	return rand.Reader
}

// ComputeKeyPadded computes the shared secret between k and the peer's
// public value and writes it to out, left-padded with zeros to exactly
// k.Parameters().Size() bytes. It returns that size.
//
// out must be at least Size() bytes long, otherwise ErrBufferTooSmall is
// returned and out is not written. The peer value is validated and
// ErrInvalidPeerValue is returned for values outside [2, p-2], outside the
// order-q subgroup, or yielding a degenerate secret.
func (m *Module) ComputeKeyPadded(out, peer []byte, k *KeyPair) (int, error) {
	if err := m.SelfTest(); err != nil {
		return 0, err
	}
	return computeKeyPaddedNoSelfTest(out, peer, k)
}

// ComputeKey returns the shared secret between k and the peer's public value
// without padding: leading zero bytes are removed, so the length of the
// result depends on its magnitude. Prefer ComputeKeyPadded; the length of
// the unpadded secret leaks through any protocol that hashes or transmits it.
func (m *Module) ComputeKey(peer []byte, k *KeyPair) ([]byte, error) {
	z, err := m.paddedSecret(k, peer)
	if err != nil {
		return nil, err
	}
	defer secureZero(z)
	i := 0
	for i < len(z)-1 && z[i] == 0 {
		i++
	}
	return append([]byte(nil), z[i:]...), nil
}

// paddedSecret allocates a Size()-byte buffer and fills it through the
// guarded padded computation.
func (m *Module) paddedSecret(k *KeyPair, peer []byte) ([]byte, error) {
	if k == nil || k.x == nil {
		return nil, ErrNoPrivateValue
	}
	if err := k.params.checkFast(); err != nil {
		return nil, err
	}
	z := make([]byte, k.params.Size())
	if _, err := m.ComputeKeyPadded(z, peer, k); err != nil {
		return nil, err
	}
	return z, nil
}

// GenerateKey generates a new key pair in params using the Module's random
// source.
func (m *Module) GenerateKey(params *Parameters) (*KeyPair, error) {
	if err := m.SelfTest(); err != nil {
		return nil, err
	}
	k, err := generateKey(m.random(), params)
	if err != nil {
		return nil, fmt.Errorf("ffdh: generating key: %w", err)
	}
	return k, nil
}

// ComputeKeyPadded calls Default.ComputeKeyPadded.
func ComputeKeyPadded(out, peer []byte, k *KeyPair) (int, error) {
	return Default.ComputeKeyPadded(out, peer, k)
}

// ComputeKey calls Default.ComputeKey.
func ComputeKey(peer []byte, k *KeyPair) ([]byte, error) {
	return Default.ComputeKey(peer, k)
}

// ComputeKeyHashed calls Default.ComputeKeyHashed.
func ComputeKeyHashed(out, peer []byte, k *KeyPair, h HashFunc) (int, error) {
	return Default.ComputeKeyHashed(out, peer, k, h)
}

// GenerateKey calls Default.GenerateKey.
func GenerateKey(params *Parameters) (*KeyPair, error) {
	return Default.GenerateKey(params)
}
