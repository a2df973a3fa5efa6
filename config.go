package ffdh

import (
	"io"
	"log/slog"
)

// A Config provides the details necessary to construct a Module. It is never
// modified by this package, and can be reused.
type Config struct {
	// Random is the source for cryptographically appropriate random bytes
	// used by key generation. If nil, crypto/rand.Reader is used.
	Random io.Reader

	// Logger receives the outcome of the self-test. It never receives key
	// material. If nil, slog.Default() is used.
	Logger *slog.Logger

	// AbortOnFailure makes a failed self-test panic instead of returning
	// ErrSelfTestFailed from every guarded operation.
	AbortOnFailure bool

	// KnownAnswer overrides the built-in FFDH known-answer test. If nil,
	// the ffdhe2048 vector is used.
	KnownAnswer *KnownAnswer
}
