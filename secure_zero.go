package ffdh

import "runtime"

// secureZero overwrites b with zeros so that private exponents, shared
// secrets and KEM seeds do not outlive their use. Every function in this
// package that holds such material in a scratch buffer zeroes it with a
// deferred secureZero before returning.
func secureZero(b []byte) {
	clear(b)
	// Keep the compiler from treating the stores as dead
	runtime.KeepAlive(b)
}
