package main

import (
	"bytes"
	"encoding/hex"
	"io"
)

// hexReader creates an io.Reader from a hex-encoded string.
func hexReader(s string) io.Reader {
	res, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return bytes.NewBuffer(res)
}
