package ffdh

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// A KnownAnswer is a fixed FFDH test vector: a group, a private exponent, a
// peer public value and the padded shared secret they must produce.
type KnownAnswer struct {
	Params  *Parameters
	Private []byte
	Peer    []byte
	Shared  []byte
}

// ffdhe2048 with a 225-bit private exponent, the smallest allowed for a
// 2048-bit group.
const (
	katPrivate = "01a9c2a8d3f6e0b4c7d5a2e91f03b6c8d7e4f5a6b3c2d1e0f9a8b7c6d5"
	katPeer    = "9ee732915ba5906e7dccec9196b8db613317f6c1a7951add84b274cf92e7d434" +
		"8e490f6d62cc1fd6424877fb618277918f2e6293cdcfabcb53325475dcf8ed01" +
		"cec399c8b739a9ca53630626a5e9a1c713728cbcc523602bdcf5b14e67c29d79" +
		"50e75de5cf22b34cb12d629b028d03f322b02fad7dce3cf79a2e16c0477b9108" +
		"5ffc352645dcfc7429ba14ee739ea218640f951e5feb71ade7fc72fd912ac058" +
		"af645caa756f119723dfd45bc63fe2fbbffab097a6290d91fd21ac5d6ec4ad52" +
		"af181edaa8f5e7ad3f37c4bd0236a1461cd6543d34ea0771e3f2157c5d52f1c5" +
		"5e20e6c7cf33cbc247e6e0ffc1145e8ce32a2205970bafaaa04c93f56f145d21"
	katShared = "b10d1614040a7118836785dcfbe3fe73c1159c6e2e054313c719906086f16a89" +
		"8aeff2a9a0f7400ad1a0011e4454fd399e8173eb8bf46bb45778ca668b8da3d8" +
		"6bb7aca71cfbfce1b3a818696a66ab480bf947f84a5272bf7942f72ba12f8397" +
		"69c599c03052286c4f73a49dfb447fb1cd62c57c5b1ab38ea0c64cd92d41a0d8" +
		"4d35b00846c9d1a47ef0b7f01fd420c32bee9612c93f454ecf5ff5603031e4da" +
		"5e92615e94536b308e8a06487ab4f8795178838f9e80bc50c5e66c8de24cc001" +
		"691dd3794df0b07895ebd5b611e68c81e2a540dced86e7017b1eccd0701544b2" +
		"a5e51a80fc600220472d165cb48a8ca90f811a0e030e1699e71625b956b395e0"
)

// DefaultKnownAnswer returns the built-in FFDH known-answer vector over
// ffdhe2048. Each call returns fresh slices that the caller may modify.
func DefaultKnownAnswer() *KnownAnswer {
	return &KnownAnswer{
		Params:  FFDHE2048(),
		Private: mustDecodeHex(katPrivate),
		Peer:    mustDecodeHex(katPeer),
		Shared:  mustDecodeHex(katShared),
	}
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("ffdh: invalid built-in hex: " + err.Error())
	}
	return b
}

// runKnownAnswer checks the inner key computation against kat. It must only
// call unguarded routines: it runs inside the Module's once-guard.
func runKnownAnswer(kat *KnownAnswer) error {
	k, err := NewKeyPair(kat.Params, kat.Private)
	if err != nil {
		return fmt.Errorf("%w: importing test key: %v", ErrSelfTestFailed, err)
	}
	defer k.Destroy()

	out := make([]byte, kat.Params.Size())
	defer secureZero(out)
	n, err := computeKeyPaddedNoSelfTest(out, kat.Peer, k)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSelfTestFailed, err)
	}
	if n != len(kat.Shared) || subtle.ConstantTimeCompare(out[:n], kat.Shared) != 1 {
		return fmt.Errorf("%w: shared secret mismatch", ErrSelfTestFailed)
	}
	return nil
}
