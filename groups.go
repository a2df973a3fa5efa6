package ffdh

import (
	"fmt"
	"math/big"
	"sync"
)

// Safe primes from RFC 7919 (ffdhe*) and RFC 3526 (MODP group 14). Every
// group uses generator 2 and subgroup order q = (p-1)/2.
const (
	ffdhe2048Prime = "FFFFFFFFFFFFFFFFADF85458A2BB4A9AAFDC5620273D3CF1D8B9C583CE2D3695" +
		"A9E13641146433FBCC939DCE249B3EF97D2FE363630C75D8F681B202AEC4617A" +
		"D3DF1ED5D5FD65612433F51F5F066ED0856365553DED1AF3B557135E7F57C935" +
		"984F0C70E0E68B77E2A689DAF3EFE8721DF158A136ADE73530ACCA4F483A797A" +
		"BC0AB182B324FB61D108A94BB2C8E3FBB96ADAB760D7F4681D4F42A3DE394DF4" +
		"AE56EDE76372BB190B07A7C8EE0A6D709E02FCE1CDF7E2ECC03404CD28342F61" +
		"9172FE9CE98583FF8E4F1232EEF28183C3FE3B1B4C6FAD733BB5FCBC2EC22005" +
		"C58EF1837D1683B2C6F34A26C1B2EFFA886B423861285C97FFFFFFFFFFFFFFFF"
	ffdhe3072Prime = "FFFFFFFFFFFFFFFFADF85458A2BB4A9AAFDC5620273D3CF1D8B9C583CE2D3695" +
		"A9E13641146433FBCC939DCE249B3EF97D2FE363630C75D8F681B202AEC4617A" +
		"D3DF1ED5D5FD65612433F51F5F066ED0856365553DED1AF3B557135E7F57C935" +
		"984F0C70E0E68B77E2A689DAF3EFE8721DF158A136ADE73530ACCA4F483A797A" +
		"BC0AB182B324FB61D108A94BB2C8E3FBB96ADAB760D7F4681D4F42A3DE394DF4" +
		"AE56EDE76372BB190B07A7C8EE0A6D709E02FCE1CDF7E2ECC03404CD28342F61" +
		"9172FE9CE98583FF8E4F1232EEF28183C3FE3B1B4C6FAD733BB5FCBC2EC22005" +
		"C58EF1837D1683B2C6F34A26C1B2EFFA886B4238611FCFDCDE355B3B6519035B" +
		"BC34F4DEF99C023861B46FC9D6E6C9077AD91D2691F7F7EE598CB0FAC186D91C" +
		"AEFE130985139270B4130C93BC437944F4FD4452E2D74DD364F2E21E71F54BFF" +
		"5CAE82AB9C9DF69EE86D2BC522363A0DABC521979B0DEADA1DBF9A42D5C4484E" +
		"0ABCD06BFA53DDEF3C1B20EE3FD59D7C25E41D2B66C62E37FFFFFFFFFFFFFFFF"
	ffdhe4096Prime = "FFFFFFFFFFFFFFFFADF85458A2BB4A9AAFDC5620273D3CF1D8B9C583CE2D3695" +
		"A9E13641146433FBCC939DCE249B3EF97D2FE363630C75D8F681B202AEC4617A" +
		"D3DF1ED5D5FD65612433F51F5F066ED0856365553DED1AF3B557135E7F57C935" +
		"984F0C70E0E68B77E2A689DAF3EFE8721DF158A136ADE73530ACCA4F483A797A" +
		"BC0AB182B324FB61D108A94BB2C8E3FBB96ADAB760D7F4681D4F42A3DE394DF4" +
		"AE56EDE76372BB190B07A7C8EE0A6D709E02FCE1CDF7E2ECC03404CD28342F61" +
		"9172FE9CE98583FF8E4F1232EEF28183C3FE3B1B4C6FAD733BB5FCBC2EC22005" +
		"C58EF1837D1683B2C6F34A26C1B2EFFA886B4238611FCFDCDE355B3B6519035B" +
		"BC34F4DEF99C023861B46FC9D6E6C9077AD91D2691F7F7EE598CB0FAC186D91C" +
		"AEFE130985139270B4130C93BC437944F4FD4452E2D74DD364F2E21E71F54BFF" +
		"5CAE82AB9C9DF69EE86D2BC522363A0DABC521979B0DEADA1DBF9A42D5C4484E" +
		"0ABCD06BFA53DDEF3C1B20EE3FD59D7C25E41D2B669E1EF16E6F52C3164DF4FB" +
		"7930E9E4E58857B6AC7D5F42D69F6D187763CF1D5503400487F55BA57E31CC7A" +
		"7135C886EFB4318AED6A1E012D9E6832A907600A918130C46DC778F971AD0038" +
		"092999A333CB8B7A1A1DB93D7140003C2A4ECEA9F98D0ACC0A8291CDCEC97DCF" +
		"8EC9B55A7F88A46B4DB5A851F44182E1C68A007E5E655F6AFFFFFFFFFFFFFFFF"
	modp2048Prime = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD129024E088A67CC74" +
		"020BBEA63B139B22514A08798E3404DDEF9519B3CD3A431B302B0A6DF25F1437" +
		"4FE1356D6D51C245E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
		"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3DC2007CB8A163BF05" +
		"98DA48361C55D39A69163FA8FD24CF5F83655D23DCA3AD961C62F356208552BB" +
		"9ED529077096966D670C354E4ABC9804F1746C08CA18217C32905E462E36CE3B" +
		"E39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9DE2BCBF695581718" +
		"3995497CEA956AE515D2261898FA051015728E5A8AACAA68FFFFFFFFFFFFFFFF"
)

func newSafePrimeGroup(name, prime string) *Parameters {
	p, ok := new(big.Int).SetString(prime, 16)
	if !ok {
		panic("ffdh: invalid built-in prime for " + name)
	}
	q := new(big.Int).Rsh(p, 1)
	return &Parameters{P: p, G: big.NewInt(2), Q: q, Name: name}
}

var (
	ffdhe2048 = sync.OnceValue(func() *Parameters { return newSafePrimeGroup("ffdhe2048", ffdhe2048Prime) })
	ffdhe3072 = sync.OnceValue(func() *Parameters { return newSafePrimeGroup("ffdhe3072", ffdhe3072Prime) })
	ffdhe4096 = sync.OnceValue(func() *Parameters { return newSafePrimeGroup("ffdhe4096", ffdhe4096Prime) })
	modp2048  = sync.OnceValue(func() *Parameters { return newSafePrimeGroup("modp2048", modp2048Prime) })
)

// FFDHE2048 returns the RFC 7919 ffdhe2048 group. The returned Parameters
// are shared and must not be modified.
func FFDHE2048() *Parameters { return ffdhe2048() }

// FFDHE3072 returns the RFC 7919 ffdhe3072 group. The returned Parameters
// are shared and must not be modified.
func FFDHE3072() *Parameters { return ffdhe3072() }

// FFDHE4096 returns the RFC 7919 ffdhe4096 group. The returned Parameters
// are shared and must not be modified.
func FFDHE4096() *Parameters { return ffdhe4096() }

// MODP2048 returns the RFC 3526 2048-bit MODP group (group 14). The returned
// Parameters are shared and must not be modified.
func MODP2048() *Parameters { return modp2048() }

// GroupByName returns a named group: "ffdhe2048", "ffdhe3072", "ffdhe4096"
// or "modp2048".
func GroupByName(name string) (*Parameters, error) {
	switch name {
	case "ffdhe2048":
		return FFDHE2048(), nil
	case "ffdhe3072":
		return FFDHE3072(), nil
	case "ffdhe4096":
		return FFDHE4096(), nil
	case "modp2048":
		return MODP2048(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
}
