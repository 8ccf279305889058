package field

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Default is the name of the modulus used when none is configured.
const Default = "p128"

// Moduli is a map of registered prime moduli, keyed by their name.
var Moduli = make(map[string]*big.Int)

// Register registers a prime modulus so it can be looked up by name.
func Register(name string, p *big.Int) {
	if _, ok := Moduli[name]; ok {
		panic("modulus already registered: " + name)
	}
	Moduli[name] = new(big.Int).Set(p)
}

// Get retrieves a copy of a registered modulus, or nil.
func Get(name string) *big.Int {
	p, ok := Moduli[name]
	if !ok {
		return nil
	}
	return new(big.Int).Set(p)
}

// Parse resolves s either as a registered name or as a decimal literal.
func Parse(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if p := Get(s); p != nil {
		return p, nil
	}
	p, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("unknown modulus %q", s)
	}
	return p, nil
}

func init() {
	// 2^128 + 51, the smallest prime above 2^128.
	p128, _ := new(big.Int).SetString("340282366920938463463374607431768211507", 10)
	Register(Default, p128)

	m521 := new(big.Int).Lsh(big.NewInt(1), 521)
	Register("m521", m521.Sub(m521, big.NewInt(1)))

	Register("secp256k1", secp256k1.S256().Params().N)
	for _, c := range []elliptic.Curve{elliptic.P256(), elliptic.P384(), elliptic.P521()} {
		Register(c.Params().Name, c.Params().N)
	}
}
