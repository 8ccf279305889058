package field

import (
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Reduce returns a mod p in [0, p).
func Reduce(p, a *big.Int) *big.Int {
	return new(big.Int).Mod(a, p)
}

func Add(p, a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Add(a, b)
	res.Mod(res, p)
	return
}

func Sub(p, a, b *big.Int) (res *big.Int) {
	res = new(big.Int)
	res.Sub(a, b)
	res.Mod(res, p)
	return
}

func Mul(p, a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Mul(a, b)
	res.Mod(res, p)
	return
}

func Neg(p, a *big.Int) (res *big.Int) {
	res = new(big.Int).Neg(a)
	res.Mod(res, p)
	return
}

// Inverse returns a^-1 mod p, or nil when gcd(a, p) != 1.
func Inverse(p, a *big.Int) *big.Int {
	r := Reduce(p, a)
	if r.Sign() == 0 {
		return nil
	}
	return new(big.Int).ModInverse(r, p)
}

// NextPrime returns the smallest probable prime strictly greater than n,
// using rounds Miller-Rabin iterations per candidate.
func NextPrime(n *big.Int, rounds int) *big.Int {
	c := new(big.Int).Add(n, one)
	if c.Cmp(two) <= 0 {
		return new(big.Int).Set(two)
	}
	if c.Bit(0) == 0 {
		c.Add(c, one)
	}
	for !c.ProbablyPrime(rounds) {
		c.Add(c, two)
	}
	return c
}
