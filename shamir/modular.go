package shamir

import (
	"fmt"
	"math/big"

	"github.com/izouxv/goShamir/field"
)

const (
	// DefaultRounds is the number of Miller-Rabin rounds used for primality tests.
	DefaultRounds = 20
)

// DefaultMargin is added to the largest share value before searching for a
// dynamic modulus.
var DefaultMargin = big.NewInt(1000)

// Modular interpolates in the prime field of order p. Every element is kept
// in [0, p).
type Modular struct {
	p *big.Int
}

var _ Arithmetic[*big.Int] = (*Modular)(nil)

// NewModular returns a modular backend for the prime p.
func NewModular(p *big.Int) (*Modular, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 || !p.ProbablyPrime(DefaultRounds) {
		return nil, fmt.Errorf("%w: %v is not a prime", ErrInvalidModulus, p)
	}
	return &Modular{p: new(big.Int).Set(p)}, nil
}

// Modulus returns a copy of p.
func (m *Modular) Modulus() *big.Int { return new(big.Int).Set(m.p) }

func (m *Modular) FromInt(x *big.Int) *big.Int { return field.Reduce(m.p, x) }

func (m *Modular) Add(a, b *big.Int) *big.Int { return field.Add(m.p, a, b) }

func (m *Modular) Sub(a, b *big.Int) *big.Int { return field.Sub(m.p, a, b) }

func (m *Modular) Neg(a *big.Int) *big.Int { return field.Neg(m.p, a) }

func (m *Modular) Mul(a, b *big.Int) *big.Int { return field.Mul(m.p, a, b) }

func (m *Modular) Invert(a *big.Int) (*big.Int, error) {
	inv := field.Inverse(m.p, a)
	if inv == nil {
		return nil, &NonInvertibleError{Denominator: new(big.Int).Set(a), Modulus: m.Modulus()}
	}
	return inv, nil
}

func (m *Modular) Finalize(a *big.Int) (*big.Int, error) { return field.Reduce(m.p, a), nil }

// DynamicModulus returns the smallest probable prime strictly greater than
// the largest share value plus margin. A nil margin means DefaultMargin and
// rounds <= 0 means DefaultRounds. A negative margin is rejected with
// ErrInvalidModulus.
//
// The prime is chosen after seeing the data, so it need not be the field the
// shares were generated in. The recovered value is only the secret when the
// shares were produced modulo this same prime, or over the integers with a
// secret below it.
func DynamicModulus(shares []*Share, margin *big.Int, rounds int) (*big.Int, error) {
	if margin == nil {
		margin = DefaultMargin
	}
	if margin.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative margin %s", ErrInvalidModulus, margin)
	}
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	bound := new(big.Int).Add(MaxValue(shares), margin)
	return field.NextPrime(bound, rounds), nil
}
