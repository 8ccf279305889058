package shamir

import (
	"math/big"
)

// Fraction is an exact rational number kept in lowest terms with a positive
// denominator. Use NewFraction or Rational.FromInt to build one. The zero
// value is 0.
type Fraction struct {
	num *big.Int
	den *big.Int
}

var (
	ratZero = big.NewInt(0)
	ratOne  = big.NewInt(1)
)

// parts returns num and den with nil read as 0/1. The results must not be
// modified.
func (f Fraction) parts() (num, den *big.Int) {
	num, den = f.num, f.den
	if num == nil {
		num = ratZero
	}
	if den == nil {
		den = ratOne
	}
	return
}

// NewFraction returns num/den reduced. A zero denominator is an error.
func NewFraction(num, den *big.Int) (Fraction, error) {
	if den.Sign() == 0 {
		return Fraction{}, &DivisionByZeroError{}
	}
	return reduce(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// reduce takes ownership of num and den; den must be non-zero.
func reduce(num, den *big.Int) Fraction {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, num, den)
	if g.Cmp(ratOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	return Fraction{num: num, den: den}
}

// Num returns a copy of the numerator.
func (f Fraction) Num() *big.Int {
	num, _ := f.parts()
	return new(big.Int).Set(num)
}

// Den returns a copy of the denominator.
func (f Fraction) Den() *big.Int {
	_, den := f.parts()
	return new(big.Int).Set(den)
}

// IsInt reports whether the denominator is 1.
func (f Fraction) IsInt() bool {
	_, den := f.parts()
	return den.Cmp(ratOne) == 0
}

// Add returns f + g.
func (f Fraction) Add(g Fraction) Fraction {
	fn, fd := f.parts()
	gn, gd := g.parts()
	num := new(big.Int).Mul(fn, gd)
	num.Add(num, new(big.Int).Mul(gn, fd))
	return reduce(num, new(big.Int).Mul(fd, gd))
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) Fraction { return f.Add(g.Neg()) }

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	num, den := f.parts()
	return Fraction{num: new(big.Int).Neg(num), den: new(big.Int).Set(den)}
}

// Mul returns f * g.
func (f Fraction) Mul(g Fraction) Fraction {
	fn, fd := f.parts()
	gn, gd := g.parts()
	return reduce(new(big.Int).Mul(fn, gn), new(big.Int).Mul(fd, gd))
}

// Inverse returns 1/f.
func (f Fraction) Inverse() (Fraction, error) {
	num, den := f.parts()
	return NewFraction(den, num)
}

func (f Fraction) String() string {
	num, den := f.parts()
	return num.String() + "/" + den.String()
}

// Rational interpolates over the rationals with no modulus. Its result is
// exact, and a non-integer result means the shares are inconsistent.
type Rational struct{}

var _ Arithmetic[Fraction] = Rational{}

func (Rational) FromInt(x *big.Int) Fraction {
	return Fraction{num: new(big.Int).Set(x), den: big.NewInt(1)}
}

func (Rational) Add(a, b Fraction) Fraction { return a.Add(b) }

func (Rational) Sub(a, b Fraction) Fraction { return a.Sub(b) }

func (Rational) Neg(a Fraction) Fraction { return a.Neg() }

func (Rational) Mul(a, b Fraction) Fraction { return a.Mul(b) }

func (Rational) Invert(a Fraction) (Fraction, error) { return a.Inverse() }

func (Rational) Finalize(a Fraction) (*big.Int, error) {
	if !a.IsInt() {
		return nil, &InconsistentSharesError{Num: a.Num(), Den: a.Den()}
	}
	return a.Num(), nil
}
