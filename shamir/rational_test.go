package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frac(t *testing.T, num, den int64) Fraction {
	t.Helper()
	f, err := NewFraction(big.NewInt(num), big.NewInt(den))
	require.NoError(t, err)
	return f
}

func TestFractionNormalization(t *testing.T) {
	cases := []struct {
		num, den     int64
		wantN, wantD int64
	}{
		{6, 4, 3, 2},
		{-6, 4, -3, 2},
		{6, -4, -3, 2},
		{-6, -4, 3, 2},
		{0, -7, 0, 1},
		{5, 1, 5, 1},
		{21, 7, 3, 1},
	}
	for _, c := range cases {
		f := frac(t, c.num, c.den)
		assert.Equal(t, c.wantN, f.Num().Int64(), "%d/%d numerator", c.num, c.den)
		assert.Equal(t, c.wantD, f.Den().Int64(), "%d/%d denominator", c.num, c.den)
		g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(f.Num()), f.Den())
		assert.Equal(t, int64(1), g.Int64())
	}

	_, err := NewFraction(big.NewInt(1), big.NewInt(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestFractionArithmetic(t *testing.T) {
	sum := frac(t, 1, 2).Add(frac(t, 1, 3))
	assert.Equal(t, "5/6", sum.String())

	sum = frac(t, 1, 2).Add(frac(t, -1, 2))
	assert.Equal(t, "0/1", sum.String())
	assert.True(t, sum.IsInt())

	prod := frac(t, 2, 3).Mul(frac(t, 9, -4))
	assert.Equal(t, "-3/2", prod.String())

	inv, err := frac(t, -3, 2).Inverse()
	require.NoError(t, err)
	assert.Equal(t, "-2/3", inv.String())

	_, err = frac(t, 0, 5).Inverse()
	assert.ErrorIs(t, err, ErrDivisionByZero)

	// Operands are not modified.
	a := frac(t, 1, 2)
	_ = a.Mul(frac(t, 4, 1))
	assert.Equal(t, "1/2", a.String())
}

func TestFractionZeroValue(t *testing.T) {
	var zero Fraction
	assert.Equal(t, "0/1", zero.String())
	assert.True(t, zero.IsInt())
	assert.Equal(t, int64(0), zero.Num().Int64())
	assert.Equal(t, int64(1), zero.Den().Int64())

	assert.Equal(t, "1/2", zero.Add(frac(t, 1, 2)).String())
	assert.Equal(t, "1/2", frac(t, 1, 2).Add(zero).String())
	assert.Equal(t, "0/1", zero.Mul(frac(t, 3, 4)).String())
	assert.Equal(t, "-1/2", zero.Sub(frac(t, 1, 2)).String())
	assert.Equal(t, "0/1", zero.Neg().String())

	_, err := zero.Inverse()
	assert.ErrorIs(t, err, ErrDivisionByZero)

	got, err := Rational{}.Finalize(zero)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Int64())
}

func TestFractionSubNeg(t *testing.T) {
	assert.Equal(t, "1/6", frac(t, 1, 2).Sub(frac(t, 1, 3)).String())
	assert.Equal(t, "-3/4", frac(t, 3, 4).Neg().String())

	r := Rational{}
	assert.Equal(t, "-7/1", r.Sub(r.FromInt(big.NewInt(2)), r.FromInt(big.NewInt(9))).String())
	assert.Equal(t, "5/1", r.Neg(r.FromInt(big.NewInt(-5))).String())

	a := frac(t, 2, 5)
	_ = a.Neg()
	assert.Equal(t, "2/5", a.String())
}

func TestRationalFinalize(t *testing.T) {
	r := Rational{}
	got, err := r.Finalize(frac(t, 10, 5))
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Int64())

	_, err = r.Finalize(frac(t, 7, 3))
	var inconsistent *InconsistentSharesError
	require.ErrorAs(t, err, &inconsistent)
	assert.Equal(t, int64(7), inconsistent.Num.Int64())
	assert.Equal(t, int64(3), inconsistent.Den.Int64())
	assert.ErrorIs(t, err, ErrInconsistentShares)
}
