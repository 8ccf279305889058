package shamir

import (
	"math/big"
	"testing"

	"github.com/izouxv/goShamir/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModular(t *testing.T) {
	m, err := NewModular(big.NewInt(13))
	require.NoError(t, err)
	assert.Equal(t, int64(13), m.Modulus().Int64())

	for _, p := range []*big.Int{nil, big.NewInt(0), big.NewInt(1), big.NewInt(-13), big.NewInt(15)} {
		_, err := NewModular(p)
		assert.ErrorIs(t, err, ErrInvalidModulus, "modulus %v", p)
	}
}

func TestModularOperations(t *testing.T) {
	m, err := NewModular(big.NewInt(13))
	require.NoError(t, err)

	assert.Equal(t, int64(9), m.FromInt(big.NewInt(-4)).Int64())
	assert.Equal(t, int64(2), m.Add(big.NewInt(8), big.NewInt(7)).Int64())
	assert.Equal(t, int64(4), m.Mul(big.NewInt(6), big.NewInt(5)).Int64())
	assert.Equal(t, int64(12), m.Sub(big.NewInt(3), big.NewInt(4)).Int64())
	assert.Equal(t, int64(10), m.Neg(big.NewInt(3)).Int64())
	assert.Equal(t, int64(0), m.Neg(big.NewInt(0)).Int64())

	inv, err := m.Invert(big.NewInt(9))
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.Mul(inv, big.NewInt(9)).Int64())

	_, err = m.Invert(big.NewInt(0))
	var nonInv *NonInvertibleError
	require.ErrorAs(t, err, &nonInv)
	assert.Equal(t, int64(13), nonInv.Modulus.Int64())
	assert.ErrorIs(t, err, ErrNonInvertible)

	got, err := m.Finalize(big.NewInt(27))
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Int64())
}

func TestDynamicModulus(t *testing.T) {
	shares := pts(t, 1, 60, 2, 20)

	p, err := DynamicModulus(shares, big.NewInt(1), 20)
	require.NoError(t, err)
	assert.Equal(t, int64(67), p.Int64())

	p, err = DynamicModulus(shares, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1061), p.Int64())

	p, err = DynamicModulus(shares, big.NewInt(0), 20)
	require.NoError(t, err)
	assert.True(t, p.Cmp(big.NewInt(60)) > 0)
	assert.True(t, p.ProbablyPrime(20))

	huge := []*Share{{X: big.NewInt(1), Y: field.Get(field.Default)}}
	p, err = DynamicModulus(huge, big.NewInt(0), 20)
	require.NoError(t, err)
	assert.True(t, p.Cmp(field.Get(field.Default)) > 0)

	t.Run("negative margin", func(t *testing.T) {
		p, err := DynamicModulus(shares, big.NewInt(-10), 20)
		assert.ErrorIs(t, err, ErrInvalidModulus)
		assert.Nil(t, p)

		_, err = Recover(shares, 2, Options{Strategy: StrategyDynamic, Margin: big.NewInt(-1)})
		assert.ErrorIs(t, err, ErrInvalidModulus)
	})
}
