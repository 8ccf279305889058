package shamir

import (
	"math/big"
	mathrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// evalShares evaluates the polynomial with the given coefficients (constant
// term first) at each x. When prime is non-nil values are reduced modulo it.
func evalShares(coeffs []*big.Int, xs []int64, prime *big.Int) []*Share {
	shares := make([]*Share, len(xs))
	for i, xi := range xs {
		x := big.NewInt(xi)
		y := new(big.Int)
		xPowJ := big.NewInt(1)

		for j := range coeffs {
			term := new(big.Int).Mul(coeffs[j], xPowJ)
			y.Add(y, term)
			xPowJ.Mul(xPowJ, x)
		}
		if prime != nil {
			y.Mod(y, prime)
		}
		shares[i] = &Share{X: x, Y: y}
	}
	return shares
}

func ints(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

func pts(t *testing.T, xy ...int64) []*Share {
	t.Helper()
	require.Zero(t, len(xy)%2)
	shares := make([]*Share, 0, len(xy)/2)
	for i := 0; i < len(xy); i += 2 {
		s, err := NewShare(xy[i], big.NewInt(xy[i+1]))
		require.NoError(t, err)
		shares = append(shares, s)
	}
	return shares
}

// randomCoeffs returns k coefficients in [0, bound), the first being the secret.
func randomCoeffs(rng *mathrand.Rand, k int, bound *big.Int) []*big.Int {
	coeffs := make([]*big.Int, k)
	for i := range coeffs {
		coeffs[i] = new(big.Int).Rand(rng, bound)
	}
	return coeffs
}

// distinctXs returns k distinct indices in [1, 1000].
func distinctXs(rng *mathrand.Rand, k int) []int64 {
	seen := make(map[int64]bool)
	xs := make([]int64, 0, k)
	for len(xs) < k {
		x := rng.Int63n(1000) + 1
		if !seen[x] {
			seen[x] = true
			xs = append(xs, x)
		}
	}
	return xs
}
