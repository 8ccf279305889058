package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeShare(t *testing.T) {
	cases := []struct {
		index, base, value string
		x, y               int64
	}{
		{"1", "16", "ff", 1, 255},
		{"2", "8", "777", 2, 511},
		{"3", "16", "FF", 3, 255},
		{"4", "16", "fF", 4, 255},
		{"5", "2", "111", 5, 7},
		{"6", "10", "4", 6, 4},
		{"7", "36", "z", 7, 35},
		{"8", "10", "0", 8, 0},
		{"12", "10", "0007", 12, 7},
	}
	for _, c := range cases {
		t.Run(c.base+"/"+c.value, func(t *testing.T) {
			s, err := DecodeShare(c.index, c.base, c.value)
			require.NoError(t, err)
			assert.Equal(t, c.x, s.X.Int64())
			assert.Equal(t, c.y, s.Y.Int64())
		})
	}

	big36, err := DecodeShare("1", "36", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")
	require.NoError(t, err)
	want := new(big.Int).Exp(big.NewInt(36), big.NewInt(30), nil)
	assert.Equal(t, 0, big36.Y.Cmp(want.Sub(want, big.NewInt(1))))
}

func TestDecodeShareErrors(t *testing.T) {
	cases := []struct {
		name, index, base, value string
	}{
		{"zero index", "0", "10", "1"},
		{"negative index", "-1", "10", "1"},
		{"signed index", "+1", "10", "1"},
		{"non-decimal index", "a", "10", "1"},
		{"empty index", "", "10", "1"},
		{"base too small", "1", "1", "0"},
		{"base too large", "1", "37", "1"},
		{"non-decimal base", "1", "x", "1"},
		{"digit out of base", "1", "8", "8"},
		{"hex digit in decimal", "1", "10", "ff"},
		{"signed value", "1", "10", "-5"},
		{"plus value", "1", "10", "+5"},
		{"underscore", "1", "10", "1_000"},
		{"space", "1", "10", "1 0"},
		{"empty value", "1", "10", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeShare(c.index, c.base, c.value)
			assert.ErrorIs(t, err, ErrInvalidShare)
		})
	}
}

func TestNewShare(t *testing.T) {
	s, err := NewShare(3, big.NewInt(9))
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.X.Int64())

	_, err = NewShare(0, big.NewInt(9))
	assert.ErrorIs(t, err, ErrInvalidShare)
	_, err = NewShare(1, big.NewInt(-9))
	assert.ErrorIs(t, err, ErrInvalidShare)
	_, err = NewShare(1, nil)
	assert.ErrorIs(t, err, ErrInvalidShare)
}

func TestSortSharesAndMaxValue(t *testing.T) {
	shares := pts(t, 3, 9, 1, 3, 2, 50)
	SortShares(shares)
	for i, s := range shares {
		assert.Equal(t, int64(i+1), s.X.Int64())
	}
	assert.Equal(t, int64(50), MaxValue(shares).Int64())
	assert.Equal(t, int64(0), MaxValue(nil).Int64())
}

func TestShareCodec(t *testing.T) {
	share := &Share{
		X: big.NewInt(1234567890),
		Y: big.NewInt(9876543210),
	}
	data, err := MarshalShare(share)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalShare(data)
	require.NoError(t, err)
	assert.Equal(t, share.X, decoded.X)
	assert.Equal(t, share.Y, decoded.Y)

	zero := &Share{X: big.NewInt(1), Y: new(big.Int)}
	data, err = MarshalShare(zero)
	require.NoError(t, err)
	decoded, err = UnmarshalShare(data)
	require.NoError(t, err)
	assert.Equal(t, 0, decoded.Y.Sign())

	_, err = UnmarshalShare(data[:1])
	assert.Error(t, err)

	_, err = UnmarshalShare(append(data, 0))
	assert.ErrorIs(t, err, ErrInvalidShare)

	bad, err := MarshalShare(&Share{X: new(big.Int), Y: big.NewInt(1)})
	require.NoError(t, err)
	_, err = UnmarshalShare(bad)
	assert.ErrorIs(t, err, ErrInvalidShare)
}
