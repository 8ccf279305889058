package shamir

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
)

// Share represents a share of a secret: the polynomial evaluated at X.
// Shares are treated as immutable once constructed.
type Share struct {
	X *big.Int
	Y *big.Int
}

// NewShare builds a share from an index and a value.
func NewShare(x int64, y *big.Int) (*Share, error) {
	if x < 1 {
		return nil, fmt.Errorf("%w: index %d must be at least 1", ErrInvalidShare, x)
	}
	if y == nil || y.Sign() < 0 {
		return nil, fmt.Errorf("%w: value must be non-negative", ErrInvalidShare)
	}
	return &Share{X: big.NewInt(x), Y: new(big.Int).Set(y)}, nil
}

// DecodeShare decodes a share from its decimal index, its decimal base (2-36)
// and its value written in that base. Digits are case-insensitive.
func DecodeShare(index, base, value string) (*Share, error) {
	if !isDecimal(index) {
		return nil, fmt.Errorf("%w: index %q is not a decimal integer", ErrInvalidShare, index)
	}
	x, _ := new(big.Int).SetString(index, 10)
	if x.Sign() <= 0 {
		return nil, fmt.Errorf("%w: index %s must be at least 1", ErrInvalidShare, x)
	}

	b, err := ParseBase(base)
	if err != nil {
		return nil, err
	}

	y, err := DecodeValue(value, b)
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", x, err)
	}
	return &Share{X: x, Y: y}, nil
}

// ParseBase parses a decimal base in the range 2-36.
func ParseBase(base string) (int, error) {
	if !isDecimal(base) {
		return 0, fmt.Errorf("%w: base %q is not a decimal integer", ErrInvalidShare, base)
	}
	b, err := strconv.Atoi(base)
	if err != nil || b < 2 || b > 36 {
		return 0, fmt.Errorf("%w: base %q out of range 2-36", ErrInvalidShare, base)
	}
	return b, nil
}

// DecodeValue decodes an unsigned alphanumeric string in the given base.
func DecodeValue(value string, base int) (*big.Int, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidShare)
	}
	for _, c := range value {
		if d := digit(c); d < 0 || d >= base {
			return nil, fmt.Errorf("%w: %q is not a base %d number", ErrInvalidShare, value, base)
		}
	}
	// big.Int accepts either case for bases up to 36.
	y, ok := new(big.Int).SetString(value, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a base %d number", ErrInvalidShare, value, base)
	}
	return y, nil
}

// SortShares sorts shares in place, ascending by index.
func SortShares(shares []*Share) {
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].X.Cmp(shares[j].X) < 0
	})
}

// MaxValue returns the largest share value, or zero for no shares.
func MaxValue(shares []*Share) *big.Int {
	m := new(big.Int)
	for _, s := range shares {
		if s.Y.Cmp(m) > 0 {
			m.Set(s.Y)
		}
	}
	return m
}

func digit(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
