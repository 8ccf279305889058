package shamir

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/izouxv/goShamir/field"
)

// Strategy selects the arithmetic used for reconstruction.
type Strategy int

const (
	// StrategyRational interpolates exactly over the rationals.
	StrategyRational Strategy = iota
	// StrategyFixed interpolates modulo a configured prime.
	StrategyFixed
	// StrategyDynamic interpolates modulo a prime derived from the shares.
	StrategyDynamic
)

var strategyNames = map[Strategy]string{
	StrategyRational: "rational",
	StrategyFixed:    "fixed",
	StrategyDynamic:  "dynamic",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy parses "rational", "fixed" or "dynamic".
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if strings.EqualFold(name, n) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

// Options configures Recover.
type Options struct {
	Strategy Strategy
	// Modulus is the prime for StrategyFixed. Nil means field.Default.
	Modulus *big.Int
	// Margin and Rounds tune StrategyDynamic, see DynamicModulus.
	Margin *big.Int
	Rounds int
}

// Recovery is the outcome of a successful Recover call.
type Recovery struct {
	Secret *big.Int
	// Modulus is the prime used, nil for StrategyRational.
	Modulus *big.Int
	// Shares are the k shares that were interpolated, ascending by index.
	Shares []*Share
}

// Recover reconstructs the secret from the first k shares by index with the
// arithmetic selected in opts.
func Recover(shares []*Share, k int, opts Options) (*Recovery, error) {
	points, err := selectShares(shares, k)
	if err != nil {
		return nil, err
	}

	rec := &Recovery{Shares: points}
	switch opts.Strategy {
	case StrategyRational:
		rec.Secret, err = interpolate[Fraction](points, Rational{})
	case StrategyFixed, StrategyDynamic:
		p := opts.Modulus
		if opts.Strategy == StrategyDynamic {
			if p, err = DynamicModulus(shares, opts.Margin, opts.Rounds); err != nil {
				return nil, err
			}
		} else if p == nil {
			p = field.Get(field.Default)
		}
		var m *Modular
		if m, err = NewModular(p); err != nil {
			return nil, err
		}
		rec.Modulus = m.Modulus()
		rec.Secret, err = interpolate[*big.Int](points, m)
	default:
		return nil, fmt.Errorf("unknown strategy %v", opts.Strategy)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Reconstruct evaluates at zero the polynomial through the first k shares,
// ordered by index, using arith. Shares beyond the first k are ignored.
func Reconstruct[E any](shares []*Share, k int, arith Arithmetic[E]) (*big.Int, error) {
	points, err := selectShares(shares, k)
	if err != nil {
		return nil, err
	}
	return interpolate(points, arith)
}

func selectShares(shares []*Share, k int) ([]*Share, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k = %d", ErrInvalidThreshold, k)
	}
	if len(shares) < k {
		return nil, &InsufficientSharesError{Have: len(shares), Need: k}
	}
	sorted := make([]*Share, len(shares))
	copy(sorted, shares)
	SortShares(sorted)
	return sorted[:k], nil
}

// interpolate computes f(0) = Σ y_i · Π_{j≠i} -x_j / (x_i - x_j).
func interpolate[E any](points []*Share, arith Arithmetic[E]) (*big.Int, error) {
	sum := arith.FromInt(new(big.Int))

	for i, shareI := range points {
		term := arith.FromInt(shareI.Y)

		for j, shareJ := range points {
			if i == j {
				continue
			}
			if shareI.X.Cmp(shareJ.X) == 0 {
				return nil, &DivisionByZeroError{Index: new(big.Int).Set(shareI.X)}
			}
			xj := arith.FromInt(shareJ.X)
			inv, err := arith.Invert(arith.Sub(arith.FromInt(shareI.X), xj))
			if err != nil {
				return nil, fmt.Errorf("shares %s and %s: %w", shareI.X, shareJ.X, err)
			}
			term = arith.Mul(term, arith.Mul(arith.Neg(xj), inv))
		}

		sum = arith.Add(sum, term)
	}

	return arith.Finalize(sum)
}
