package shamir

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInsufficientShares is returned when fewer shares than the threshold are supplied.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrDivisionByZero is returned when an index difference is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNonInvertible is returned when a denominator has no inverse modulo the prime.
	ErrNonInvertible = errors.New("non-invertible denominator")
	// ErrInconsistentShares is returned when the shares do not lie on one integer polynomial.
	ErrInconsistentShares = errors.New("inconsistent shares")
	// ErrInvalidThreshold is returned for a threshold below one.
	ErrInvalidThreshold = errors.New("invalid threshold")
	// ErrInvalidModulus is returned when a modulus is missing or not prime.
	ErrInvalidModulus = errors.New("invalid modulus")
	// ErrInvalidShare is returned when a share cannot be decoded.
	ErrInvalidShare = errors.New("invalid share")
	// ErrDuplicateShare is returned by Collector when an index is added twice.
	ErrDuplicateShare = errors.New("duplicate share")
)

// InsufficientSharesError reports how many shares were supplied and needed.
type InsufficientSharesError struct {
	Have int
	Need int
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("insufficient shares: need %d, got %d", e.Need, e.Have)
}

func (e *InsufficientSharesError) Unwrap() error { return ErrInsufficientShares }

// DivisionByZeroError is returned when two selected shares have the same index.
// Index is nil when the zero denominator did not come from an index pair.
type DivisionByZeroError struct {
	Index *big.Int
}

func (e *DivisionByZeroError) Error() string {
	if e.Index == nil {
		return "division by zero"
	}
	return fmt.Sprintf("division by zero: duplicate share index %s", e.Index)
}

func (e *DivisionByZeroError) Unwrap() error { return ErrDivisionByZero }

// NonInvertibleError is returned when Denominator ≡ 0 (mod Modulus).
type NonInvertibleError struct {
	Denominator *big.Int
	Modulus     *big.Int
}

func (e *NonInvertibleError) Error() string {
	return fmt.Sprintf("non-invertible denominator %s modulo %s", e.Denominator, e.Modulus)
}

func (e *NonInvertibleError) Unwrap() error { return ErrNonInvertible }

// InconsistentSharesError carries the non-integer interpolation result.
type InconsistentSharesError struct {
	Num *big.Int
	Den *big.Int
}

func (e *InconsistentSharesError) Error() string {
	return fmt.Sprintf("inconsistent shares: interpolated constant %s/%s is not an integer", e.Num, e.Den)
}

func (e *InconsistentSharesError) Unwrap() error { return ErrInconsistentShares }
