package shamir

import "math/big"

// Arithmetic is the set of operations the reconstruction engine needs from a
// number system. E is the backend's element type.
type Arithmetic[E any] interface {
	// FromInt lifts an integer into the backend.
	FromInt(x *big.Int) E
	Add(a, b E) E
	Sub(a, b E) E
	Neg(a E) E
	Mul(a, b E) E
	// Invert returns the multiplicative inverse of a.
	Invert(a E) (E, error)
	// Finalize converts the accumulated sum back to an integer.
	Finalize(a E) (*big.Int, error)
}
