package cbrsa

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidKeySize is returned when a requested RSA size is not positive,
	// not a multiple of the block size, or has no configured Miller-Rabin
	// round count.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidExponent is returned when the public exponent is even or not
	// greater than one.
	ErrInvalidExponent = errors.New("invalid public exponent")

	// ErrNotInvertible is returned when a modular inverse does not exist.
	// During key generation it signals a broken internal invariant.
	ErrNotInvertible = errors.New("value is not invertible")

	// ErrDomainViolation is returned when an input lies outside the range an
	// operation is defined on, e.g. a transform input outside [0, N).
	ErrDomainViolation = errors.New("input outside operation domain")

	// ErrEvenModulus is returned when Montgomery arithmetic is requested for
	// a modulus that is even or not greater than one.
	ErrEvenModulus = errors.New("modulus must be odd and greater than one")

	// ErrInexact is returned by exact division when a remainder is left.
	ErrInexact = errors.New("division is not exact")

	// ErrDivisionByZero is returned when dividing by a zero word.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidKey is returned when key material fails validation.
	ErrInvalidKey = errors.New("invalid key")

	// ErrVerification is returned when a raw signature does not verify.
	ErrVerification = errors.New("verification failed")

	// ErrUnknownBackend is returned when an exponentiation backend name does
	// not match any registered implementation.
	ErrUnknownBackend = errors.New("unknown exponentiation backend")
)

// IsInvariantViolation reports whether err is an error that can only be
// produced by a bug in this library rather than by bad caller input.
func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrNotInvertible)
}
