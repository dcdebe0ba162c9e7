// Package modexp provides interchangeable modular exponentiation backends
// behind a single Exponentiator contract.
//
// Every backend computes x**y mod m for 0 <= x < m, y >= 0 and m > 1 and
// produces identical results; they differ only in how they get there:
//
//   - Library delegates to math/big.
//   - Montgomery uses the montgomery package (odd m only).
//   - SquareMultiply is the textbook loop that reduces after every step.
//   - ConstantTime uses saferith's fixed-window exponentiation (odd m only).
//
// Backends are stateless and safe for concurrent use.
package modexp

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
)

// Exponentiator computes modular powers.
type Exponentiator interface {
	// Exp sets z to x**y mod m and returns z.
	Exp(z, x, y, m *bigint.Int) (*bigint.Int, error)
	// Name is the identifier accepted by ByName.
	Name() string
}

var registry = map[string]Exponentiator{
	Library{}.Name():        Library{},
	Montgomery{}.Name():     Montgomery{},
	SquareMultiply{}.Name(): SquareMultiply{},
	ConstantTime{}.Name():   ConstantTime{},
}

// Default returns the backend used when none is configured.
func Default() Exponentiator {
	return Montgomery{}
}

// ByName returns the backend registered under name. Matching ignores case.
func ByName(name string) (Exponentiator, error) {
	e, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(cbrsa.ErrUnknownBackend, "%q (have %s)", name, strings.Join(Names(), ", "))
	}
	return e, nil
}

// Names lists the registered backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// checkOperands enforces the shared contract of all backends.
func checkOperands(x, y, m *bigint.Int) error {
	if m.Cmp(bigint.New(1)) <= 0 {
		return errors.Wrap(cbrsa.ErrDomainViolation, "modulus must be greater than one")
	}
	if y.Sign() < 0 {
		return errors.Wrap(cbrsa.ErrDomainViolation, "negative exponent")
	}
	if x.Sign() < 0 || x.Cmp(m) >= 0 {
		return errors.Wrap(cbrsa.ErrDomainViolation, "base outside [0, m)")
	}
	return nil
}

// checkOdd additionally requires an odd modulus.
func checkOdd(m *bigint.Int) error {
	if !m.IsOdd() {
		return errors.Wrapf(cbrsa.ErrEvenModulus, "modulus of %d bits", m.BitLen())
	}
	return nil
}
