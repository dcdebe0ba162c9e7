// Package prime provides probabilistic primality testing and the table that
// maps RSA key sizes to Miller-Rabin round counts.
package prime

import (
	"math"
	"sort"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
)

// Tester decides whether a candidate is probably prime.
type Tester interface {
	ProbablyPrime(x *bigint.Int, rounds int) bool
}

// MillerRabin is the default Tester. It delegates to the big-integer
// library, which runs the requested Miller-Rabin rounds followed by a
// Baillie-PSW check.
type MillerRabin struct{}

var _ Tester = MillerRabin{}

func (MillerRabin) ProbablyPrime(x *bigint.Int, rounds int) bool {
	return x.ProbablyPrime(rounds)
}

// TesterFunc adapts a plain function to the Tester interface.
type TesterFunc func(x *bigint.Int, rounds int) bool

func (f TesterFunc) ProbablyPrime(x *bigint.Int, rounds int) bool {
	return f(x, rounds)
}

// RoundTable maps an RSA modulus size in bits to the number of Miller-Rabin
// rounds applied to each prime candidate of that key.
type RoundTable map[int]int

// DefaultRoundTable returns a fresh copy of the built-in table.
func DefaultRoundTable() RoundTable {
	return RoundTable{
		1024: 40,
		2048: 56,
		3072: 64,
		4096: 96,
	}
}

// Rounds returns the round count configured for size.
func (t RoundTable) Rounds(size int) (int, bool) {
	r, ok := t[size]
	if !ok || r <= 0 {
		return 0, false
	}
	return r, true
}

// Sizes returns the configured key sizes in ascending order.
func (t RoundTable) Sizes() []int {
	sizes := make([]int, 0, len(t))
	for s := range t {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	return sizes
}

// Clone returns an independent copy of t.
func (t RoundTable) Clone() RoundTable {
	out := make(RoundTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// FalsePositiveBound is the probability bound 4**-rounds that a composite
// passes the given number of Miller-Rabin rounds.
func FalsePositiveBound(rounds int) float64 {
	if rounds <= 0 {
		return 1
	}
	return math.Ldexp(1, -2*rounds)
}
