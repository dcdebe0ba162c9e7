package bigint

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
)

// Mul sets z to the product x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	if x.sign == 0 || y.sign == 0 {
		return z.SetInt64(0)
	}
	return z.SetBig(new(big.Int).Mul(x.Big(), y.Big()))
}

// Mod sets z to the Euclidean remainder x mod m, which is always in
// [0, |m|), and returns z. Mod panics if m is zero.
func (z *Int) Mod(x, m *Int) *Int {
	return z.SetBig(new(big.Int).Mod(x.Big(), m.Big()))
}

// GCD sets z to the greatest common divisor of |x| and |y| and returns z.
func (z *Int) GCD(x, y *Int) *Int {
	a := new(big.Int).Abs(x.Big())
	b := new(big.Int).Abs(y.Big())
	return z.SetBig(new(big.Int).GCD(nil, nil, a, b))
}

// ModInverse sets z to the inverse of g modulo n and returns z. It fails with
// cbrsa.ErrNotInvertible when gcd(g, n) != 1 or n is not positive; z is left
// unchanged in that case.
func (z *Int) ModInverse(g, n *Int) (*Int, error) {
	if n.sign <= 0 {
		return z, errors.Wrap(cbrsa.ErrNotInvertible, "modulus must be positive")
	}
	inv := new(big.Int).ModInverse(g.Big(), n.Big())
	if inv == nil {
		return z, errors.WithMessagef(cbrsa.ErrNotInvertible, "no inverse modulo a %d-bit value", n.BitLen())
	}
	return z.SetBig(inv), nil
}

// Lsh sets z to x shifted left by n bits and returns z. The sign of x is
// kept.
func (z *Int) Lsh(x *Int, n uint) *Int {
	sign := x.sign
	z.abs = shlWords(x.abs, n)
	z.sign = sign
	return z.norm()
}

// Rsh sets z to x shifted right by n bits, truncating the magnitude, and
// returns z. The sign of x is kept, so Rsh rounds toward zero.
func (z *Int) Rsh(x *Int, n uint) *Int {
	sign := x.sign
	z.abs = shrWords(x.abs, n)
	z.sign = sign
	return z.norm()
}

// TruncBits sets z to the low n bits of |x| with the sign of x, i.e. the
// truncating remainder of x divided by 2**n, and returns z.
func (z *Int) TruncBits(x *Int, n uint) *Int {
	sign := x.sign
	z.abs = truncWords(x.abs, n)
	z.sign = sign
	return z.norm()
}

// DivWord sets z to x/w and returns z. The division must be exact: a nonzero
// remainder yields cbrsa.ErrInexact and leaves z unchanged.
func (z *Int) DivWord(x *Int, w Word) (*Int, error) {
	if w == 0 {
		return z, cbrsa.ErrDivisionByZero
	}
	q, r := divWords(x.abs, w)
	if r != 0 {
		return z, errors.WithMessagef(cbrsa.ErrInexact, "remainder %d", uint(r))
	}
	sign := x.sign
	z.abs = q
	z.sign = sign
	return z.norm(), nil
}

// WithBit returns a new Int equal to |x| with bit i set, carrying the sign of
// x (positive if x is zero). x is not modified.
func WithBit(x *Int, i uint) *Int {
	q := int(i / _W)
	z := new(Int).Grow(max(len(x.abs), q+1))
	z.abs = z.abs[:max(len(x.abs), q+1)]
	copy(z.abs, x.abs)
	z.abs[q] |= Word(1) << (i % _W)
	z.sign = x.sign
	if z.sign == 0 {
		z.sign = 1
	}
	return z.norm()
}

// WithoutBit returns a new Int equal to |x| with bit i cleared, carrying the
// sign of x. x is not modified.
func WithoutBit(x *Int, i uint) *Int {
	z := x.Clone()
	q := int(i / _W)
	if q < len(z.abs) {
		z.abs[q] &^= Word(1) << (i % _W)
	}
	return z.norm()
}

// MulKaratsuba returns x*y computed with one level of Karatsuba splitting:
// the three half-size products come from the library multiply and are
// recombined with Add, Sub and shifts. The result always equals Mul.
func MulKaratsuba(x, y *Int) *Int {
	if x.sign == 0 || y.sign == 0 {
		return new(Int)
	}
	h := uint(max(x.BitLen(), y.BitLen()) / 2)
	if h < _W {
		return new(Int).Mul(x, y)
	}
	ax, ay := new(Int).Abs(x), new(Int).Abs(y)

	a0 := new(Int).TruncBits(ax, h)
	a1 := new(Int).Rsh(ax, h)
	b0 := new(Int).TruncBits(ay, h)
	b1 := new(Int).Rsh(ay, h)

	z0 := new(Int).Mul(a0, b0)
	z2 := new(Int).Mul(a1, b1)
	z1 := new(Int).Mul(new(Int).Add(a0, a1), new(Int).Add(b0, b1))
	z1.Sub(z1, z0)
	z1.Sub(z1, z2)

	r := new(Int).Lsh(z2, h)
	r.Add(r, z1)
	r.Lsh(r, h)
	r.Add(r, z0)
	if x.sign != y.sign {
		r.sign = -r.sign
	}
	return r
}

// ProbablyPrime reports whether x is probably prime, applying the given
// number of Miller-Rabin rounds with pseudorandomly chosen bases. Negative
// values and zero are never prime.
func (x *Int) ProbablyPrime(rounds int) bool {
	if x.sign <= 0 {
		return false
	}
	return x.Big().ProbablyPrime(rounds)
}
