package montgomery

import (
	"github.com/pkg/errors"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
)

// Context holds the per-modulus constants of Montgomery arithmetic. It is
// immutable after NewContext and may be shared between goroutines.
type Context struct {
	m      *bigint.Int
	k      uint
	rInv   *bigint.Int // R**-1 mod m
	mPrime *bigint.Int // R - (m**-1 mod R)
	one    *bigint.Int // R mod m
}

// NewContext prepares Montgomery arithmetic modulo m. m must be odd and
// greater than one, otherwise cbrsa.ErrEvenModulus is returned.
func NewContext(m *bigint.Int) (*Context, error) {
	if m.Sign() <= 0 || !m.IsOdd() || m.Cmp(bigint.New(1)) == 0 {
		return nil, errors.Wrapf(cbrsa.ErrEvenModulus, "montgomery modulus of %d bits", m.BitLen())
	}
	k := uint(m.BitLen())
	r := new(bigint.Int).Lsh(bigint.New(1), k)

	mInv, err := new(bigint.Int).ModInverse(m, r)
	if err != nil {
		return nil, errors.Wrap(err, "inverting modulus mod R")
	}
	rModM := new(bigint.Int).Mod(r, m)
	rInv, err := new(bigint.Int).ModInverse(rModM, m)
	if err != nil {
		return nil, errors.Wrap(err, "inverting R mod modulus")
	}

	return &Context{
		m:      m.Clone(),
		k:      k,
		rInv:   rInv,
		mPrime: new(bigint.Int).Sub(r, mInv),
		one:    rModM,
	}, nil
}

// Modulus returns a copy of the modulus.
func (c *Context) Modulus() *bigint.Int { return c.m.Clone() }

// Bits returns k, the bit length of the modulus and the exponent of R.
func (c *Context) Bits() uint { return c.k }

// ToMont returns a*R mod m. a is reduced modulo m first, so any integer is
// accepted.
func (c *Context) ToMont(a *bigint.Int) *bigint.Int {
	t := new(bigint.Int).Mod(a, c.m)
	t.Lsh(t, c.k)
	return t.Mod(t, c.m)
}

// FromMont returns t*R**-1 mod m.
func (c *Context) FromMont(t *bigint.Int) *bigint.Int {
	out := new(bigint.Int).Mul(t, c.rInv)
	return out.Mod(out, c.m)
}

// Mul returns the Montgomery product x*y*R**-1 mod m of two values already in
// Montgomery form, i.e. in [0, m).
func (c *Context) Mul(x, y *bigint.Int) *bigint.Int {
	return c.redc(new(bigint.Int).Mul(x, y))
}

// redc reduces t < m*R to t*R**-1 mod m:
//
//	u = ((t mod R) * m') mod R
//	t = (t + u*m) / R
//	if t >= m { t -= m }
func (c *Context) redc(t *bigint.Int) *bigint.Int {
	u := new(bigint.Int).TruncBits(t, c.k)
	u.Mul(u, c.mPrime)
	u.TruncBits(u, c.k)
	u.Mul(u, c.m)

	t.Add(t, u)
	t.Rsh(t, c.k)
	if t.Cmp(c.m) >= 0 {
		t.Sub(t, c.m)
	}
	return t
}

// Exp returns a**b mod m. b must not be negative. b = 0 yields 1.
//
// The loop starts from a in Montgomery form, which accounts for the leading
// one bit of b, and walks the remaining bits from the top.
func (c *Context) Exp(a, b *bigint.Int) (*bigint.Int, error) {
	if b.Sign() < 0 {
		return nil, errors.Wrap(cbrsa.ErrDomainViolation, "negative exponent")
	}
	if b.IsZero() {
		return c.FromMont(c.one), nil
	}

	am := c.ToMont(a)
	t := am.Clone()
	for i := b.BitLen() - 2; i >= 0; i-- {
		t = c.Mul(t, t)
		if b.Bit(uint(i)) == 1 {
			t = c.Mul(t, am)
		}
	}
	return c.FromMont(t), nil
}

// Exp is a convenience wrapper that builds a Context for m and returns
// a**b mod m.
func Exp(a, b, m *bigint.Int) (*bigint.Int, error) {
	c, err := NewContext(m)
	if err != nil {
		return nil, err
	}
	return c.Exp(a, b)
}
