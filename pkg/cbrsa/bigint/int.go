package bigint

import (
	"math/big"
	"math/bits"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
)

// Word is a single limb of a magnitude.
type Word = big.Word

// _W is the limb width in bits.
const _W = bits.UintSize

// WordBits is the width of a limb in bits.
const WordBits = _W

// Int is a signed arbitrary-precision integer. The zero value is ready to use
// and represents 0.
type Int struct {
	sign int    // -1, 0 or +1
	abs  []Word // little-endian limbs, canonical
}

// New allocates and returns a new Int set to v.
func New(v int64) *Int {
	return new(Int).SetInt64(v)
}

// FromBig returns a new Int holding a copy of x.
func FromBig(x *big.Int) *Int {
	return new(Int).SetBig(x)
}

// norm restores canonical form after limbs were written directly.
func (z *Int) norm() *Int {
	z.abs = trim(z.abs)
	if len(z.abs) == 0 {
		z.sign = 0
	}
	return z
}

// Grow ensures z can hold n limbs without reallocating. Existing limbs are
// preserved. Callers grow destinations before an operation, never inside a
// limb loop.
func (z *Int) Grow(n int) *Int {
	if cap(z.abs) < n {
		a := make([]Word, len(z.abs), n)
		copy(a, z.abs)
		z.abs = a
	}
	return z
}

// SetInt64 sets z to v and returns z.
func (z *Int) SetInt64(v int64) *Int {
	switch {
	case v == 0:
		z.abs, z.sign = z.abs[:0], 0
	case v < 0:
		z.SetUint64(uint64(-v))
		z.sign = -1
	default:
		z.SetUint64(uint64(v))
	}
	return z
}

// SetUint64 sets z to v and returns z.
func (z *Int) SetUint64(v uint64) *Int {
	z.abs = z.abs[:0]
	if v == 0 {
		z.sign = 0
		return z
	}
	if _W == 32 {
		z.abs = append(z.abs, Word(v), Word(v>>32))
	} else {
		z.abs = append(z.abs, Word(v))
	}
	z.sign = 1
	return z.norm()
}

// Set sets z to a copy of x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z == x {
		return z
	}
	z.abs = append(z.abs[:0], x.abs...)
	z.sign = x.sign
	return z
}

// Clone returns an independent copy of x.
func (x *Int) Clone() *Int {
	return new(Int).Set(x)
}

// SetBig sets z to a copy of x and returns z.
func (z *Int) SetBig(x *big.Int) *Int {
	z.abs = append(z.abs[:0], x.Bits()...)
	z.sign = x.Sign()
	return z.norm()
}

// Big returns x as a newly allocated big.Int. The result does not share
// storage with x.
func (x *Int) Big() *big.Int {
	b := new(big.Int).SetBits(append([]Word(nil), x.abs...))
	if x.sign < 0 {
		b.Neg(b)
	}
	return b
}

// SetBytes interprets buf as a big-endian unsigned integer, sets z to it and
// returns z.
func (z *Int) SetBytes(buf []byte) *Int {
	return z.SetBig(new(big.Int).SetBytes(buf))
}

// Bytes returns the big-endian magnitude of x.
func (x *Int) Bytes() []byte {
	return x.Big().Bytes()
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Int) Sign() int {
	return x.sign
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	return x.sign == 0
}

// Len returns the logical number of limbs of x.
func (x *Int) Len() int {
	return len(x.abs)
}

// Cap returns the number of limbs x can hold without reallocation.
func (x *Int) Cap() int {
	return cap(x.abs)
}

// Limbs returns a copy of the magnitude limbs of x, least significant first.
func (x *Int) Limbs() []Word {
	return append([]Word(nil), x.abs...)
}

// Uint64 returns the low 64 bits of |x|.
func (x *Int) Uint64() uint64 {
	var v uint64
	for i := 0; i < len(x.abs) && i*_W < 64; i++ {
		v |= uint64(x.abs[i]) << (i * _W)
	}
	return v
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Int) Cmp(y *Int) int {
	switch {
	case x.sign < y.sign:
		return -1
	case x.sign > y.sign:
		return 1
	case x.sign == 0:
		return 0
	}
	c := cmpAbs(x.abs, y.abs)
	if x.sign < 0 {
		c = -c
	}
	return c
}

// CmpAbs compares |x| and |y|.
func (x *Int) CmpAbs(y *Int) int {
	return cmpAbs(x.abs, y.abs)
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.sign = -z.sign
	return z
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	if z.sign < 0 {
		z.sign = 1
	}
	return z
}

// BitLen returns the length of |x| in bits. The bit length of 0 is 0.
func (x *Int) BitLen() int {
	if len(x.abs) == 0 {
		return 0
	}
	top := len(x.abs) - 1
	return top*_W + bits.Len(uint(x.abs[top]))
}

// Bit returns bit i of |x|.
func (x *Int) Bit(i uint) uint {
	q := int(i / _W)
	if q >= len(x.abs) {
		return 0
	}
	return uint(x.abs[q]>>(i%_W)) & 1
}

// IsOdd reports whether |x| is odd.
func (x *Int) IsOdd() bool {
	return x.Bit(0) == 1
}

// Zeroize clears every limb x owns, including spare capacity, and resets x
// to zero.
func (x *Int) Zeroize() {
	cbrsa.Zeroize(x.abs[:cap(x.abs)])
	x.abs = x.abs[:0]
	x.sign = 0
}
