package bigint

import "math/bits"

// cmpAbs compares two canonical magnitudes.
func cmpAbs(x, y []Word) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// trim drops leading zero limbs.
func trim(z []Word) []Word {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// addMagnitude stores |x|+|y| in z and returns it. cap(z) must be at least
// max(len(x), len(y))+1; the caller sizes z before the call. z may share its
// backing array with x or y.
func addMagnitude(z, x, y []Word) []Word {
	if len(x) < len(y) {
		x, y = y, x
	}
	z = z[:len(x)+1]

	var carry uint
	i := 0
	for ; i < len(y); i++ {
		s, c := bits.Add(uint(x[i]), uint(y[i]), carry)
		z[i] = Word(s)
		carry = c
	}
	for ; i < len(x); i++ {
		s, c := bits.Add(uint(x[i]), 0, carry)
		z[i] = Word(s)
		carry = c
	}

	if carry != 0 {
		z[i] = 1
		return z[:i+1]
	}
	return z[:i]
}

// subMagnitude stores ||x|-|y|| in z and returns it along with the result of
// comparing |x| to |y|. The operand with the larger magnitude is always the
// minuend; equal magnitudes yield an empty (zero) result. cap(z) must be at
// least max(len(x), len(y)).
func subMagnitude(z, x, y []Word) ([]Word, int) {
	cmp := cmpAbs(x, y)
	if cmp == 0 {
		return z[:0], 0
	}
	if cmp < 0 {
		x, y = y, x
	}
	z = z[:len(x)]

	var borrow uint
	i := 0
	for ; i < len(y); i++ {
		d, b := bits.Sub(uint(x[i]), uint(y[i]), borrow)
		z[i] = Word(d)
		borrow = b
	}
	for ; i < len(x); i++ {
		d, b := bits.Sub(uint(x[i]), 0, borrow)
		z[i] = Word(d)
		borrow = b
	}
	// |x| > |y| so no borrow can survive the top limb.

	return trim(z), cmp
}

// shlWords returns x shifted left by n bits in a freshly allocated slice.
func shlWords(x []Word, n uint) []Word {
	if len(x) == 0 {
		return nil
	}
	q, r := int(n/_W), n%_W
	out := make([]Word, len(x)+q+1)
	if r == 0 {
		copy(out[q:], x)
		return trim(out)
	}
	var carry Word
	for i, w := range x {
		out[q+i] = w<<r | carry
		carry = w >> (_W - r)
	}
	out[q+len(x)] = carry
	return trim(out)
}

// shrWords returns x shifted right by n bits in a freshly allocated slice.
func shrWords(x []Word, n uint) []Word {
	q, r := int(n/_W), n%_W
	if q >= len(x) {
		return nil
	}
	src := x[q:]
	out := make([]Word, len(src))
	if r == 0 {
		copy(out, src)
		return trim(out)
	}
	for i := range src {
		out[i] = src[i] >> r
		if i+1 < len(src) {
			out[i] |= src[i+1] << (_W - r)
		}
	}
	return trim(out)
}

// truncWords returns the low n bits of x in a freshly allocated slice.
func truncWords(x []Word, n uint) []Word {
	q, r := int(n/_W), n%_W
	if q >= len(x) {
		return append([]Word(nil), x...)
	}
	k := q
	if r != 0 {
		k++
	}
	out := make([]Word, k)
	copy(out, x[:k])
	if r != 0 {
		out[q] &= Word(1)<<r - 1
	}
	return trim(out)
}

// divWords divides x by the single word w, returning quotient and remainder.
func divWords(x []Word, w Word) ([]Word, Word) {
	out := make([]Word, len(x))
	var rem uint
	for i := len(x) - 1; i >= 0; i-- {
		q, r := bits.Div(rem, uint(x[i]), uint(w))
		out[i] = Word(q)
		rem = r
	}
	return trim(out), Word(rem)
}
