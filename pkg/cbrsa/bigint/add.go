package bigint

// Add sets z to the sum x+y and returns z.
//
// If either operand is zero, z receives a copy of the other one. Operands of
// the same sign are added by magnitude and keep their sign; operands of
// different signs are subtracted by magnitude and take the sign of the one
// with the larger magnitude.
func (z *Int) Add(x, y *Int) *Int {
	return z.add(x, y.abs, y.sign)
}

// Sub sets z to the difference x-y and returns z.
//
// Subtraction is addition of -y; only the sign of y is flipped, its limbs are
// read in place.
func (z *Int) Sub(x, y *Int) *Int {
	return z.add(x, y.abs, -y.sign)
}

func (z *Int) add(x *Int, yabs []Word, ysign int) *Int {
	if x.sign == 0 {
		z.abs = append(z.abs[:0], yabs...)
		z.sign = ysign
		return z
	}
	if ysign == 0 {
		return z.Set(x)
	}

	n := len(x.abs)
	if len(yabs) > n {
		n = len(yabs)
	}
	// If z aliases y and Grow reallocates, yabs still points at the old,
	// unchanged limbs. If z aliases x, x sees the grown slice.
	z.Grow(n + 1)

	if x.sign == ysign {
		z.abs = addMagnitude(z.abs, x.abs, yabs)
		z.sign = x.sign
		return z
	}

	sign := x.sign
	var cmp int
	z.abs, cmp = subMagnitude(z.abs, x.abs, yabs)
	switch {
	case cmp == 0:
		z.sign = 0
	case cmp > 0:
		z.sign = sign
	default:
		z.sign = ysign
	}
	return z
}
