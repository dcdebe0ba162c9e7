// Package bigint implements signed arbitrary-precision integers.
//
// An Int is a sign plus a magnitude stored as machine-word limbs, least
// significant first. Values are always kept canonical: the most significant
// limb is nonzero, and zero has no limbs and sign 0. There is no negative
// zero.
//
// Addition and subtraction are implemented here limb by limb with explicit
// carry and borrow propagation. Multiplication, general division, gcd,
// modular inversion and text conversion are delegated to math/big; power of
// two shifts, truncations and exact division by a single word are native.
//
// Like math/big, methods have the form
//
//	func (z *Int) Op(x, y *Int) *Int
//
// storing the result in z and returning it. Operands are read-only views and
// may alias z.
package bigint
