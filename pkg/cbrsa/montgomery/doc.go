// Package montgomery implements modular exponentiation with Montgomery
// multiplication over an odd modulus.
//
// A Context fixes the modulus m and its derived constants: k = bitlen(m),
// R = 2**k, R**-1 mod m and m' = R - (m**-1 mod R). Values are moved into
// Montgomery form with ToMont, multiplied with Mul (one REDC per product) and
// moved back with FromMont. Exp combines these in a left-to-right
// square-and-multiply loop.
//
// Inside the loop the package only adds, subtracts, multiplies, shifts by k,
// truncates to k bits and compares. Addition and subtraction are the bigint
// package's own limb routines. The library modular inverse is used once per
// Context; no library power-mod is ever called.
//
//	ctx, err := montgomery.NewContext(m)
//	if err != nil {
//	    return err
//	}
//	r, err := ctx.Exp(a, b)
package montgomery
