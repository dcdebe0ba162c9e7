package rsa

import (
	"github.com/pkg/errors"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
)

// validateRounds is the Miller-Rabin round count used by Validate.
const validateRounds = 20

// PublicKey is an RSA public key.
type PublicKey struct {
	N    *bigint.Int
	E    *bigint.Int
	Size int // bit length of N
}

// Clone returns an independent copy of pub.
func (pub *PublicKey) Clone() *PublicKey {
	return &PublicKey{N: pub.N.Clone(), E: pub.E.Clone(), Size: pub.Size}
}

// CRTValues are the Chinese remainder theorem parameters of a private key.
type CRTValues struct {
	Dp   *bigint.Int // d mod (p-1)
	Dq   *bigint.Int // d mod (q-1)
	QInv *bigint.Int // q**-1 mod p
}

// PrivateKey is an RSA private key. CRT is either nil or fully populated; it
// is only ever set by Precompute and cleared by DropCRT.
type PrivateKey struct {
	P, Q *bigint.Int
	D    *bigint.Int
	N    *bigint.Int
	E    *bigint.Int
	Size int

	CRT *CRTValues
}

// Public returns the public half of k. The result shares no storage with k.
func (k *PrivateKey) Public() *PublicKey {
	return &PublicKey{N: k.N.Clone(), E: k.E.Clone(), Size: k.Size}
}

// HasCRT reports whether k carries CRT values and PrivateTransform will use
// them.
func (k *PrivateKey) HasCRT() bool {
	return k.CRT != nil
}

// Precompute derives the CRT values from P, Q and D, replacing any existing
// ones.
func (k *PrivateKey) Precompute() error {
	if k.P == nil || k.Q == nil || k.D == nil {
		return errors.Wrap(cbrsa.ErrInvalidKey, "precompute needs p, q and d")
	}
	crt, err := deriveCRT(k.P, k.Q, k.D)
	if err != nil {
		return errors.Wrapf(cbrsa.ErrInvalidKey, "precompute: %v", err)
	}
	k.DropCRT()
	k.CRT = crt
	return nil
}

// DropCRT clears and removes the CRT values. Later private transforms use
// the plain exponent.
func (k *PrivateKey) DropCRT() {
	if k.CRT == nil {
		return
	}
	k.CRT.Dp.Zeroize()
	k.CRT.Dq.Zeroize()
	k.CRT.QInv.Zeroize()
	k.CRT = nil
}

func deriveCRT(p, q, d *bigint.Int) (*CRTValues, error) {
	pm1 := bigint.WithoutBit(p, 0)
	qm1 := bigint.WithoutBit(q, 0)
	qInv, err := new(bigint.Int).ModInverse(q, p)
	if err != nil {
		return nil, errors.Wrap(err, "q has no inverse mod p")
	}
	return &CRTValues{
		Dp:   new(bigint.Int).Mod(d, pm1),
		Dq:   new(bigint.Int).Mod(d, qm1),
		QInv: qInv,
	}, nil
}

// Validate re-checks the relations between the fields of k and returns an
// error wrapping cbrsa.ErrInvalidKey for the first one that fails.
func (k *PrivateKey) Validate() error {
	fail := func(format string, args ...any) error {
		return errors.Wrapf(cbrsa.ErrInvalidKey, format, args...)
	}
	for _, f := range []struct {
		name string
		v    *bigint.Int
	}{{"P", k.P}, {"Q", k.Q}, {"D", k.D}, {"N", k.N}, {"E", k.E}} {
		if f.v == nil || f.v.Sign() <= 0 {
			return fail("%s must be positive", f.name)
		}
	}
	one := bigint.New(1)
	if !k.E.IsOdd() || k.E.Cmp(one) <= 0 {
		return fail("public exponent must be odd and greater than one")
	}
	if k.P.Cmp(k.Q) == 0 {
		return fail("p and q are equal")
	}
	if new(bigint.Int).Mul(k.P, k.Q).Cmp(k.N) != 0 {
		return fail("N is not p*q")
	}
	if k.N.BitLen() != k.Size {
		return fail("N has %d bits, key claims %d", k.N.BitLen(), k.Size)
	}
	if !k.P.ProbablyPrime(validateRounds) || !k.Q.ProbablyPrime(validateRounds) {
		return fail("p or q is not prime")
	}

	// d*e == 1 mod (p-1) and mod (q-1). This holds whether d was derived
	// modulo phi(N) or lambda(N).
	de := new(bigint.Int).Mul(k.D, k.E)
	for _, f := range []*bigint.Int{bigint.WithoutBit(k.P, 0), bigint.WithoutBit(k.Q, 0)} {
		if new(bigint.Int).Mod(de, f).Cmp(one) != 0 {
			return fail("d is not the inverse of e")
		}
	}

	if k.CRT == nil {
		return nil
	}
	want, err := deriveCRT(k.P, k.Q, k.D)
	if err != nil {
		return fail("%v", err)
	}
	if k.CRT.Dp == nil || k.CRT.Dq == nil || k.CRT.QInv == nil ||
		k.CRT.Dp.Cmp(want.Dp) != 0 || k.CRT.Dq.Cmp(want.Dq) != 0 || k.CRT.QInv.Cmp(want.QInv) != 0 {
		return fail("CRT values are inconsistent with p, q and d")
	}
	return nil
}

// Zeroize clears every secret value of k. The key is unusable afterwards.
func (k *PrivateKey) Zeroize() {
	k.DropCRT()
	for _, v := range []*bigint.Int{k.P, k.Q, k.D} {
		if v != nil {
			v.Zeroize()
		}
	}
}
