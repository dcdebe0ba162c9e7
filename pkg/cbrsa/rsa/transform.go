package rsa

import (
	"github.com/pkg/errors"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/modexp"
)

// fastExponentSquarings is the number of squarings in the e = 65537 chain.
const fastExponentSquarings = 16

// Transformer applies the RSA transforms with a chosen exponentiation
// backend. The zero value uses modexp.Default().
type Transformer struct {
	Exp modexp.Exponentiator
}

func (t Transformer) backend() modexp.Exponentiator {
	if t.Exp == nil {
		return modexp.Default()
	}
	return t.Exp
}

func checkInput(in, n *bigint.Int) error {
	if in == nil || in.Sign() < 0 || in.Cmp(n) >= 0 {
		return errors.Wrap(cbrsa.ErrDomainViolation, "transform input outside [0, N)")
	}
	return nil
}

// Public sets out to in**e mod N and returns out.
func (t Transformer) Public(out, in *bigint.Int, pub *PublicKey) (*bigint.Int, error) {
	if pub == nil || pub.N == nil || pub.E == nil {
		return nil, errors.Wrap(cbrsa.ErrInvalidKey, "incomplete public key")
	}
	if err := checkInput(in, pub.N); err != nil {
		return nil, err
	}

	if pub.E.Cmp(bigint.New(DefaultExponent)) == 0 {
		// 65537 = 2**16 + 1
		acc := in.Clone()
		for i := 0; i < fastExponentSquarings; i++ {
			mulMod(acc, acc, acc, pub.N)
		}
		mulMod(acc, acc, in, pub.N)
		return out.Set(acc), nil
	}

	r, err := t.backend().Exp(new(bigint.Int), in, pub.E, pub.N)
	if err != nil {
		return nil, err
	}
	return out.Set(r), nil
}

// Private sets out to in**d mod N and returns out. Keys carrying CRT values
// take the CRT path, which yields the same result.
func (t Transformer) Private(out, in *bigint.Int, priv *PrivateKey) (*bigint.Int, error) {
	if priv == nil || priv.N == nil || priv.D == nil {
		return nil, errors.Wrap(cbrsa.ErrInvalidKey, "incomplete private key")
	}
	if err := checkInput(in, priv.N); err != nil {
		return nil, err
	}
	if !priv.HasCRT() {
		r, err := t.backend().Exp(new(bigint.Int), in, priv.D, priv.N)
		if err != nil {
			return nil, err
		}
		return out.Set(r), nil
	}

	p, q, crt := priv.P, priv.Q, priv.CRT
	if p == nil || q == nil {
		return nil, errors.Wrap(cbrsa.ErrInvalidKey, "CRT key without p and q")
	}
	exp := t.backend()

	x, err := exp.Exp(new(bigint.Int), new(bigint.Int).Mod(in, p), crt.Dp, p)
	if err != nil {
		return nil, errors.Wrap(err, "exponentiation mod p")
	}
	y, err := exp.Exp(new(bigint.Int), new(bigint.Int).Mod(in, q), crt.Dq, q)
	if err != nil {
		return nil, errors.Wrap(err, "exponentiation mod q")
	}

	// h = qInv*(x-y) mod p; out = y + h*q
	h := new(bigint.Int).Sub(x, y)
	mulMod(h, h, crt.QInv, p)
	h.Mul(h, q)
	h.Add(h, y)

	x.Zeroize()
	y.Zeroize()
	return out.Set(h), nil
}

// mulMod sets z to x*y mod m.
func mulMod(z, x, y, m *bigint.Int) *bigint.Int {
	z.Mul(x, y)
	return z.Mod(z, m)
}

// PublicTransform sets out to in**e mod N with the default backend.
func PublicTransform(out, in *bigint.Int, pub *PublicKey) (*bigint.Int, error) {
	return Transformer{}.Public(out, in, pub)
}

// PrivateTransform sets out to in**d mod N with the default backend.
func PrivateTransform(out, in *bigint.Int, priv *PrivateKey) (*bigint.Int, error) {
	return Transformer{}.Private(out, in, priv)
}

// Encrypt returns msg**e mod N. msg must already be in [0, N).
func Encrypt(msg *bigint.Int, pub *PublicKey) (*bigint.Int, error) {
	return PublicTransform(new(bigint.Int), msg, pub)
}

// Decrypt returns c**d mod N.
func Decrypt(c *bigint.Int, priv *PrivateKey) (*bigint.Int, error) {
	return PrivateTransform(new(bigint.Int), c, priv)
}

// Sign returns the raw signature msg**d mod N.
func Sign(msg *bigint.Int, priv *PrivateKey) (*bigint.Int, error) {
	return PrivateTransform(new(bigint.Int), msg, priv)
}

// Verify checks that sig**e mod N equals msg and returns an error wrapping
// cbrsa.ErrVerification if it does not.
func Verify(msg, sig *bigint.Int, pub *PublicKey) error {
	got, err := PublicTransform(new(bigint.Int), sig, pub)
	if err != nil {
		return err
	}
	if got.Cmp(msg) != 0 {
		return cbrsa.ErrVerification
	}
	return nil
}
