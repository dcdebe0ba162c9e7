package modexp

import (
	"math/big"

	"github.com/cronokirby/saferith"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/montgomery"
)

// Library delegates to math/big.
type Library struct{}

func (Library) Name() string { return "library" }

func (Library) Exp(z, x, y, m *bigint.Int) (*bigint.Int, error) {
	if err := checkOperands(x, y, m); err != nil {
		return nil, err
	}
	return z.SetBig(new(big.Int).Exp(x.Big(), y.Big(), m.Big())), nil
}

// Montgomery computes powers with Montgomery multiplication.
type Montgomery struct{}

func (Montgomery) Name() string { return "montgomery" }

func (Montgomery) Exp(z, x, y, m *bigint.Int) (*bigint.Int, error) {
	if err := checkOperands(x, y, m); err != nil {
		return nil, err
	}
	if err := checkOdd(m); err != nil {
		return nil, err
	}
	r, err := montgomery.Exp(x, y, m)
	if err != nil {
		return nil, err
	}
	return z.Set(r), nil
}

// SquareMultiply is left-to-right binary exponentiation with an ordinary
// reduction after every square and multiply.
type SquareMultiply struct{}

func (SquareMultiply) Name() string { return "naive" }

func (SquareMultiply) Exp(z, x, y, m *bigint.Int) (*bigint.Int, error) {
	if err := checkOperands(x, y, m); err != nil {
		return nil, err
	}
	base := x.Clone()
	r := bigint.New(1)
	for i := y.BitLen() - 1; i >= 0; i-- {
		r.Mul(r, r).Mod(r, m)
		if y.Bit(uint(i)) == 1 {
			r.Mul(r, base).Mod(r, m)
		}
	}
	return z.Set(r), nil
}

// ConstantTime uses saferith, whose running time depends only on the sizes
// of the operands. Converting to and from bigint.Int is not constant-time.
type ConstantTime struct{}

func (ConstantTime) Name() string { return "saferith" }

func (ConstantTime) Exp(z, x, y, m *bigint.Int) (*bigint.Int, error) {
	if err := checkOperands(x, y, m); err != nil {
		return nil, err
	}
	if err := checkOdd(m); err != nil {
		return nil, err
	}
	if y.IsZero() {
		return z.SetInt64(1), nil
	}
	mod := saferith.ModulusFromNat(new(saferith.Nat).SetBig(m.Big(), m.BitLen()))
	xn := new(saferith.Nat).SetBig(x.Big(), m.BitLen())
	yn := new(saferith.Nat).SetBig(y.Big(), y.BitLen())
	return z.SetBig(new(saferith.Nat).Exp(xn, yn, mod).Big()), nil
}
