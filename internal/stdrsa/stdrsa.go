// Package stdrsa converts keys between cb-rsa-go and crypto/rsa so that keys
// generated here can be cross-checked by the standard library and keys from
// the standard library can drive the transforms here.
package stdrsa

import (
	crsa "crypto/rsa"
	"math/big"

	"github.com/pkg/errors"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/rsa"
)

// ToStd returns k as a crypto/rsa key with its precomputed values filled in.
// The public exponent must fit in an int.
func ToStd(k *rsa.PrivateKey) (*crsa.PrivateKey, error) {
	if k.E.BitLen() > 31 {
		return nil, errors.Wrap(cbrsa.ErrInvalidExponent, "exponent does not fit crypto/rsa")
	}
	std := &crsa.PrivateKey{
		PublicKey: crsa.PublicKey{N: k.N.Big(), E: int(k.E.Uint64())},
		D:         k.D.Big(),
		Primes:    []*big.Int{k.P.Big(), k.Q.Big()},
	}
	std.Precompute()
	return std, nil
}

// FromStd converts a two-prime crypto/rsa key. CRT values are derived when
// withCRT is set.
func FromStd(std *crsa.PrivateKey, withCRT bool) (*rsa.PrivateKey, error) {
	if len(std.Primes) != 2 {
		return nil, errors.Wrapf(cbrsa.ErrInvalidKey, "%d-prime keys are not supported", len(std.Primes))
	}
	k := &rsa.PrivateKey{
		P:    bigint.FromBig(std.Primes[0]),
		Q:    bigint.FromBig(std.Primes[1]),
		D:    bigint.FromBig(std.D),
		N:    bigint.FromBig(std.N),
		E:    bigint.New(int64(std.E)),
		Size: std.N.BitLen(),
	}
	if withCRT {
		if err := k.Precompute(); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// Validate runs crypto/rsa's own consistency checks on k.
func Validate(k *rsa.PrivateKey) error {
	std, err := ToStd(k)
	if err != nil {
		return err
	}
	if err := std.Validate(); err != nil {
		return errors.Wrapf(cbrsa.ErrInvalidKey, "crypto/rsa: %v", err)
	}
	return nil
}
