package rsa_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/rsa"
)

func TestPublicKeysDoNotAlias(t *testing.T) {
	pub, priv := testKey(t, 61, 1024, rsa.DefaultExponent)
	n := priv.N.Clone()

	pub.N.Add(pub.N, bigint.New(2))
	require.Equal(t, 0, priv.N.Cmp(n))

	again := priv.Public()
	again.E.Add(again.E, bigint.New(2))
	require.Equal(t, "65537", priv.E.String())

	clone := again.Clone()
	clone.N.Sub(clone.N, bigint.New(1))
	require.NotEqual(t, 0, clone.N.Cmp(again.N))
}

func TestPrecomputeAndDropCRT(t *testing.T) {
	_, priv := testKey(t, 71, 1024, rsa.DefaultExponent)
	dp := priv.CRT.Dp

	priv.DropCRT()
	require.False(t, priv.HasCRT())
	require.True(t, dp.IsZero(), "dropped CRT values must be cleared")
	require.NoError(t, priv.Validate())
	priv.DropCRT()

	require.NoError(t, priv.Precompute())
	require.True(t, priv.HasCRT())
	require.NoError(t, priv.Validate())

	err := (&rsa.PrivateKey{N: priv.N}).Precompute()
	require.True(t, errors.Is(err, cbrsa.ErrInvalidKey))
}

func TestValidateDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(k *rsa.PrivateKey)
	}{
		{"wrong d", func(k *rsa.PrivateKey) { k.D.Add(k.D, bigint.New(2)) }},
		{"wrong size", func(k *rsa.PrivateKey) { k.Size = 2048 }},
		{"wrong modulus", func(k *rsa.PrivateKey) { k.N.Add(k.N, bigint.New(2)) }},
		{"p equals q", func(k *rsa.PrivateKey) { k.Q = k.P.Clone() }},
		{"even exponent", func(k *rsa.PrivateKey) { k.E = bigint.New(4) }},
		{"missing d", func(k *rsa.PrivateKey) { k.D = nil }},
		{"composite p", func(k *rsa.PrivateKey) {
			k.P.Mul(k.P, bigint.New(3))
			k.N.Mul(k.N, bigint.New(3))
		}},
		{"inconsistent dp", func(k *rsa.PrivateKey) { k.CRT.Dp.Add(k.CRT.Dp, bigint.New(1)) }},
		{"partial CRT", func(k *rsa.PrivateKey) { k.CRT.QInv = nil }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, priv := testKey(t, 81, 1024, rsa.DefaultExponent)
			require.NoError(t, priv.Validate())
			tc.tamper(priv)
			require.True(t, errors.Is(priv.Validate(), cbrsa.ErrInvalidKey))
		})
	}
}

func TestZeroize(t *testing.T) {
	_, priv := testKey(t, 91, 1024, rsa.DefaultExponent)
	p, d := priv.P, priv.D
	priv.Zeroize()
	require.True(t, p.IsZero())
	require.True(t, d.IsZero())
	require.False(t, priv.HasCRT())
	require.False(t, priv.N.IsZero(), "the modulus is public")
}
