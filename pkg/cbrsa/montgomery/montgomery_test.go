package montgomery_test

import (
	"fmt"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/montgomery"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/random"
)

// prime1024 is a fixed 1024-bit prime used as a reference modulus.
var prime1024 = bigint.MustParse("13698031845839681324328863941416858895212053818948" +
	"36900690043939577649957413827537479986216755901817" +
	"99928491177850961633103924955359287791970608284439" +
	"51949471681869403286332789160304218068454389850776" +
	"01264030944684656537615523805322490517494926041664" +
	"52495487230110529227753993037579156704301830605049" +
	"438139121")

// squareMultiply is the textbook reference: reduce after every step.
func squareMultiply(a, b, m *bigint.Int) *bigint.Int {
	base := new(bigint.Int).Mod(a, m)
	r := new(bigint.Int).Mod(bigint.New(1), m)
	for i := b.BitLen() - 1; i >= 0; i-- {
		r.Mul(r, r).Mod(r, m)
		if b.Bit(uint(i)) == 1 {
			r.Mul(r, base).Mod(r, m)
		}
	}
	return r
}

func TestNewContextRejectsBadModulus(t *testing.T) {
	for _, m := range []string{"0", "1", "2", "-7", "0x10000000000000000000000000000000000"} {
		t.Run(m, func(t *testing.T) {
			_, err := montgomery.NewContext(bigint.MustParse(m))
			require.True(t, errors.Is(err, cbrsa.ErrEvenModulus))
		})
	}
}

func TestKnownAnswers(t *testing.T) {
	got, err := montgomery.Exp(bigint.New(4), bigint.New(13), bigint.New(497))
	require.NoError(t, err)
	require.Equal(t, "445", got.String())

	got, err = montgomery.Exp(bigint.New(0x12345678), bigint.New(65537), prime1024)
	require.NoError(t, err)
	require.Equal(t, "47dc270ad207d366ca978f443d87e6746b569ddd90fab79e718110d9efce6c20"+
		"50cf2238143d28f0cfc2c6eb507f846258463e14f366a90894de8304d8c61806"+
		"66a29a52d15c5f78b1a7242c1304826159d3ade0708d34483f12cabee02d995d"+
		"a89ad07c0862f3b60c3dc1c5f73bcae452d668312e9862793a282384e8f0ec95", got.Text(16))

	// Fermat: 2**(p-1) == 1 mod p.
	pm1 := new(bigint.Int).Sub(prime1024, bigint.New(1))
	got, err = montgomery.Exp(bigint.New(2), pm1, prime1024)
	require.NoError(t, err)
	require.Equal(t, "1", got.String())
}

func TestExpMatchesSquareMultiplyOnFixedPrime(t *testing.T) {
	ctx, err := montgomery.NewContext(prime1024)
	require.NoError(t, err)
	require.Equal(t, uint(1024), ctx.Bits())

	src := random.NewDeterministic(0x12345)
	for i := 0; i < 20; i++ {
		a := src.Below(prime1024)
		b := src.Bits(1024)
		got, err := ctx.Exp(a, b)
		require.NoError(t, err)
		require.Equal(t, 0, got.Cmp(squareMultiply(a, b, prime1024)), "a=%s b=%s", a, b)
	}
}

func TestExpMatchesSquareMultiplyRandomModuli(t *testing.T) {
	src := random.NewDeterministic(0x3047)
	for _, bits := range []int{2, 17, 64, 65, 127, 512, 1023, 2048} {
		t.Run(fmt.Sprintf("%d bits", bits), func(t *testing.T) {
			for i := 0; i < 10; i++ {
				m := bigint.WithBit(bigint.WithBit(src.Bits(bits), 0), uint(bits-1))
				a := src.Below(m)
				b := src.Bits(bits + 3)
				got, err := montgomery.Exp(a, b, m)
				require.NoError(t, err)
				require.Equal(t, 0, got.Cmp(squareMultiply(a, b, m)))
			}
		})
	}
}

func TestExpCurveModuli(t *testing.T) {
	params := btcec.S256().Params()
	src := random.NewDeterministic(256)
	for name, m := range map[string]*bigint.Int{
		"field prime": bigint.FromBig(params.P),
		"group order": bigint.FromBig(params.N),
	} {
		t.Run(name, func(t *testing.T) {
			ctx, err := montgomery.NewContext(m)
			require.NoError(t, err)

			a := src.Below(m)
			b := src.Bits(256)
			got, err := ctx.Exp(a, b)
			require.NoError(t, err)
			require.Equal(t, 0, got.Cmp(squareMultiply(a, b, m)))

			// a**(m-2) is the inverse of a for prime m.
			inv, err := ctx.Exp(a, new(bigint.Int).Sub(m, bigint.New(2)))
			require.NoError(t, err)
			prod := new(bigint.Int).Mul(a, inv)
			require.Equal(t, "1", prod.Mod(prod, m).String())
		})
	}
}

func TestExpEdgeCases(t *testing.T) {
	ctx, err := montgomery.NewContext(bigint.New(101))
	require.NoError(t, err)

	tests := []struct {
		name string
		a, b int64
		want string
	}{
		{"zero exponent", 5, 0, "1"},
		{"zero base zero exponent", 0, 0, "1"},
		{"zero base", 0, 7, "0"},
		{"one exponent", 42, 1, "42"},
		{"base above modulus", 205, 2, "9"},
		{"negative base", -1, 3, "100"},
		{"base minus one squared", 100, 2, "1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ctx.Exp(bigint.New(tc.a), bigint.New(tc.b))
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}

	_, err = ctx.Exp(bigint.New(2), bigint.New(-1))
	require.True(t, errors.Is(err, cbrsa.ErrDomainViolation))
}

func TestMontgomeryFormRoundTrip(t *testing.T) {
	ctx, err := montgomery.NewContext(prime1024)
	require.NoError(t, err)
	require.Equal(t, 0, ctx.Modulus().Cmp(prime1024))

	src := random.NewDeterministic(7)
	for i := 0; i < 50; i++ {
		x := src.Below(prime1024)
		y := src.Below(prime1024)
		require.Equal(t, 0, ctx.FromMont(ctx.ToMont(x)).Cmp(x))

		prod := ctx.FromMont(ctx.Mul(ctx.ToMont(x), ctx.ToMont(y)))
		want := new(bigint.Int).Mul(x, y)
		require.Equal(t, 0, prod.Cmp(want.Mod(want, prime1024)))

		r := ctx.Mul(ctx.ToMont(x), ctx.ToMont(y))
		require.Equal(t, -1, r.Cmp(prime1024), "product left unreduced")
		require.GreaterOrEqual(t, r.Sign(), 0)
	}
}

func TestContextDoesNotAliasModulus(t *testing.T) {
	m := bigint.New(101)
	ctx, err := montgomery.NewContext(m)
	require.NoError(t, err)
	m.Add(m, bigint.New(2))

	got, err := ctx.Exp(bigint.New(2), bigint.New(100))
	require.NoError(t, err)
	require.Equal(t, "1", got.String())
}

func BenchmarkExp1024(b *testing.B) {
	ctx, err := montgomery.NewContext(prime1024)
	require.NoError(b, err)
	src := random.NewDeterministic(1)
	a := src.Below(prime1024)
	e := src.Bits(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ctx.Exp(a, e); err != nil {
			b.Fatal(err)
		}
	}
}
