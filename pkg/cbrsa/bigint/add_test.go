package bigint_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/random"
)

// requireMatches checks that got holds the same value as want and is in
// canonical form.
func requireMatches(t *testing.T, want *big.Int, got *bigint.Int) {
	t.Helper()
	require.Equal(t, want.String(), got.String())
	require.Equal(t, want.Sign(), got.Sign())
	require.Equal(t, len(want.Bits()), got.Len(), "non-canonical limb count")
}

func randomSigned(src *random.Deterministic, bits int) *bigint.Int {
	x := src.Bits(bits)
	if src.Bits(1).Sign() != 0 {
		x.Neg(x)
	}
	return x
}

var sizePairs = []struct {
	name       string
	xBits, yBits int
}{
	{"one limb each", 64, 64},
	{"equal limb counts", 1024, 1024},
	{"longer first", 2048, 512},
	{"longer second", 192, 1536},
	{"single bit vs many", 1, 4096},
}

func TestAddCommutes(t *testing.T) {
	src := random.NewDeterministic(0xadd)
	for _, tc := range sizePairs {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				a := src.Bits(tc.xBits)
				b := src.Bits(tc.yBits)

				ab := new(bigint.Int).Add(a, b)
				ba := new(bigint.Int).Add(b, a)
				require.Equal(t, 0, ab.Cmp(ba))
				requireMatches(t, new(big.Int).Add(a.Big(), b.Big()), ab)

				back := new(bigint.Int).Sub(ab, b)
				require.Equal(t, 0, back.Cmp(a), "(a+b)-b != a")
				requireMatches(t, a.Big(), back)
			}
		})
	}
}

func TestSignedAddSubMatchLibrary(t *testing.T) {
	src := random.NewDeterministic(0x5167)
	for _, tc := range sizePairs {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				a := randomSigned(src, tc.xBits)
				b := randomSigned(src, tc.yBits)

				requireMatches(t, new(big.Int).Add(a.Big(), b.Big()), new(bigint.Int).Add(a, b))
				requireMatches(t, new(big.Int).Sub(a.Big(), b.Big()), new(bigint.Int).Sub(a, b))
			}
		})
	}
}

func TestAddZeroReturnsCopy(t *testing.T) {
	x := bigint.MustParse("-0xfedcba9876543210fedcba9876543210")
	zero := new(bigint.Int)

	for name, z := range map[string]*bigint.Int{
		"zero on the right": new(bigint.Int).Add(x, zero),
		"zero on the left":  new(bigint.Int).Add(zero, x),
		"zero subtrahend":   new(bigint.Int).Sub(x, zero),
	} {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, x.Limbs(), z.Limbs())
			require.Equal(t, x.Sign(), z.Sign())

			// The result must not share storage with the operand.
			z.Add(z, bigint.New(1))
			require.Equal(t, "-338770000845734292534325025077361652240", x.String())
		})
	}

	neg := new(bigint.Int).Sub(zero, x)
	require.Equal(t, 1, neg.Sign())
	require.Equal(t, 0, neg.CmpAbs(x))
}

func TestSubSelfIsCanonicalZero(t *testing.T) {
	src := random.NewDeterministic(0)
	for i := 0; i < 50; i++ {
		x := randomSigned(src, 64*(i+1))
		z := new(bigint.Int).Sub(x, x)
		require.True(t, z.IsZero())
		require.Equal(t, 0, z.Len())
		require.Equal(t, 0, z.Sign())

		// Adding the negation must also land on canonical zero.
		n := new(bigint.Int).Neg(x)
		z = new(bigint.Int).Add(x, n)
		require.Equal(t, 0, z.Len())
		require.Equal(t, 0, z.Sign())

		x.Sub(x, x)
		require.Equal(t, 0, x.Len())
		require.Equal(t, 0, x.Sign())
	}
}

func TestCarryPropagation(t *testing.T) {
	// Three all-ones limbs plus one carries into a fourth limb.
	ones := new(bigint.Int).Sub(new(bigint.Int).Lsh(bigint.New(1), 3*bigint.WordBits), bigint.New(1))
	require.Equal(t, 3, ones.Len())

	z := new(bigint.Int).Add(ones, bigint.New(1))
	require.Equal(t, 4, z.Len())
	require.Equal(t, []bigint.Word{0, 0, 0, 1}, z.Limbs())

	// And borrowing back out of it drops the top limb again.
	back := new(bigint.Int).Sub(z, bigint.New(1))
	require.Equal(t, 3, back.Len())
	require.Equal(t, 0, back.Cmp(ones))
}

func TestBorrowAcrossLongerOperand(t *testing.T) {
	// 2**256 - 2**64 exercises borrows through the longer operand's tail.
	x := new(bigint.Int).Lsh(bigint.New(1), 256)
	y := new(bigint.Int).Lsh(bigint.New(1), 64)
	z := new(bigint.Int).Sub(x, y)
	requireMatches(t, new(big.Int).Sub(x.Big(), y.Big()), z)

	// Reversed operands flip the sign, magnitudes stay equal.
	r := new(bigint.Int).Sub(y, x)
	require.Equal(t, -1, r.Sign())
	require.Equal(t, 0, r.CmpAbs(z))
}

func TestAddAliasing(t *testing.T) {
	src := random.NewDeterministic(42)
	for i := 0; i < 100; i++ {
		a := randomSigned(src, 700)
		b := randomSigned(src, 300)
		want := new(big.Int).Add(a.Big(), b.Big())

		z := a.Clone()
		z.Add(z, b)
		requireMatches(t, want, z)

		z = b.Clone()
		z.Add(a, z)
		requireMatches(t, want, z)

		z = a.Clone()
		z.Add(z, z)
		requireMatches(t, new(big.Int).Lsh(a.Big(), 1), z)

		z = b.Clone()
		z.Sub(a, z)
		requireMatches(t, new(big.Int).Sub(a.Big(), b.Big()), z)
	}
}

func TestAddPresizesDestination(t *testing.T) {
	a := bigint.MustParse("0xffffffffffffffffffffffffffffffffffffffff")
	b := bigint.MustParse("0x1")
	z := new(bigint.Int)
	require.Equal(t, 0, z.Cap())

	z.Add(a, b)
	require.GreaterOrEqual(t, z.Cap(), max(a.Len(), b.Len())+1)
}
