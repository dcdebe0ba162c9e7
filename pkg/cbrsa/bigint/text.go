package bigint

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// Text returns the string representation of x in the given base, which must
// be between 2 and 62.
func (x *Int) Text(base int) string {
	if x == nil {
		return "<nil>"
	}
	return x.Big().Text(base)
}

// String returns the decimal representation of x.
func (x *Int) String() string {
	return x.Text(10)
}

// SetString sets z to the value of s interpreted in the given base and
// returns z. A base of 0 selects the base from the prefix as in math/big.
func (z *Int) SetString(s string, base int) (*Int, error) {
	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return z, errors.Errorf("cannot parse %q as a base-%d integer", s, base)
	}
	return z.SetBig(b), nil
}

// MustParse parses s with base prefix detection and panics on failure. It is
// meant for constants in tests and examples.
func MustParse(s string) *Int {
	z, err := new(Int).SetString(s, 0)
	if err != nil {
		panic(err)
	}
	return z
}

// Format implements fmt.Formatter with the verbs supported by math/big.
func (x *Int) Format(s fmt.State, ch rune) {
	if x == nil {
		fmt.Fprint(s, "<nil>")
		return
	}
	x.Big().Format(s, ch)
}
