package clicfg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/cb-rsa-go/internal/clicfg"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cbrsa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	c, err := clicfg.Load(clicfg.New(), "")
	require.NoError(t, err)
	require.Equal(t, "0x12345", c.Seed)
	require.Equal(t, 16, c.Base)
	require.Equal(t, 65537, c.Exponent)
	require.True(t, c.CRT)
	require.Equal(t, "montgomery", c.Backend)

	seed, err := c.ParseSeed()
	require.NoError(t, err)
	require.Equal(t, uint64(0x12345), seed)

	table, err := c.RoundTable()
	require.NoError(t, err)
	require.Equal(t, []int{1024, 2048, 3072, 4096}, table.Sizes())
}

func TestFileAndEnvironment(t *testing.T) {
	path := writeConfig(t, `
seed: "1234"
base: 10
exponent: 3
crt: false
backend: naive
rounds:
  2048: 64
  8192: 128
`)
	t.Setenv("CBRSA_BACKEND", "saferith")

	c, err := clicfg.Load(clicfg.New(), path)
	require.NoError(t, err)
	require.Equal(t, 10, c.Base)
	require.Equal(t, 3, c.Exponent)
	require.False(t, c.CRT)
	require.Equal(t, "saferith", c.Backend, "environment overrides the file")

	seed, err := c.ParseSeed()
	require.NoError(t, err)
	require.Equal(t, uint64(1234), seed)

	table, err := c.RoundTable()
	require.NoError(t, err)
	require.Equal(t, 64, table[2048])
	require.Equal(t, 128, table[8192])
	require.Equal(t, 40, table[1024])

	kg, err := c.KeyGenConfig()
	require.NoError(t, err)
	require.Equal(t, 3, kg.PublicExponent)
	require.False(t, kg.CRT)
	require.Equal(t, 128, kg.RoundTable[8192])

	exp, err := c.Exponentiator()
	require.NoError(t, err)
	require.Equal(t, "saferith", exp.Name())
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
		is   error
	}{
		{"bad base", "base: 8\n", nil},
		{"unknown backend", "backend: gmp\n", cbrsa.ErrUnknownBackend},
		{"even exponent", "exponent: 4\n", cbrsa.ErrInvalidExponent},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := clicfg.Load(clicfg.New(), writeConfig(t, tc.body))
			require.Error(t, err)
			if tc.is != nil {
				require.True(t, errors.Is(err, tc.is), err.Error())
			}
		})
	}

	_, err := clicfg.Load(clicfg.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestBadSeedAndRounds(t *testing.T) {
	c := &clicfg.Config{Seed: "0xzz"}
	_, err := c.ParseSeed()
	require.Error(t, err)

	c = &clicfg.Config{Rounds: map[string]int{"big": 3}}
	_, err = c.RoundTable()
	require.Error(t, err)

	c = &clicfg.Config{Rounds: map[string]int{"1024": 0}}
	_, err = c.RoundTable()
	require.Error(t, err)
}
