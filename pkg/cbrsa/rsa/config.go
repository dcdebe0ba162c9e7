package rsa

import (
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/logging"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/metrics"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/prime"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/random"
)

const (
	// BlockSize is the granularity of supported key sizes in bits.
	BlockSize = 1024

	// DefaultExponent is the public exponent used when none is configured.
	DefaultExponent = 65537
)

// Config controls a KeyGenerator. A nil RoundTable, Source, Tester or Logger
// and a zero PublicExponent fall back to the values of DefaultConfig when the
// generator is built. CRT is taken as given.
type Config struct {
	// RoundTable maps key sizes to Miller-Rabin round counts. Sizes missing
	// from the table are rejected.
	RoundTable prime.RoundTable

	// PublicExponent must be odd and greater than one.
	PublicExponent int

	// CRT selects whether generated private keys carry dp, dq and qInv.
	CRT bool

	// Source supplies candidate bits. It is used sequentially and must not be
	// shared with other goroutines while a key is being generated.
	Source random.Source

	// Tester decides primality of candidates.
	Tester prime.Tester

	Logger  logging.Logger
	Metrics *metrics.KeyGen

	// OnTransition, if set, is called on every state change of every
	// generation, on the generating goroutine.
	OnTransition func(from, to State)
}

// DefaultConfig returns the configuration used by the cbrsa command: the
// default round table, e = 65537, CRT enabled, crypto/rand candidates,
// library Miller-Rabin and no logging or metrics.
func DefaultConfig() Config {
	return Config{
		RoundTable:     prime.DefaultRoundTable(),
		PublicExponent: DefaultExponent,
		CRT:            true,
		Source:         random.NewCrypto(),
		Tester:         prime.MillerRabin{},
		Logger:         logging.Nop(),
		Metrics:        metrics.Disabled(),
	}
}
