package rsa

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/logging"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/metrics"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/prime"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/random"
)

// KeyGenerator produces RSA key pairs. It holds no per-key state, but its
// Source is a sequential stream: a generator must not be used from several
// goroutines at once unless its Source allows that.
type KeyGenerator struct {
	rounds prime.RoundTable
	e      *bigint.Int
	crt    bool
	src    random.Source
	tester prime.Tester
	log    logging.Logger
	m      *metrics.KeyGen
	hook   func(from, to State)
}

// NewKeyGenerator validates cfg and returns a generator for it. An even
// public exponent or one not greater than one yields
// cbrsa.ErrInvalidExponent.
func NewKeyGenerator(cfg Config) (*KeyGenerator, error) {
	def := DefaultConfig()
	if cfg.RoundTable == nil {
		cfg.RoundTable = def.RoundTable
	}
	if cfg.PublicExponent == 0 {
		cfg.PublicExponent = def.PublicExponent
	}
	if cfg.Source == nil {
		cfg.Source = def.Source
	}
	if cfg.Tester == nil {
		cfg.Tester = def.Tester
	}
	if cfg.PublicExponent <= 1 || cfg.PublicExponent%2 == 0 {
		return nil, errors.Wrapf(cbrsa.ErrInvalidExponent, "e = %d", cfg.PublicExponent)
	}
	return &KeyGenerator{
		rounds: cfg.RoundTable.Clone(),
		e:      bigint.New(int64(cfg.PublicExponent)),
		crt:    cfg.CRT,
		src:    cfg.Source,
		tester: cfg.Tester,
		log:    logging.OrNop(cfg.Logger),
		m:      cfg.Metrics,
		hook:   cfg.OnTransition,
	}, nil
}

// Rounds returns the Miller-Rabin round count for size, or an error wrapping
// cbrsa.ErrInvalidKeySize if size cannot be generated.
func (g *KeyGenerator) Rounds(size int) (int, error) {
	if size <= 0 || size%BlockSize != 0 {
		return 0, errors.Wrapf(cbrsa.ErrInvalidKeySize, "%d bits is not a positive multiple of %d", size, BlockSize)
	}
	r, ok := g.rounds.Rounds(size)
	if !ok {
		return 0, errors.Wrapf(cbrsa.ErrInvalidKeySize, "no Miller-Rabin round count configured for %d bits", size)
	}
	return r, nil
}

// generation is the state of one GenerateKey call.
type generation struct {
	*KeyGenerator
	ctx    context.Context
	logger logging.Logger
	size   int
	rounds int
	state  State
}

func (r *generation) enter(next State) {
	prev := r.state
	r.state = next
	r.logger.Debug(r.ctx, "keygen state transition", "from", prev.String(), "to", next.String())
	if r.hook != nil {
		r.hook(prev, next)
	}
}

// GenerateKey generates a key pair whose modulus has exactly size bits.
//
// It returns cbrsa.ErrInvalidKeySize before drawing anything when size is
// unsupported, and ctx.Err() if ctx ends while candidates are being drawn.
// An error wrapping cbrsa.ErrNotInvertible means an internal invariant was
// broken. On any error no key material is returned.
func (g *KeyGenerator) GenerateKey(ctx context.Context, size int) (*PublicKey, *PrivateKey, error) {
	start := time.Now()
	run := &generation{
		KeyGenerator: g,
		ctx:          ctx,
		logger:       g.log.With("size", size),
		size:         size,
		state:        StateInit,
	}

	rounds, err := g.Rounds(size)
	if err != nil {
		return nil, nil, err
	}
	run.rounds = rounds

	run.enter(StateGeneratingP)
	p, err := run.prime("p", nil)
	if err != nil {
		return nil, nil, err
	}

	run.enter(StateGeneratingQ)
	q, err := run.prime("q", p)
	if err != nil {
		p.Zeroize()
		return nil, nil, err
	}

	run.enter(StateDerivingParameters)
	priv, err := run.derive(p, q)
	if err != nil {
		p.Zeroize()
		q.Zeroize()
		return nil, nil, err
	}

	run.enter(StateDone)
	g.m.KeyGenerated(size, time.Since(start))
	run.logger.Info(ctx, "key generated", "crt", priv.HasCRT(), "elapsed", time.Since(start).String())
	return priv.Public(), priv, nil
}

// prime draws candidates until one is accepted. avoid, if not nil, is a
// value the result must differ from.
func (r *generation) prime(label string, avoid *bigint.Int) (*bigint.Int, error) {
	half := r.size / 2
	one := bigint.New(1)
	for drawn := 1; ; drawn++ {
		if err := r.ctx.Err(); err != nil {
			return nil, err
		}

		c := r.src.Bits(half)
		c = bigint.WithBit(c, 0)
		c = bigint.WithBit(c, uint(half-1))
		c = bigint.WithBit(c, uint(half-2))
		r.m.CandidateDrawn(label)

		if !r.tester.ProbablyPrime(c, r.rounds) {
			r.m.CandidateRejected(metrics.ReasonComposite)
			continue
		}
		// c is odd, so clearing bit 0 gives c-1.
		cm1 := bigint.WithoutBit(c, 0)
		if new(bigint.Int).GCD(cm1, r.e).Cmp(one) != 0 {
			r.m.CandidateRejected(metrics.ReasonGCD)
			continue
		}
		if avoid != nil && c.Cmp(avoid) == 0 {
			r.m.CandidateRejected(metrics.ReasonDuplicate)
			continue
		}

		r.logger.Debug(r.ctx, "prime accepted", "prime", label, logging.Redacted("value"), "candidates", drawn)
		return c, nil
	}
}

func (r *generation) derive(p, q *bigint.Int) (*PrivateKey, error) {
	n := new(bigint.Int).Mul(p, q)
	if n.BitLen() != r.size {
		return nil, errors.Errorf("modulus has %d bits, want %d", n.BitLen(), r.size)
	}
	phi := new(bigint.Int).Mul(bigint.WithoutBit(p, 0), bigint.WithoutBit(q, 0))
	d, err := new(bigint.Int).ModInverse(r.e, phi)
	phi.Zeroize()
	if err != nil {
		return nil, errors.Wrap(err, "invariant violated: gcd(e, phi) != 1 after candidate checks")
	}

	priv := &PrivateKey{
		P:    p,
		Q:    q,
		D:    d,
		N:    n,
		E:    r.e.Clone(),
		Size: r.size,
	}
	if r.crt {
		if err := priv.Precompute(); err != nil {
			return nil, errors.Wrap(err, "invariant violated: deriving CRT values")
		}
	}
	return priv, nil
}
