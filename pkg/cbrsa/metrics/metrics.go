// Package metrics exposes key generation counters and timings through
// Prometheus.
//
// A nil *KeyGen is valid and records nothing; Disabled returns one. Library
// code therefore never needs to check whether metrics were configured.
package metrics

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "cbrsa"
	subsystem = "keygen"
)

// Reason labels a rejected prime candidate.
type Reason string

const (
	// ReasonComposite: the candidate failed the primality test.
	ReasonComposite Reason = "composite"
	// ReasonGCD: gcd(candidate-1, e) != 1.
	ReasonGCD Reason = "gcd"
	// ReasonDuplicate: q came out equal to p.
	ReasonDuplicate Reason = "duplicate"
)

// KeyGen records key generation activity.
type KeyGen struct {
	candidates *prometheus.CounterVec
	rejected   *prometheus.CounterVec
	keys       *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// Disabled returns a KeyGen that records nothing.
func Disabled() *KeyGen {
	return nil
}

// NewKeyGen creates the key generation collectors and registers them with
// reg. Registering twice with the same registry fails.
func NewKeyGen(reg prometheus.Registerer) (*KeyGen, error) {
	m := &KeyGen{
		candidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "candidates_total",
			Help:      "Prime candidates drawn, by which prime they were drawn for.",
		}, []string{"prime"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rejected_total",
			Help:      "Prime candidates rejected, by reason.",
		}, []string{"reason"}),
		keys: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "keys_total",
			Help:      "Key pairs generated, by modulus size in bits.",
		}, []string{"size"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Wall time of successful key generations.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 14),
		}, []string{"size"}),
	}
	for _, c := range []prometheus.Collector{m.candidates, m.rejected, m.keys, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "register keygen metrics")
		}
	}
	return m, nil
}

// CandidateDrawn counts one candidate drawn for prime ("p" or "q").
func (m *KeyGen) CandidateDrawn(prime string) {
	if m == nil {
		return
	}
	m.candidates.WithLabelValues(prime).Inc()
}

// CandidateRejected counts one rejected candidate.
func (m *KeyGen) CandidateRejected(reason Reason) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(string(reason)).Inc()
}

// KeyGenerated counts one finished key of the given size and observes how
// long it took.
func (m *KeyGen) KeyGenerated(size int, took time.Duration) {
	if m == nil {
		return
	}
	label := strconv.Itoa(size)
	m.keys.WithLabelValues(label).Inc()
	m.duration.WithLabelValues(label).Observe(took.Seconds())
}
