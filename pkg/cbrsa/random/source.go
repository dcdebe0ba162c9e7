package random

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/chacha20"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
)

// Source produces uniform random integers.
type Source interface {
	// Bits returns a uniform integer in [0, 2**n).
	Bits(n int) *bigint.Int
	// Below returns a uniform integer in [0, m). m must be positive.
	Below(m *bigint.Int) *bigint.Int
}

const keyDomain = "cb-rsa-go/random/chacha20"

// Deterministic is a seeded Source. Two Deterministic sources created with
// the same seed produce identical draws.
type Deterministic struct {
	seed   uint64
	stream *chacha20.Cipher
}

// NewDeterministic returns a Source seeded with seed.
func NewDeterministic(seed uint64) *Deterministic {
	d := &Deterministic{}
	d.Reseed(seed)
	return d
}

// Reseed restarts the stream from seed. Draws made afterwards are the same as
// those of a fresh NewDeterministic(seed).
func (d *Deterministic) Reseed(seed uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	h := sha256.New()
	h.Write([]byte(keyDomain))
	h.Write(buf[:])
	key := h.Sum(nil)

	nonce := make([]byte, chacha20.NonceSize)
	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		// Key and nonce sizes are fixed above.
		panic(err)
	}
	d.seed = seed
	d.stream = stream
}

// Seed returns the seed the stream was last started from.
func (d *Deterministic) Seed() uint64 {
	return d.seed
}

// Read fills p with keystream bytes. It never fails.
func (d *Deterministic) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	d.stream.XORKeyStream(p, p)
	return len(p), nil
}

func (d *Deterministic) Bits(n int) *bigint.Int {
	return bitsFrom(d, n)
}

func (d *Deterministic) Below(m *bigint.Int) *bigint.Int {
	return belowFrom(d, m)
}

// Crypto is a Source backed by crypto/rand.
type Crypto struct {
	r io.Reader
}

// NewCrypto returns a Source reading from crypto/rand.
func NewCrypto() *Crypto {
	return &Crypto{r: rand.Reader}
}

func (c *Crypto) Bits(n int) *bigint.Int {
	return bitsFrom(c.r, n)
}

func (c *Crypto) Below(m *bigint.Int) *bigint.Int {
	return belowFrom(c.r, m)
}

func bitsFrom(r io.Reader, n int) *bigint.Int {
	if n <= 0 {
		return new(bigint.Int)
	}
	buf := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(r, buf); err != nil {
		// crypto/rand.Reader is documented never to fail on supported
		// platforms; the keystream cannot fail.
		panic(err)
	}
	if extra := n % 8; extra != 0 {
		buf[0] &= byte(1)<<extra - 1
	}
	return new(bigint.Int).SetBytes(buf)
}

func belowFrom(r io.Reader, m *bigint.Int) *bigint.Int {
	if m.Sign() <= 0 {
		panic("random: Below called with a non-positive bound")
	}
	n := m.BitLen()
	for {
		x := bitsFrom(r, n)
		if x.Cmp(m) < 0 {
			return x
		}
	}
}
